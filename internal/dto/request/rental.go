package request

type RentalRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	MovieID    string `json:"movieId" validate:"required"`
}

// ReturnRequest closes an open rental for a customer/movie pair
type ReturnRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	MovieID    string `json:"movieId" validate:"required"`
}
