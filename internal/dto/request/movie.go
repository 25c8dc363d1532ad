package request

type MovieRequest struct {
	Title           string  `json:"title" validate:"required,min=5,max=255"`
	GenreID         string  `json:"genreId" validate:"required"`
	NumberInStock   int     `json:"numberInStock" validate:"gte=0,lte=255"`
	DailyRentalRate float64 `json:"dailyRentalRate" validate:"gte=0,lte=255"`
}
