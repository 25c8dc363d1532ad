package response

import "video-rental/internal/data/entity"

type CustomerResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IsGold bool   `json:"isGold"`
}

func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:     customer.ID.String(),
		Name:   customer.Name,
		Phone:  customer.Phone,
		IsGold: customer.IsGold,
	}
}

func CustomersToResponse(customers []*entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		out[i] = CustomerToResponse(customer)
	}
	return out
}
