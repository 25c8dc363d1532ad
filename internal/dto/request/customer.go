package request

type CustomerRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=50"`
	Phone  string `json:"phone" validate:"required,min=5,max=50"`
	IsGold bool   `json:"isGold"`
}
