package dto

type ChooseRequest struct {
	Choice string `json:"choice" validate:"required"`
}
