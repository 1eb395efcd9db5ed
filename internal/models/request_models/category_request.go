package request_models

type CategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Icon        string  `json:"icon"`
	Description *string `json:"description"`
}
