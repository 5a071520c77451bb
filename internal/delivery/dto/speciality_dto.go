package dto

// Request DTOs

type CreateSpecialityRequest struct {
	Title string `json:"title" validate:"required,max=64"`
}

// UpdateSpecialityRequest is the full replacement body used by PUT.
type UpdateSpecialityRequest struct {
	Title string `json:"title" validate:"required,max=64"`
}

type PatchSpecialityRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=64"`
}

// Response DTOs

type SpecialityResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}
