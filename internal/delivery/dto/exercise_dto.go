package dto

// Request DTOs

type CreateExerciseRequest struct {
	Title           string `json:"title" validate:"required,max=128"`
	Description     string `json:"description" validate:"required,max=1024"`
	Frequency       string `json:"frequency" validate:"omitempty,frequency"`
	Specialisations []uint `json:"specialisations" validate:"omitempty,dive,gt=0"`
}

// UpdateExerciseRequest replaces every field; an omitted frequency falls
// back to the default and omitted specialisations are left untouched.
type UpdateExerciseRequest struct {
	Title           string `json:"title" validate:"required,max=128"`
	Description     string `json:"description" validate:"required,max=1024"`
	Frequency       string `json:"frequency" validate:"omitempty,frequency"`
	Specialisations []uint `json:"specialisations" validate:"omitempty,dive,gt=0"`
}

type PatchExerciseRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=1,max=128"`
	Description     *string `json:"description" validate:"omitempty,min=1,max=1024"`
	Frequency       *string `json:"frequency" validate:"omitempty,frequency"`
	Specialisations *[]uint `json:"specialisations" validate:"omitempty,dive,gt=0"`
}

// Response DTOs

type ExerciseResponse struct {
	ID              uint                 `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Frequency       string               `json:"frequency"`
	FrequencyLabel  string               `json:"frequency_label"`
	Specialisations []SpecialityResponse `json:"specialisations"`
}
