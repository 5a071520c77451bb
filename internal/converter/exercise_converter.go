package converter

import (
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
)

// ExerciseToResponse converts an Exercise entity to ExerciseResponse DTO
func ExerciseToResponse(exercise *entity.Exercise) *dto.ExerciseResponse {
	if exercise == nil {
		return nil
	}

	return &dto.ExerciseResponse{
		ID:              exercise.ID,
		Title:           exercise.Title,
		Description:     exercise.Description,
		Frequency:       string(exercise.Frequency),
		FrequencyLabel:  exercise.Frequency.Label(),
		Specialisations: SpecialitiesToResponses(exercise.Specialisations),
	}
}

// ExercisesToResponses converts a slice of Exercise entities to slice of ExerciseResponse DTOs
func ExercisesToResponses(exercises []entity.Exercise) []dto.ExerciseResponse {
	responses := make([]dto.ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = *ExerciseToResponse(&exercises[i])
	}
	return responses
}
