package converter

import (
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
)

// SpecialityToResponse converts a Speciality entity to SpecialityResponse DTO
func SpecialityToResponse(speciality *entity.Speciality) *dto.SpecialityResponse {
	if speciality == nil {
		return nil
	}

	return &dto.SpecialityResponse{
		ID:    speciality.ID,
		Title: speciality.Title,
	}
}

// SpecialitiesToResponses converts a slice of Speciality entities to slice of SpecialityResponse DTOs
func SpecialitiesToResponses(specialities []entity.Speciality) []dto.SpecialityResponse {
	responses := make([]dto.SpecialityResponse, len(specialities))
	for i := range specialities {
		responses[i] = *SpecialityToResponse(&specialities[i])
	}
	return responses
}
