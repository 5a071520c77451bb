package converter

import (
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Related names are empty when the relations were not preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		DoctorID:        appointment.DoctorID,
		DoctorName:      appointment.Doctor.Name,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.Patient.Name,
		ExerciseID:      appointment.ExerciseID,
		ExerciseTitle:   appointment.Exercise.Title,
		Frequency:       string(appointment.Exercise.Frequency),
		AppointmentDate: appointment.AppointmentDate,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
