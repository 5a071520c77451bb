package dto

// Request DTOs

type CreatePatientRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

type UpdatePatientRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

type PatchPatientRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=128"`
}

// Response DTOs

type PatientResponse struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	Appointments []AppointmentResponse `json:"appointments,omitempty"`
}
