package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name       string `json:"name" validate:"required,max=128"`
	Speciality uint   `json:"speciality" validate:"required"`
	Patients   []uint `json:"patients" validate:"omitempty,dive,gt=0"`
}

type UpdateDoctorRequest struct {
	Name       string `json:"name" validate:"required,max=128"`
	Speciality uint   `json:"speciality" validate:"required"`
	Patients   []uint `json:"patients" validate:"omitempty,dive,gt=0"`
}

type PatchDoctorRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=128"`
	Speciality *uint   `json:"speciality" validate:"omitempty,gt=0"`
	Patients   *[]uint `json:"patients" validate:"omitempty,dive,gt=0"`
}

type AppointRequest struct {
	PatientID  uint `json:"patient_id" validate:"required"`
	ExerciseID uint `json:"exercise_id" validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	Speciality   SpecialityResponse    `json:"speciality"`
	Patients     []PatientResponse     `json:"patients"`
	Appointments []AppointmentResponse `json:"appointments,omitempty"`
}
