package dto

import "time"

// Response DTOs

type AppointmentResponse struct {
	ID              uint      `json:"id"`
	DoctorID        uint      `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name"`
	PatientID       uint      `json:"patient_id"`
	PatientName     string    `json:"patient_name"`
	ExerciseID      uint      `json:"exercise_id"`
	ExerciseTitle   string    `json:"exercise_title"`
	Frequency       string    `json:"frequency"`
	AppointmentDate time.Time `json:"appointment_date"`
}
