package entity

import "time"

// Appointment records that a doctor assigned an exercise to a patient.
// The (doctor, patient, exercise) triple is kept unique by the appoint
// workflow, not by a database constraint.
type Appointment struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        uint      `gorm:"not null;index:idx_appointment_triple" json:"doctor_id"`
	PatientID       uint      `gorm:"not null;index:idx_appointment_triple" json:"patient_id"`
	ExerciseID      uint      `gorm:"not null;index:idx_appointment_triple" json:"exercise_id"`
	AppointmentDate time.Time `gorm:"not null" json:"appointment_date"`

	// Relationships
	Doctor   Doctor   `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
	Patient  Patient  `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Exercise Exercise `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"exercise,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
