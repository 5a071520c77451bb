package entity

// Doctor holds one speciality and the set of patients the doctor may appoint exercises to.
type Doctor struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(128);not null" json:"name"`
	SpecialityID uint   `gorm:"not null;index" json:"speciality_id"`

	// Relationships
	Speciality Speciality `gorm:"foreignKey:SpecialityID;constraint:OnDelete:CASCADE" json:"speciality,omitempty"`
	Patients   []Patient  `gorm:"many2many:doctor_patients;constraint:OnDelete:CASCADE" json:"patients,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsAssignedTo checks if the patient is among the doctor's patients
func (d *Doctor) IsAssignedTo(patientID uint) bool {
	for _, p := range d.Patients {
		if p.ID == patientID {
			return true
		}
	}
	return false
}
