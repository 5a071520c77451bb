package entity

// Speciality is a medical specialization shared by doctors and exercises.
type Speciality struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"type:varchar(64);not null" json:"title"`
}

func (Speciality) TableName() string {
	return "specialities"
}
