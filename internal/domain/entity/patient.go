package entity

type Patient struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(128);not null" json:"name"`
}

func (Patient) TableName() string {
	return "patients"
}
