package entity

// Frequency is how often an exercise has to be performed.
type Frequency string

const (
	FrequencyEveryHour  Frequency = "every_hour"
	FrequencyEveryDay   Frequency = "every_day"
	FrequencyEveryWeek  Frequency = "every_week"
	FrequencyEveryMonth Frequency = "every_month"

	DefaultFrequency = FrequencyEveryDay
)

var frequencyLabels = map[Frequency]string{
	FrequencyEveryHour:  "Every hour",
	FrequencyEveryDay:   "Every day",
	FrequencyEveryWeek:  "Every week",
	FrequencyEveryMonth: "Every month",
}

// Frequencies lists the accepted values in display order.
func Frequencies() []Frequency {
	return []Frequency{FrequencyEveryHour, FrequencyEveryDay, FrequencyEveryWeek, FrequencyEveryMonth}
}

func (f Frequency) IsValid() bool {
	_, ok := frequencyLabels[f]
	return ok
}

// Label returns the human readable name, or the raw value for unknown frequencies.
func (f Frequency) Label() string {
	if label, ok := frequencyLabels[f]; ok {
		return label
	}
	return string(f)
}

// Exercise is a task a doctor can appoint to a patient.
type Exercise struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(128);not null" json:"title"`
	Description string    `gorm:"type:varchar(1024);not null" json:"description"`
	Frequency   Frequency `gorm:"type:varchar(32);not null;default:'every_day'" json:"frequency"`

	// Relationships
	Specialisations []Speciality `gorm:"many2many:exercise_specialisations;constraint:OnDelete:CASCADE" json:"specialisations,omitempty"`
}

func (Exercise) TableName() string {
	return "exercises"
}

// RequiresSpeciality reports whether the speciality is listed among the exercise specialisations.
func (e *Exercise) RequiresSpeciality(specialityID uint) bool {
	for _, s := range e.Specialisations {
		if s.ID == specialityID {
			return true
		}
	}
	return false
}
