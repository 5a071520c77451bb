package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequency_IsValid(t *testing.T) {
	for _, f := range Frequencies() {
		assert.True(t, f.IsValid(), "expected %q to be valid", f)
	}

	for _, raw := range []string{"", "every_year", "EVERY_DAY", "daily"} {
		assert.False(t, Frequency(raw).IsValid(), "expected %q to be invalid", raw)
	}
}

func TestFrequency_Label(t *testing.T) {
	assert.Equal(t, "Every day", DefaultFrequency.Label())
	assert.Equal(t, "Every month", FrequencyEveryMonth.Label())
	assert.Equal(t, "fortnightly", Frequency("fortnightly").Label())
}

func TestExercise_RequiresSpeciality(t *testing.T) {
	exercise := Exercise{Specialisations: []Speciality{{ID: 1}, {ID: 3}}}

	assert.True(t, exercise.RequiresSpeciality(3))
	assert.False(t, exercise.RequiresSpeciality(2))
	assert.False(t, (&Exercise{}).RequiresSpeciality(1))
}

func TestDoctor_IsAssignedTo(t *testing.T) {
	doctor := Doctor{Patients: []Patient{{ID: 7}}}

	assert.True(t, doctor.IsAssignedTo(7))
	assert.False(t, doctor.IsAssignedTo(8))
}

func TestJSON_ValueAndScan(t *testing.T) {
	value, err := JSON{"entity": "doctor"}.Value()
	assert.NoError(t, err)

	var scanned JSON
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, "doctor", scanned["entity"])

	empty, err := JSON{}.Value()
	assert.NoError(t, err)
	assert.Nil(t, empty)

	assert.Error(t, scanned.Scan(42))
}
