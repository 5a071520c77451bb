package repository

import (
	"fmt"
	"testing"
	"time"

	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/infrastructure/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb_repository_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := database.NewSQLiteConnection(dsn, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type fixture struct {
	speciality  entity.Speciality
	patient     entity.Patient
	exercise    entity.Exercise
	doctor      entity.Doctor
	appointment entity.Appointment
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	var f fixture

	f.speciality = entity.Speciality{Title: "Cardiology"}
	require.NoError(t, NewSpecialityRepository().Create(db, &f.speciality))

	f.patient = entity.Patient{Name: "Alice"}
	require.NoError(t, NewPatientRepository().Create(db, &f.patient))

	f.exercise = entity.Exercise{
		Title:           "Walk",
		Description:     "Walk for thirty minutes",
		Frequency:       entity.FrequencyEveryDay,
		Specialisations: []entity.Speciality{f.speciality},
	}
	require.NoError(t, NewExerciseRepository().Create(db, &f.exercise))

	f.doctor = entity.Doctor{
		Name:         "Dr. Bob",
		SpecialityID: f.speciality.ID,
		Patients:     []entity.Patient{f.patient},
	}
	require.NoError(t, NewDoctorRepository().Create(db, &f.doctor))

	f.appointment = entity.Appointment{
		DoctorID:        f.doctor.ID,
		PatientID:       f.patient.ID,
		ExerciseID:      f.exercise.ID,
		AppointmentDate: time.Now().UTC(),
	}
	require.NoError(t, NewAppointmentRepository().Create(db, &f.appointment))

	return f
}

func TestSpecialityRepository_CRUD(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewSpecialityRepository()

	speciality := &entity.Speciality{Title: "Neurology"}
	require.NoError(t, repo.Create(db, speciality))
	assert.NotZero(t, speciality.ID)

	found, err := repo.FindByID(db, speciality.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Neurology", found.Title)

	found.Title = "Neurosurgery"
	require.NoError(t, repo.Update(db, found))

	all, err := repo.FindAll(db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Neurosurgery", all[0].Title)

	affected, err := repo.Delete(db, speciality.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	missing, err := repo.FindByID(db, speciality.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepositories_FindByIDsSkipsUnknown(t *testing.T) {
	db := setupRepositoryTestDB(t)
	f := seedFixture(t, db)

	specialities, err := NewSpecialityRepository().FindByIDs(db, []uint{f.speciality.ID, 999})
	require.NoError(t, err)
	require.Len(t, specialities, 1)
	assert.Equal(t, f.speciality.ID, specialities[0].ID)

	patients, err := NewPatientRepository().FindByIDs(db, []uint{999})
	require.NoError(t, err)
	assert.Empty(t, patients)
}

func TestDoctorRepository_FindByIDPreloadsRelations(t *testing.T) {
	db := setupRepositoryTestDB(t)
	f := seedFixture(t, db)

	doctor, err := NewDoctorRepository().FindByID(db, f.doctor.ID)
	require.NoError(t, err)
	require.NotNil(t, doctor)
	assert.Equal(t, "Cardiology", doctor.Speciality.Title)
	require.Len(t, doctor.Patients, 1)
	assert.True(t, doctor.IsAssignedTo(f.patient.ID))
}

func TestDoctorRepository_ReplacePatients(t *testing.T) {
	db := setupRepositoryTestDB(t)
	f := seedFixture(t, db)
	repo := NewDoctorRepository()

	other := entity.Patient{Name: "Carol"}
	require.NoError(t, NewPatientRepository().Create(db, &other))

	doctor, err := repo.FindByID(db, f.doctor.ID)
	require.NoError(t, err)
	require.NoError(t, repo.ReplacePatients(db, doctor, []entity.Patient{other}))

	reloaded, err := repo.FindByID(db, f.doctor.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Patients, 1)
	assert.Equal(t, other.ID, reloaded.Patients[0].ID)

	require.NoError(t, repo.ReplacePatients(db, reloaded, nil))
	cleared, err := repo.FindByID(db, f.doctor.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.Patients)
}

func TestDoctorRepository_CreateDoesNotTouchSpeciality(t *testing.T) {
	db := setupRepositoryTestDB(t)
	f := seedFixture(t, db)

	doctor := &entity.Doctor{
		Name:         "Dr. Eve",
		SpecialityID: f.speciality.ID,
		Speciality:   entity.Speciality{ID: f.speciality.ID, Title: "changed"},
	}
	require.NoError(t, NewDoctorRepository().Create(db, doctor))

	speciality, err := NewSpecialityRepository().FindByID(db, f.speciality.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cardiology", speciality.Title)
}

func TestExerciseRepository_ReplaceSpecialisations(t *testing.T) {
	db := setupRepositoryTestDB(t)
	f := seedFixture(t, db)
	repo := NewExerciseRepository()

	other := entity.Speciality{Title: "Orthopedics"}
	require.NoError(t, NewSpecialityRepository().Create(db, &other))

	exercise, err := repo.FindByID(db, f.exercise.ID)
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceSpecialisations(db, exercise, []entity.Speciality{f.speciality, other}))

	reloaded, err := repo.FindByID(db, f.exercise.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Specialisations, 2)
	assert.True(t, reloaded.RequiresSpeciality(other.ID))
}

func TestAppointmentRepository_ExistsAndPreload(t *testing.T) {
	db := setupRepositoryTestDB(t)
	f := seedFixture(t, db)
	repo := NewAppointmentRepository()

	exists, err := repo.Exists(db, f.doctor.ID, f.patient.ID, f.exercise.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(db, f.doctor.ID, f.patient.ID, f.exercise.ID+1)
	require.NoError(t, err)
	assert.False(t, exists)

	appointment, err := repo.FindByID(db, f.appointment.ID)
	require.NoError(t, err)
	require.NotNil(t, appointment)
	assert.Equal(t, "Dr. Bob", appointment.Doctor.Name)
	assert.Equal(t, "Cardiology", appointment.Doctor.Speciality.Title)
	assert.Equal(t, "Alice", appointment.Patient.Name)
	assert.Equal(t, "Walk", appointment.Exercise.Title)

	byDoctor, err := repo.FindByDoctorID(db, f.doctor.ID)
	require.NoError(t, err)
	assert.Len(t, byDoctor, 1)

	byPatient, err := repo.FindByPatientID(db, f.patient.ID)
	require.NoError(t, err)
	assert.Len(t, byPatient, 1)
}

func TestCascadeDelete(t *testing.T) {
	tests := []struct {
		name   string
		delete func(db *gorm.DB, f fixture) (int64, error)
	}{
		{"speciality", func(db *gorm.DB, f fixture) (int64, error) {
			return NewSpecialityRepository().Delete(db, f.speciality.ID)
		}},
		{"doctor", func(db *gorm.DB, f fixture) (int64, error) {
			return NewDoctorRepository().Delete(db, f.doctor.ID)
		}},
		{"patient", func(db *gorm.DB, f fixture) (int64, error) {
			return NewPatientRepository().Delete(db, f.patient.ID)
		}},
		{"exercise", func(db *gorm.DB, f fixture) (int64, error) {
			return NewExerciseRepository().Delete(db, f.exercise.ID)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupRepositoryTestDB(t)
			f := seedFixture(t, db)

			affected, err := tt.delete(db, f)
			require.NoError(t, err)
			assert.Equal(t, int64(1), affected)

			appointment, err := NewAppointmentRepository().FindByID(db, f.appointment.ID)
			require.NoError(t, err)
			assert.Nil(t, appointment)
		})
	}
}

func TestCascadeDelete_SpecialityRemovesDoctor(t *testing.T) {
	db := setupRepositoryTestDB(t)
	f := seedFixture(t, db)

	_, err := NewSpecialityRepository().Delete(db, f.speciality.ID)
	require.NoError(t, err)

	doctor, err := NewDoctorRepository().FindByID(db, f.doctor.ID)
	require.NoError(t, err)
	assert.Nil(t, doctor)

	var links int64
	require.NoError(t, db.Table("exercise_specialisations").Count(&links).Error)
	assert.Zero(t, links)
}

func TestAuditLogRepository(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewAuditLogRepository()

	first := &entity.AuditLog{Action: entity.AuditActionPatientCreate, Metadata: entity.JSON{"entity": "patient"}}
	second := &entity.AuditLog{Action: entity.AuditActionPatientDelete}
	require.NoError(t, repo.Create(db, first))
	require.NoError(t, repo.Create(db, second))

	logs, err := repo.FindAll(db)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, second.ID, logs[0].ID)

	found, err := repo.FindByID(db, first.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "patient", found.Metadata["entity"])

	missing, err := repo.FindByID(db, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
