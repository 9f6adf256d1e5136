package models_test

import (
	"testing"
	"time"

	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T, entities ...interface{}) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(entities...))
	return database
}

func TestAppointmentDefaultsToScheduled(t *testing.T) {
	database := openTestDB(t, &models.Appointment{})

	appointment := models.Appointment{TherapistID: 1, CustomerID: 1, ServiceID: 1, SlotID: 1}
	require.NoError(t, database.Create(&appointment).Error)
	assert.Equal(t, models.StatusScheduled, appointment.Status)
}

func TestAppointmentLifecycle(t *testing.T) {
	database := openTestDB(t, &models.Appointment{})

	cases := []struct {
		name string
		from models.AppointmentStatus
		to   models.AppointmentStatus
		ok   bool
	}{
		{"scheduled to checked in", models.StatusScheduled, models.StatusCheckedIn, true},
		{"scheduled to cancelled", models.StatusScheduled, models.StatusCancelled, true},
		{"scheduled to completed skips check-in", models.StatusScheduled, models.StatusCompleted, false},
		{"checked in to completed", models.StatusCheckedIn, models.StatusCompleted, true},
		{"checked in to cancelled", models.StatusCheckedIn, models.StatusCancelled, true},
		{"checked in back to scheduled", models.StatusCheckedIn, models.StatusScheduled, false},
		{"completed is terminal", models.StatusCompleted, models.StatusCancelled, false},
		{"cancelled is terminal", models.StatusCancelled, models.StatusCheckedIn, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appointment := models.Appointment{
				TherapistID: 1, CustomerID: 1, ServiceID: 1, SlotID: 1,
				Status: tc.from,
			}
			require.NoError(t, database.Create(&appointment).Error)

			err := appointment.UpdateStatus(database, tc.to)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, appointment.Status)

				var persisted models.Appointment
				require.NoError(t, database.First(&persisted, appointment.ID).Error)
				assert.Equal(t, tc.to, persisted.Status)
			} else {
				require.Error(t, err)
				assert.Equal(t, tc.from, appointment.Status)
			}
		})
	}
}

func TestShiftBookingUniqueness(t *testing.T) {
	database := openTestDB(t, &models.Shift{})

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	first := models.Shift{TherapistID: 1, SlotID: 2, Date: day, AppointmentID: 10, IsAvailable: true}
	require.NoError(t, database.Create(&first).Error)

	duplicate := models.Shift{TherapistID: 1, SlotID: 2, Date: day, AppointmentID: 11, IsAvailable: true}
	assert.ErrorIs(t, database.Create(&duplicate).Error, gorm.ErrDuplicatedKey)

	otherDate := models.Shift{TherapistID: 1, SlotID: 2, Date: day.AddDate(0, 0, 1), AppointmentID: 12, IsAvailable: true}
	assert.NoError(t, database.Create(&otherDate).Error)
}
