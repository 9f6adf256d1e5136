package controllers_test

import (
	"net/http"
	"testing"

	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAppointment(t *testing.T, status models.AppointmentStatus) models.Appointment {
	t.Helper()

	customer, _ := createTestAccount(t, models.RoleCustomer, true)
	therapist := createTestTherapist(t)
	service := createTestService(t, 60)
	slot := createTestSlot(t, 5)

	appointment := models.Appointment{
		TherapistID: therapist.ID,
		CustomerID:  customer.ID,
		ServiceID:   service.ID,
		SlotID:      slot.ID,
		Amount:      service.Price,
		Notes:       "initial consult",
		Status:      status,
	}
	require.NoError(t, db.DB.Create(&appointment).Error)
	return appointment
}

func TestUpdateAppointment_StatusAndNotes(t *testing.T) {
	app := setupTestApp(t)
	_, staffToken := createTestAccount(t, models.RoleStaff, true)
	appointment := createTestAppointment(t, models.StatusScheduled)

	resp, body := doRequest(t, app, http.MethodPatch, "/api/appointment/"+itoa(appointment.ID), map[string]any{
		"status": string(models.StatusCheckedIn),
		"notes":  "arrived early",
	}, staffToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, string(models.StatusCheckedIn), data["status"])
	assert.Equal(t, "arrived early", data["notes"])
}

func TestUpdateAppointment_RejectedTransitionLeavesNotesAlone(t *testing.T) {
	app := setupTestApp(t)
	_, staffToken := createTestAccount(t, models.RoleStaff, true)
	appointment := createTestAppointment(t, models.StatusCompleted)

	resp, _ := doRequest(t, app, http.MethodPatch, "/api/appointment/"+itoa(appointment.ID), map[string]any{
		"status": string(models.StatusCancelled),
		"notes":  "should not stick",
	}, staffToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var persisted models.Appointment
	require.NoError(t, db.DB.First(&persisted, appointment.ID).Error)
	assert.Equal(t, models.StatusCompleted, persisted.Status)
	assert.Equal(t, "initial consult", persisted.Notes)
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	app := setupTestApp(t)
	_, staffToken := createTestAccount(t, models.RoleStaff, true)

	resp, _ := doRequest(t, app, http.MethodPatch, "/api/appointment/99999", map[string]any{
		"notes": "anything",
	}, staffToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
