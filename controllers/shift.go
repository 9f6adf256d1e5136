package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

func GetAllShifts(c *fiber.Ctx) error {
	var shifts []models.Shift
	if err := db.DB.Preload("Slot").Preload("Therapist").Find(&shifts).Error; err != nil {
		return utils.Internal("Failed to fetch shifts")
	}
	if len(shifts) == 0 {
		return utils.NotFound("No shifts found")
	}
	return utils.SuccessList(c, len(shifts), shifts)
}

// GetShift expands the slot, therapist and appointment inline.
func GetShift(c *fiber.Ctx) error {
	id := c.Params("id")
	var shift models.Shift
	if db.DB.Preload("Slot").Preload("Therapist.Account").Preload("Appointment").
		First(&shift, id).RowsAffected == 0 {
		return utils.NotFound("Shift not found")
	}
	return utils.Success(c, shift)
}

// GetShiftsByTherapist lists a therapist's shifts, newest date first.
func GetShiftsByTherapist(c *fiber.Ctx) error {
	therapistID := c.Params("id")

	var therapist models.Therapist
	if db.DB.First(&therapist, therapistID).RowsAffected == 0 {
		return utils.NotFound("Therapist not found")
	}

	var shifts []models.Shift
	if err := db.DB.Preload("Slot").Preload("Appointment").
		Where("therapist_id = ?", therapistID).
		Order("date DESC").
		Find(&shifts).Error; err != nil {
		return utils.Internal("Failed to fetch shifts")
	}
	if len(shifts) == 0 {
		return utils.NotFound("No shifts found for this therapist")
	}
	return utils.SuccessList(c, len(shifts), shifts)
}

// GetShiftsByAccount lists the shifts booked by the authenticated customer,
// resolved through their appointments.
func GetShiftsByAccount(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	var shifts []models.Shift
	if err := db.DB.Preload("Slot").Preload("Therapist.Account").Preload("Appointment").
		Joins("JOIN appointments ON appointments.id = shifts.appointment_id").
		Where("appointments.customer_id = ?", accountID).
		Order("date DESC").
		Find(&shifts).Error; err != nil {
		return utils.Internal("Failed to fetch shifts")
	}
	if len(shifts) == 0 {
		return utils.NotFound("No shifts found for this account")
	}
	return utils.SuccessList(c, len(shifts), shifts)
}

// CreateShift registers a standalone shift, e.g. blocked availability.
// Booked shifts are normally created by the booking workflow instead.
func CreateShift(c *fiber.Ctx) error {
	payload := c.Locals(validators.PayloadKey).(*validators.CreateShiftPayload)

	date, err := time.Parse(dateLayout, payload.Date)
	if err != nil {
		return utils.BadRequest("Date must match the format " + dateLayout)
	}

	var therapist models.Therapist
	if db.DB.First(&therapist, payload.TherapistID).RowsAffected == 0 {
		return utils.NotFound("Therapist not found")
	}
	var slot models.Slot
	if db.DB.First(&slot, payload.SlotID).RowsAffected == 0 {
		return utils.NotFound("Slot not found")
	}

	var existing models.Shift
	if db.DB.Where("therapist_id = ? AND slot_id = ? AND date = ?",
		payload.TherapistID, payload.SlotID, date).First(&existing).RowsAffected > 0 {
		return utils.Conflict("This slot is already taken for the therapist on that date")
	}

	shift := models.Shift{
		SlotID:        payload.SlotID,
		TherapistID:   payload.TherapistID,
		AppointmentID: payload.AppointmentID,
		Date:          date,
		IsAvailable:   true,
	}

	if err := db.DB.Create(&shift).Error; err != nil {
		return utils.Internal("Failed to create shift")
	}

	return utils.Created(c, shift)
}

func UpdateShift(c *fiber.Ctx) error {
	id := c.Params("id")
	payload := c.Locals(validators.PayloadKey).(*validators.UpdateShiftPayload)

	var shift models.Shift
	if db.DB.First(&shift, id).RowsAffected == 0 {
		return utils.NotFound("Shift not found")
	}

	updates := map[string]any{}
	if payload.AppointmentID != nil {
		updates["appointment_id"] = *payload.AppointmentID
	}
	if payload.Date != nil {
		date, err := time.Parse(dateLayout, *payload.Date)
		if err != nil {
			return utils.BadRequest("Date must match the format " + dateLayout)
		}
		updates["date"] = date
	}
	if payload.IsAvailable != nil {
		updates["is_available"] = *payload.IsAvailable
	}

	if err := db.DB.Model(&shift).Updates(updates).Error; err != nil {
		return utils.Internal("Failed to update shift")
	}

	return utils.Success(c, shift)
}

// DeleteShift removes the row for real. A soft-deleted shift would keep
// holding the (slot, therapist, date) unique index and block rebooking.
func DeleteShift(c *fiber.Ctx) error {
	id := c.Params("id")
	var shift models.Shift
	if db.DB.First(&shift, id).RowsAffected == 0 {
		return utils.NotFound("Shift not found")
	}
	if err := db.DB.Unscoped().Delete(&shift).Error; err != nil {
		return utils.Internal("Failed to delete shift")
	}
	return utils.Message(c, "Shift deleted successfully")
}
