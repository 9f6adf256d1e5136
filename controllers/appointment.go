package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

func GetAllAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	if err := db.DB.Preload("Service").Preload("Therapist").Preload("Customer").
		Find(&appointments).Error; err != nil {
		return utils.Internal("Failed to fetch appointments")
	}
	if len(appointments) == 0 {
		return utils.NotFound("No appointments found")
	}
	return utils.SuccessList(c, len(appointments), appointments)
}

func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if db.DB.Preload("Service").Preload("Therapist.Account").Preload("Customer").Preload("Slot").
		First(&appointment, id).RowsAffected == 0 {
		return utils.NotFound("Appointment not found")
	}
	return utils.Success(c, appointment)
}

// UpdateAppointment applies note edits and runs status changes through the
// lifecycle checks.
func UpdateAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	payload := c.Locals(validators.PayloadKey).(*validators.UpdateAppointmentPayload)

	var appointment models.Appointment
	if db.DB.First(&appointment, id).RowsAffected == 0 {
		return utils.NotFound("Appointment not found")
	}

	// The lifecycle check runs first so a rejected transition leaves the
	// appointment untouched, notes included.
	if payload.Status != nil {
		if err := appointment.UpdateStatus(db.DB, models.AppointmentStatus(*payload.Status)); err != nil {
			return utils.BadRequest(err.Error())
		}
	}

	if payload.Notes != nil {
		if err := db.DB.Model(&appointment).Update("notes", *payload.Notes).Error; err != nil {
			return utils.Internal("Failed to update appointment")
		}
		appointment.Notes = *payload.Notes
	}

	return utils.Success(c, appointment)
}

func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if db.DB.First(&appointment, id).RowsAffected == 0 {
		return utils.NotFound("Appointment not found")
	}
	if err := db.DB.Delete(&appointment).Error; err != nil {
		return utils.Internal("Failed to delete appointment")
	}
	return utils.Message(c, "Appointment deleted successfully")
}

// UploadCheckImages stores the check-in and check-out photos a therapist
// takes during the session. Either form field may be present.
func UploadCheckImages(c *fiber.Ctx) error {
	id := c.Params("id")

	var appointment models.Appointment
	if db.DB.First(&appointment, id).RowsAffected == 0 {
		return utils.NotFound("Appointment not found")
	}

	updates := map[string]any{}

	if file, err := c.FormFile("check_in_image"); err == nil {
		path, err := utils.SaveImage(c, file)
		if err != nil {
			return err
		}
		updates["check_in_image"] = path
	}

	if file, err := c.FormFile("check_out_image"); err == nil {
		path, err := utils.SaveImage(c, file)
		if err != nil {
			return err
		}
		updates["check_out_image"] = path
	}

	if len(updates) == 0 {
		return utils.BadRequest("check_in_image or check_out_image file is required")
	}

	if err := db.DB.Model(&appointment).Updates(updates).Error; err != nil {
		return utils.Internal("Failed to update appointment images")
	}

	return utils.Success(c, appointment)
}
