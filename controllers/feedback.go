package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
	"gorm.io/datatypes"
)

func GetAllFeedbacks(c *fiber.Ctx) error {
	var feedbacks []models.Feedback
	if err := db.DB.Preload("Account").Preload("Service").Find(&feedbacks).Error; err != nil {
		return utils.Internal("Failed to fetch feedbacks")
	}
	if len(feedbacks) == 0 {
		return utils.NotFound("No feedbacks found")
	}
	return utils.SuccessList(c, len(feedbacks), feedbacks)
}

func GetFeedback(c *fiber.Ctx) error {
	id := c.Params("id")
	var feedback models.Feedback
	if db.DB.Preload("Account").Preload("Service").Preload("Therapist").
		First(&feedback, id).RowsAffected == 0 {
		return utils.NotFound("Feedback not found")
	}
	return utils.Success(c, feedback)
}

// CreateFeedback lets the authenticated customer rate a completed visit.
func CreateFeedback(c *fiber.Ctx) error {
	payload := c.Locals(validators.PayloadKey).(*validators.CreateFeedbackPayload)
	accountID := c.Locals("accountID").(uint)

	var appointment models.Appointment
	if db.DB.First(&appointment, payload.AppointmentID).RowsAffected == 0 {
		return utils.NotFound("Appointment not found")
	}
	if appointment.CustomerID != accountID {
		return utils.Forbidden("You can only review your own appointments")
	}

	images, err := json.Marshal(payload.Images)
	if err != nil {
		return utils.BadRequest("Invalid images list")
	}

	feedback := models.Feedback{
		AccountID:     accountID,
		AppointmentID: payload.AppointmentID,
		ServiceID:     payload.ServiceID,
		TherapistID:   payload.TherapistID,
		Comment:       payload.Comment,
		Rating:        payload.Rating,
		Images:        datatypes.JSON(images),
	}

	if err := db.DB.Create(&feedback).Error; err != nil {
		return utils.Internal("Failed to create feedback")
	}

	return utils.Created(c, feedback)
}

// UpdateFeedback lets the author revise their review; staff and admins can
// edit any feedback.
func UpdateFeedback(c *fiber.Ctx) error {
	id := c.Params("id")
	payload := c.Locals(validators.PayloadKey).(*validators.UpdateFeedbackPayload)
	accountID := c.Locals("accountID").(uint)
	role := c.Locals("role").(models.Role)

	var feedback models.Feedback
	if db.DB.First(&feedback, id).RowsAffected == 0 {
		return utils.NotFound("Feedback not found")
	}

	if feedback.AccountID != accountID && role != models.RoleStaff && role != models.RoleAdmin {
		return utils.Forbidden("You can only edit your own feedback")
	}

	updates := map[string]any{}
	if payload.Comment != nil {
		updates["comment"] = *payload.Comment
	}
	if payload.Rating != nil {
		updates["rating"] = *payload.Rating
	}
	if payload.Images != nil {
		images, err := json.Marshal(payload.Images)
		if err != nil {
			return utils.BadRequest("Invalid images list")
		}
		updates["images"] = datatypes.JSON(images)
	}

	if err := db.DB.Model(&feedback).Updates(updates).Error; err != nil {
		return utils.Internal("Failed to update feedback")
	}

	return utils.Success(c, feedback)
}

func DeleteFeedback(c *fiber.Ctx) error {
	id := c.Params("id")
	var feedback models.Feedback
	if db.DB.First(&feedback, id).RowsAffected == 0 {
		return utils.NotFound("Feedback not found")
	}
	if err := db.DB.Delete(&feedback).Error; err != nil {
		return utils.Internal("Failed to delete feedback")
	}
	return utils.Message(c, "Feedback deleted successfully")
}
