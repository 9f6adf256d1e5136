package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

func GetAllScorebands(c *fiber.Ctx) error {
	var scorebands []models.Scoreband
	if err := db.DB.Preload("Roadmap").Order("min_point").Find(&scorebands).Error; err != nil {
		return utils.Internal("Failed to fetch scorebands")
	}
	if len(scorebands) == 0 {
		return utils.NotFound("No scorebands found")
	}
	return utils.SuccessList(c, len(scorebands), scorebands)
}

func GetScoreband(c *fiber.Ctx) error {
	id := c.Params("id")
	var scoreband models.Scoreband
	if db.DB.Preload("Roadmap.Services").First(&scoreband, id).RowsAffected == 0 {
		return utils.NotFound("Scoreband not found")
	}
	return utils.Success(c, scoreband)
}

func CreateScoreband(c *fiber.Ctx) error {
	payload := c.Locals(validators.PayloadKey).(*validators.CreateScorebandPayload)

	if payload.RoadmapID != 0 {
		var roadmap models.Roadmap
		if db.DB.First(&roadmap, payload.RoadmapID).RowsAffected == 0 {
			return utils.NotFound("Roadmap not found")
		}
	}

	scoreband := models.Scoreband{
		MinPoint:        payload.MinPoint,
		MaxPoint:        payload.MaxPoint,
		TypeOfSkin:      payload.TypeOfSkin,
		SkinExplanation: payload.SkinExplanation,
		RoadmapID:       payload.RoadmapID,
	}

	if err := db.DB.Create(&scoreband).Error; err != nil {
		return utils.Internal("Failed to create scoreband")
	}

	return utils.Created(c, scoreband)
}

func UpdateScoreband(c *fiber.Ctx) error {
	id := c.Params("id")
	payload := c.Locals(validators.PayloadKey).(*validators.UpdateScorebandPayload)

	var scoreband models.Scoreband
	if db.DB.First(&scoreband, id).RowsAffected == 0 {
		return utils.NotFound("Scoreband not found")
	}

	updates := map[string]any{}
	if payload.MinPoint != nil {
		updates["min_point"] = *payload.MinPoint
	}
	if payload.MaxPoint != nil {
		updates["max_point"] = *payload.MaxPoint
	}
	if payload.TypeOfSkin != nil {
		updates["type_of_skin"] = *payload.TypeOfSkin
	}
	if payload.SkinExplanation != nil {
		updates["skin_explanation"] = *payload.SkinExplanation
	}
	if payload.RoadmapID != nil {
		updates["roadmap_id"] = *payload.RoadmapID
	}

	if err := db.DB.Model(&scoreband).Updates(updates).Error; err != nil {
		return utils.Internal("Failed to update scoreband")
	}

	return utils.Success(c, scoreband)
}

func DeleteScoreband(c *fiber.Ctx) error {
	id := c.Params("id")
	var scoreband models.Scoreband
	if db.DB.First(&scoreband, id).RowsAffected == 0 {
		return utils.NotFound("Scoreband not found")
	}
	if err := db.DB.Delete(&scoreband).Error; err != nil {
		return utils.Internal("Failed to delete scoreband")
	}
	return utils.Message(c, "Scoreband deleted successfully")
}
