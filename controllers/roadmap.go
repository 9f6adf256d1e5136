package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

func GetAllRoadmaps(c *fiber.Ctx) error {
	var roadmaps []models.Roadmap
	if err := db.DB.Preload("Services").Find(&roadmaps).Error; err != nil {
		return utils.Internal("Failed to fetch roadmaps")
	}
	if len(roadmaps) == 0 {
		return utils.NotFound("No roadmaps found")
	}
	return utils.SuccessList(c, len(roadmaps), roadmaps)
}

func GetRoadmap(c *fiber.Ctx) error {
	id := c.Params("id")
	var roadmap models.Roadmap
	if db.DB.Preload("Services").First(&roadmap, id).RowsAffected == 0 {
		return utils.NotFound("Roadmap not found")
	}
	return utils.Success(c, roadmap)
}

func CreateRoadmap(c *fiber.Ctx) error {
	payload := c.Locals(validators.PayloadKey).(*validators.CreateRoadmapPayload)

	var services []models.Service
	if len(payload.ServiceIDs) > 0 {
		if err := db.DB.Where("id IN ?", payload.ServiceIDs).Find(&services).Error; err != nil {
			return utils.Internal("Failed to fetch services")
		}
	}

	roadmap := models.Roadmap{
		Title:       payload.Title,
		Description: payload.Description,
		Services:    services,
	}

	if err := db.DB.Create(&roadmap).Error; err != nil {
		return utils.Internal("Failed to create roadmap")
	}

	return utils.Created(c, roadmap)
}

func UpdateRoadmap(c *fiber.Ctx) error {
	id := c.Params("id")
	payload := c.Locals(validators.PayloadKey).(*validators.UpdateRoadmapPayload)

	var roadmap models.Roadmap
	if db.DB.First(&roadmap, id).RowsAffected == 0 {
		return utils.NotFound("Roadmap not found")
	}

	if payload.Title != nil {
		roadmap.Title = *payload.Title
	}
	if payload.Description != nil {
		roadmap.Description = *payload.Description
	}
	if err := db.DB.Save(&roadmap).Error; err != nil {
		return utils.Internal("Failed to update roadmap")
	}

	if payload.ServiceIDs != nil {
		var services []models.Service
		if len(*payload.ServiceIDs) > 0 {
			if err := db.DB.Where("id IN ?", *payload.ServiceIDs).Find(&services).Error; err != nil {
				return utils.Internal("Failed to fetch services")
			}
		}
		if err := db.DB.Model(&roadmap).Association("Services").Replace(services); err != nil {
			return utils.Internal("Failed to update roadmap services")
		}
	}

	return utils.Success(c, roadmap)
}

func DeleteRoadmap(c *fiber.Ctx) error {
	id := c.Params("id")
	var roadmap models.Roadmap
	if db.DB.First(&roadmap, id).RowsAffected == 0 {
		return utils.NotFound("Roadmap not found")
	}
	if err := db.DB.Delete(&roadmap).Error; err != nil {
		return utils.Internal("Failed to delete roadmap")
	}
	return utils.Message(c, "Roadmap deleted successfully")
}
