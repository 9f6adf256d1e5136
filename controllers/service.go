package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Find(&services).Error; err != nil {
		return utils.Internal("Failed to fetch services")
	}
	if len(services) == 0 {
		return utils.NotFound("No services found")
	}
	return utils.SuccessList(c, len(services), services)
}

func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return utils.NotFound("Service not found")
	}
	return utils.Success(c, service)
}

func CreateService(c *fiber.Ctx) error {
	payload := c.Locals(validators.PayloadKey).(*validators.CreateServicePayload)

	service := models.Service{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Image:       payload.Image,
		IsActive:    true,
	}

	if err := db.DB.Create(&service).Error; err != nil {
		return utils.Internal("Failed to create service")
	}

	return utils.Created(c, service)
}

func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	payload := c.Locals(validators.PayloadKey).(*validators.UpdateServicePayload)

	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return utils.NotFound("Service not found")
	}

	updates := map[string]any{}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.Price != nil {
		updates["price"] = *payload.Price
	}
	if payload.Image != nil {
		updates["image"] = *payload.Image
	}
	if payload.IsActive != nil {
		updates["is_active"] = *payload.IsActive
	}

	if err := db.DB.Model(&service).Updates(updates).Error; err != nil {
		return utils.Internal("Failed to update service")
	}

	return utils.Success(c, service)
}

func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return utils.NotFound("Service not found")
	}
	if err := db.DB.Delete(&service).Error; err != nil {
		return utils.Internal("Failed to delete service")
	}
	return utils.Message(c, "Service deleted successfully")
}
