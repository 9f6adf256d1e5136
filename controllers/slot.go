package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

func GetAllSlots(c *fiber.Ctx) error {
	var slots []models.Slot
	if err := db.DB.Order("slot_num").Find(&slots).Error; err != nil {
		return utils.Internal("Failed to fetch slots")
	}
	if len(slots) == 0 {
		return utils.NotFound("No slots found")
	}
	return utils.SuccessList(c, len(slots), slots)
}

func GetSlot(c *fiber.Ctx) error {
	id := c.Params("id")
	var slot models.Slot
	if db.DB.First(&slot, id).RowsAffected == 0 {
		return utils.NotFound("Slot not found")
	}
	return utils.Success(c, slot)
}

func CreateSlot(c *fiber.Ctx) error {
	payload := c.Locals(validators.PayloadKey).(*validators.CreateSlotPayload)

	var existing models.Slot
	if db.DB.Where("slot_num = ?", payload.SlotNum).First(&existing).RowsAffected > 0 {
		return utils.Conflict("A slot with this number already exists")
	}

	slot := models.Slot{
		SlotNum:   payload.SlotNum,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
	}

	if err := db.DB.Create(&slot).Error; err != nil {
		return utils.Internal("Failed to create slot")
	}

	return utils.Created(c, slot)
}

func UpdateSlot(c *fiber.Ctx) error {
	id := c.Params("id")
	payload := c.Locals(validators.PayloadKey).(*validators.UpdateSlotPayload)

	var slot models.Slot
	if db.DB.First(&slot, id).RowsAffected == 0 {
		return utils.NotFound("Slot not found")
	}

	updates := map[string]any{}
	if payload.SlotNum != nil {
		updates["slot_num"] = *payload.SlotNum
	}
	if payload.StartTime != nil {
		updates["start_time"] = *payload.StartTime
	}
	if payload.EndTime != nil {
		updates["end_time"] = *payload.EndTime
	}

	if err := db.DB.Model(&slot).Updates(updates).Error; err != nil {
		return utils.Internal("Failed to update slot")
	}

	return utils.Success(c, slot)
}

func DeleteSlot(c *fiber.Ctx) error {
	id := c.Params("id")
	var slot models.Slot
	if db.DB.First(&slot, id).RowsAffected == 0 {
		return utils.NotFound("Slot not found")
	}
	if err := db.DB.Delete(&slot).Error; err != nil {
		return utils.Internal("Failed to delete slot")
	}
	return utils.Message(c, "Slot deleted successfully")
}
