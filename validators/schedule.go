package validators

import (
	"github.com/gofiber/fiber/v2"
)

type CreateSlotPayload struct {
	SlotNum   int    `json:"slot_num" validate:"required,gte=1"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

type UpdateSlotPayload struct {
	SlotNum   *int    `json:"slot_num" validate:"omitempty,gte=1"`
	StartTime *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   *string `json:"end_time" validate:"omitempty,datetime=15:04"`
}

type CreateShiftPayload struct {
	SlotID        uint   `json:"slot_id" validate:"required"`
	TherapistID   uint   `json:"therapist_id" validate:"required"`
	AppointmentID uint   `json:"appointment_id"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
}

type UpdateShiftPayload struct {
	AppointmentID *uint   `json:"appointment_id"`
	Date          *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	IsAvailable   *bool   `json:"is_available"`
}

func CreateSlot(c *fiber.Ctx) error {
	return body(c, new(CreateSlotPayload))
}

func UpdateSlot(c *fiber.Ctx) error {
	return body(c, new(UpdateSlotPayload))
}

func CreateShift(c *fiber.Ctx) error {
	return body(c, new(CreateShiftPayload))
}

func UpdateShift(c *fiber.Ctx) error {
	return body(c, new(UpdateShiftPayload))
}
