package validators

import (
	"github.com/gofiber/fiber/v2"
)

type CreateServicePayload struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image"`
}

type UpdateServicePayload struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Image       *string  `json:"image"`
	IsActive    *bool    `json:"is_active"`
}

func CreateService(c *fiber.Ctx) error {
	return body(c, new(CreateServicePayload))
}

func UpdateService(c *fiber.Ctx) error {
	return body(c, new(UpdateServicePayload))
}
