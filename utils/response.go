package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Success renders the standard success envelope.
func Success(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// SuccessList renders a collection with its result count.
func SuccessList(c *fiber.Ctx, results int, data any) error {
	return c.JSON(fiber.Map{
		"status":  "success",
		"results": results,
		"data":    data,
	})
}

// Created renders the success envelope with a 201 status.
func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// Message renders a success envelope that carries only a message.
func Message(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": message,
	})
}
