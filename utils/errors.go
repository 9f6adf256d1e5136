package utils

import (
	"errors"
	"os"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
)

// AppError is the one error type handlers return; the app-level ErrorHandler
// translates it into the error envelope.
type AppError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NotFound(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusNotFound, Message: message}
}

func BadRequest(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusForbidden, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusConflict, Message: message}
}

func Internal(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusInternalServerError, Message: message}
}

// ErrorHandler is installed as the Fiber app ErrorHandler. Every error from a
// handler or middleware funnels through here and gets the same envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	statusCode := fiber.StatusInternalServerError
	message := "Internal server error"

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		statusCode = appErr.StatusCode
		message = appErr.Message
	case errors.As(err, &fiberErr):
		statusCode = fiberErr.Code
		message = fiberErr.Message
	}

	body := fiber.Map{
		"status":     "error",
		"statusCode": statusCode,
		"message":    message,
	}
	// Stack traces leak internals; only expose them outside production.
	if statusCode == fiber.StatusInternalServerError && os.Getenv("APP_ENV") != "production" {
		body["stack"] = string(debug.Stack())
	}

	return c.Status(statusCode).JSON(body)
}
