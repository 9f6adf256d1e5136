// Package validators holds the per-route request validators. Each validator
// parses the body into its payload struct, runs the declared field rules and
// stores the payload in the request locals for the controller. The first
// failing rule is surfaced as a 400 before the controller runs.
package validators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
)

// PayloadKey is the locals key controllers read the validated payload from.
const PayloadKey = "payload"

var validate = validator.New()

func body(c *fiber.Ctx, payload any) error {
	if err := c.BodyParser(payload); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.BadRequest(firstError(err))
	}
	c.Locals(PayloadKey, payload)
	return c.Next()
}

// firstError translates the first failing rule into a readable message.
func firstError(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Invalid request body"
	}

	fe := errs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("%s must match the format %s", field, fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// ValidateID rejects non-numeric :id path parameters before the controller.
func ValidateID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return utils.BadRequest("Invalid ID format")
	}
	return c.Next()
}
