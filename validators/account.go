package validators

import (
	"github.com/gofiber/fiber/v2"
)

type RegisterPayload struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,email"`
	DOB      string `json:"dob" validate:"required,datetime=2006-01-02"`
	Phone    string `json:"phone" validate:"required,min=8,max=11"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordPayload struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type UpdateAccountPayload struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Email    *string `json:"email" validate:"omitempty,email"`
	DOB      *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Phone    *string `json:"phone" validate:"omitempty,min=8,max=11"`
	Role     *string `json:"role" validate:"omitempty,oneof=Admin Staff Therapist Customer"`
	IsActive *bool   `json:"is_active"`
}

func Register(c *fiber.Ctx) error {
	return body(c, new(RegisterPayload))
}

func Login(c *fiber.Ctx) error {
	return body(c, new(LoginPayload))
}

func ChangePassword(c *fiber.Ctx) error {
	return body(c, new(ChangePasswordPayload))
}

func UpdateAccount(c *fiber.Ctx) error {
	return body(c, new(UpdateAccountPayload))
}
