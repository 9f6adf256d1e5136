package validators

import (
	"github.com/gofiber/fiber/v2"
)

type CreateFeedbackPayload struct {
	AppointmentID uint     `json:"appointment_id" validate:"required"`
	ServiceID     uint     `json:"service_id" validate:"required"`
	TherapistID   uint     `json:"therapist_id" validate:"required"`
	Comment       string   `json:"comment"`
	Rating        float64  `json:"rating" validate:"required,gte=1,lte=5"`
	Images        []string `json:"images"`
}

type UpdateFeedbackPayload struct {
	Comment *string  `json:"comment"`
	Rating  *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Images  []string `json:"images"`
}

type BlogImagePayload struct {
	Image            string `json:"image" validate:"required"`
	ImageDescription string `json:"image_description"`
}

type CreateBlogPayload struct {
	Title   string             `json:"title" validate:"required"`
	Content string             `json:"content" validate:"required"`
	Status  string             `json:"status" validate:"omitempty,oneof=draft published"`
	Images  []BlogImagePayload `json:"images" validate:"omitempty,dive"`
}

type UpdateBlogPayload struct {
	Title   *string            `json:"title"`
	Content *string            `json:"content"`
	Status  *string            `json:"status" validate:"omitempty,oneof=draft published"`
	Images  []BlogImagePayload `json:"images" validate:"omitempty,dive"`
}

func CreateFeedback(c *fiber.Ctx) error {
	return body(c, new(CreateFeedbackPayload))
}

func UpdateFeedback(c *fiber.Ctx) error {
	return body(c, new(UpdateFeedbackPayload))
}

func CreateBlog(c *fiber.Ctx) error {
	return body(c, new(CreateBlogPayload))
}

func UpdateBlog(c *fiber.Ctx) error {
	return body(c, new(UpdateBlogPayload))
}
