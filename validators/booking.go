package validators

import (
	"github.com/gofiber/fiber/v2"
)

// BookingPayload drives the composite booking workflow on the transaction
// controller: one appointment, one shift and one transaction per booking.
type BookingPayload struct {
	TherapistID   uint   `json:"therapist_id" validate:"required"`
	ServiceID     uint   `json:"service_id" validate:"required"`
	SlotID        uint   `json:"slot_id" validate:"required"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash credit_card bank_transfer"`
	Notes         string `json:"notes"`
}

type UpdateTransactionPayload struct {
	Status *string `json:"status" validate:"omitempty,oneof=pending completed failed"`
}

type UpdateAppointmentPayload struct {
	Status *string `json:"status" validate:"omitempty,oneof=Scheduled CheckedIn Completed Cancelled"`
	Notes  *string `json:"notes"`
}

func CreateBooking(c *fiber.Ctx) error {
	return body(c, new(BookingPayload))
}

func UpdateTransaction(c *fiber.Ctx) error {
	return body(c, new(UpdateTransactionPayload))
}

func UpdateAppointment(c *fiber.Ctx) error {
	return body(c, new(UpdateAppointmentPayload))
}
