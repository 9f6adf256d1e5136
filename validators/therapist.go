package validators

import (
	"github.com/gofiber/fiber/v2"
)

type CertificationPayload struct {
	Name       string `json:"name" validate:"required"`
	IssuedBy   string `json:"issued_by"`
	IssuedDate string `json:"issued_date" validate:"omitempty,datetime=2006-01-02"`
}

type CreateTherapistPayload struct {
	AccountID         uint                   `json:"account_id" validate:"required"`
	SpecializationIDs []uint                 `json:"specialization_ids"`
	Certifications    []CertificationPayload `json:"certifications" validate:"omitempty,dive"`
	Experience        int                    `json:"experience" validate:"gte=0"`
}

// UpdateTherapistPayload has no account field: AccountID is immutable.
type UpdateTherapistPayload struct {
	SpecializationIDs *[]uint                `json:"specialization_ids"`
	Certifications    []CertificationPayload `json:"certifications" validate:"omitempty,dive"`
	Experience        *int                   `json:"experience" validate:"omitempty,gte=0"`
}

func CreateTherapist(c *fiber.Ctx) error {
	return body(c, new(CreateTherapistPayload))
}

func UpdateTherapist(c *fiber.Ctx) error {
	return body(c, new(UpdateTherapistPayload))
}
