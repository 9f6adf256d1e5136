package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

func toCertifications(payloads []validators.CertificationPayload) models.CertificationList {
	certs := make(models.CertificationList, 0, len(payloads))
	for _, p := range payloads {
		cert := models.Certification{
			Name:     p.Name,
			IssuedBy: p.IssuedBy,
		}
		if p.IssuedDate != "" {
			if issued, err := time.Parse(dateLayout, p.IssuedDate); err == nil {
				cert.IssuedDate = issued
			}
		}
		certs = append(certs, cert)
	}
	return certs
}

func GetAllTherapists(c *fiber.Ctx) error {
	var therapists []models.Therapist
	if err := db.DB.Preload("Account").Preload("Specialization").Find(&therapists).Error; err != nil {
		return utils.Internal("Failed to fetch therapists")
	}
	if len(therapists) == 0 {
		return utils.NotFound("No therapists found")
	}
	return utils.SuccessList(c, len(therapists), therapists)
}

// GetTherapist expands the linked account and specialization services inline.
func GetTherapist(c *fiber.Ctx) error {
	id := c.Params("id")
	var therapist models.Therapist
	if db.DB.Preload("Account").Preload("Specialization").First(&therapist, id).RowsAffected == 0 {
		return utils.NotFound("Therapist not found")
	}
	return utils.Success(c, therapist)
}

func CreateTherapist(c *fiber.Ctx) error {
	payload := c.Locals(validators.PayloadKey).(*validators.CreateTherapistPayload)

	var account models.Account
	if db.DB.First(&account, payload.AccountID).RowsAffected == 0 {
		return utils.NotFound("Account not found")
	}

	var existing models.Therapist
	if db.DB.Where("account_id = ?", payload.AccountID).First(&existing).RowsAffected > 0 {
		return utils.Conflict("A therapist profile already exists for this account")
	}

	var services []models.Service
	if len(payload.SpecializationIDs) > 0 {
		if err := db.DB.Where("id IN ?", payload.SpecializationIDs).Find(&services).Error; err != nil {
			return utils.Internal("Failed to fetch specialization services")
		}
	}

	therapist := models.Therapist{
		AccountID:      payload.AccountID,
		Specialization: services,
		Certifications: toCertifications(payload.Certifications),
		Experience:     payload.Experience,
	}

	if err := db.DB.Create(&therapist).Error; err != nil {
		return utils.Internal("Failed to create therapist")
	}

	return utils.Created(c, therapist)
}

// UpdateTherapist never touches AccountID; the link is fixed at creation.
func UpdateTherapist(c *fiber.Ctx) error {
	id := c.Params("id")
	payload := c.Locals(validators.PayloadKey).(*validators.UpdateTherapistPayload)

	var therapist models.Therapist
	if db.DB.First(&therapist, id).RowsAffected == 0 {
		return utils.NotFound("Therapist not found")
	}

	if payload.Experience != nil {
		therapist.Experience = *payload.Experience
	}
	if payload.Certifications != nil {
		therapist.Certifications = toCertifications(payload.Certifications)
	}

	if err := db.DB.Save(&therapist).Error; err != nil {
		return utils.Internal("Failed to update therapist")
	}

	if payload.SpecializationIDs != nil {
		var services []models.Service
		if len(*payload.SpecializationIDs) > 0 {
			if err := db.DB.Where("id IN ?", *payload.SpecializationIDs).Find(&services).Error; err != nil {
				return utils.Internal("Failed to fetch specialization services")
			}
		}
		if err := db.DB.Model(&therapist).Association("Specialization").Replace(services); err != nil {
			return utils.Internal("Failed to update specialization")
		}
	}

	return utils.Success(c, therapist)
}

func DeleteTherapist(c *fiber.Ctx) error {
	id := c.Params("id")
	var therapist models.Therapist
	if db.DB.First(&therapist, id).RowsAffected == 0 {
		return utils.NotFound("Therapist not found")
	}
	if err := db.DB.Delete(&therapist).Error; err != nil {
		return utils.Internal("Failed to delete therapist")
	}
	return utils.Message(c, "Therapist deleted successfully")
}

// UploadCertificate attaches a certificate file to the authenticated
// therapist's newest certification entry.
func UploadCertificate(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	var therapist models.Therapist
	if db.DB.Where("account_id = ?", accountID).First(&therapist).RowsAffected == 0 {
		return utils.NotFound("Therapist profile not found")
	}

	file, err := c.FormFile("certificate")
	if err != nil {
		return utils.BadRequest("Certificate file is required")
	}

	f, err := file.Open()
	if err != nil {
		return utils.Internal("Failed to open certificate file")
	}
	defer f.Close()

	publicID := utils.PublicID("certificate", therapist.ID)
	secureURL, err := utils.UploadToCloudinary(f, publicID, "certificates", false)
	if err != nil {
		return utils.Internal("Failed to upload certificate")
	}

	if len(therapist.Certifications) == 0 {
		return utils.BadRequest("No certification entry to attach the file to")
	}
	therapist.Certifications[len(therapist.Certifications)-1].FileURL = secureURL

	if err := db.DB.Save(&therapist).Error; err != nil {
		return utils.Internal("Failed to update therapist")
	}

	return utils.Success(c, therapist)
}
