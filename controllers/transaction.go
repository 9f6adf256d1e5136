package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
	"gorm.io/gorm"
)

// CreateBooking is the composite booking workflow. One database transaction
// snapshots the service price and creates the appointment, the shift and the
// pending payment transaction; either all three exist afterwards or none do.
func CreateBooking(c *fiber.Ctx) error {
	payload := c.Locals(validators.PayloadKey).(*validators.BookingPayload)
	customerID := c.Locals("accountID").(uint)

	date, err := time.Parse(dateLayout, payload.Date)
	if err != nil {
		return utils.BadRequest("Date must match the format " + dateLayout)
	}

	var (
		appointment models.Appointment
		shift       models.Shift
		transaction models.Transaction
	)

	txErr := db.DB.Transaction(func(tx *gorm.DB) error {
		var service models.Service
		if tx.First(&service, payload.ServiceID).RowsAffected == 0 {
			return utils.NotFound("Service not found")
		}
		if !service.IsActive {
			return utils.BadRequest("Service is not available")
		}

		var therapist models.Therapist
		if tx.First(&therapist, payload.TherapistID).RowsAffected == 0 {
			return utils.NotFound("Therapist not found")
		}

		var slot models.Slot
		if tx.First(&slot, payload.SlotID).RowsAffected == 0 {
			return utils.NotFound("Slot not found")
		}

		var existing models.Shift
		if tx.Where("therapist_id = ? AND slot_id = ? AND date = ?",
			payload.TherapistID, payload.SlotID, date).First(&existing).RowsAffected > 0 {
			return utils.Conflict("This slot is already booked for the therapist on that date")
		}

		appointment = models.Appointment{
			TherapistID: payload.TherapistID,
			CustomerID:  customerID,
			ServiceID:   payload.ServiceID,
			SlotID:      payload.SlotID,
			Notes:       payload.Notes,
			Amount:      service.Price, // snapshot, later price changes don't apply
			Status:      models.StatusScheduled,
		}
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}

		shift = models.Shift{
			SlotID:        payload.SlotID,
			TherapistID:   payload.TherapistID,
			AppointmentID: appointment.ID,
			Date:          date,
			IsAvailable:   true,
		}
		if err := tx.Create(&shift).Error; err != nil {
			return err
		}

		transaction = models.Transaction{
			CustomerID:    customerID,
			AppointmentID: appointment.ID,
			PaymentMethod: payload.PaymentMethod,
			Status:        models.TransactionPending,
		}
		return tx.Create(&transaction).Error
	})

	if txErr != nil {
		if appErr, ok := txErr.(*utils.AppError); ok {
			return appErr
		}
		// A racing booking can slip past the pre-check and hit the
		// (slot, therapist, date) unique index instead.
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return utils.Conflict("This slot is already booked for the therapist on that date")
		}
		log.Printf("booking failed: %v", txErr)
		return utils.Internal("Failed to create booking")
	}

	go sendBookingConfirmation(customerID, &appointment, date)

	return utils.Created(c, fiber.Map{
		"appointment": appointment,
		"shift":       shift,
		"transaction": transaction,
	})
}

// sendBookingConfirmation emails the customer; failures are only logged.
func sendBookingConfirmation(customerID uint, appointment *models.Appointment, date time.Time) {
	var customer models.Account
	if db.DB.First(&customer, customerID).RowsAffected == 0 {
		return
	}
	var service models.Service
	db.DB.First(&service, appointment.ServiceID)

	subject := "Booking confirmed"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been confirmed.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Amount:</strong> %.2f</li>
		</ul>
		<p>Best regards,</p>
		<p>Your Skincare Team</p>
	`, customer.Username, service.Name, date.Format(dateLayout), appointment.Amount)

	if err := utils.SendEmail(customer.Email, subject, body); err != nil {
		log.Printf("Failed to send booking confirmation to %s: %v", customer.Email, err)
	}
}

func GetAllTransactions(c *fiber.Ctx) error {
	var transactions []models.Transaction
	if err := db.DB.Preload("Customer").Preload("Appointment").Find(&transactions).Error; err != nil {
		return utils.Internal("Failed to fetch transactions")
	}
	if len(transactions) == 0 {
		return utils.NotFound("No transactions found")
	}
	return utils.SuccessList(c, len(transactions), transactions)
}

func GetTransaction(c *fiber.Ctx) error {
	id := c.Params("id")
	var transaction models.Transaction
	if db.DB.Preload("Customer").Preload("Appointment").First(&transaction, id).RowsAffected == 0 {
		return utils.NotFound("Transaction not found")
	}
	return utils.Success(c, transaction)
}

func UpdateTransaction(c *fiber.Ctx) error {
	id := c.Params("id")
	payload := c.Locals(validators.PayloadKey).(*validators.UpdateTransactionPayload)

	var transaction models.Transaction
	if db.DB.First(&transaction, id).RowsAffected == 0 {
		return utils.NotFound("Transaction not found")
	}

	if payload.Status != nil {
		if err := db.DB.Model(&transaction).
			Update("status", models.TransactionStatus(*payload.Status)).Error; err != nil {
			return utils.Internal("Failed to update transaction")
		}
	}

	return utils.Success(c, transaction)
}

func DeleteTransaction(c *fiber.Ctx) error {
	id := c.Params("id")
	var transaction models.Transaction
	if db.DB.First(&transaction, id).RowsAffected == 0 {
		return utils.NotFound("Transaction not found")
	}
	if err := db.DB.Delete(&transaction).Error; err != nil {
		return utils.Internal("Failed to delete transaction")
	}
	return utils.Message(c, "Transaction deleted successfully")
}
