package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

const defaultSenderName = "Skincare Clinic"

// SendEmail delivers a transactional HTML mail (booking confirmations,
// appointment reminders) through the configured SMTP relay.
func SendEmail(to, subject, body string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	sender := os.Getenv("EMAIL_SENDER_NAME")
	if sender == "" {
		sender = defaultSenderName
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetAddressHeader("From", os.Getenv("EMAIL_USER"), sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", sender+" - "+subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}
