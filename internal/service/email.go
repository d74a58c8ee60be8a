package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridEmailService) SendClaimNotification(ctx context.Context, requesterEmail, requesterName, donorName, donorEmail, bloodGroup string) error {
	subject := "A donor accepted your blood donation request"
	body := fmt.Sprintf(
		"Hello %s,\n\n%s (%s) has accepted your %s donation request and will be in touch.\n\nBest regards,\nThe BloodLink Team",
		requesterName, donorName, donorEmail, bloodGroup,
	)
	return s.send(requesterEmail, requesterName, subject, body)
}

func (s *sendGridEmailService) SendPaymentReceipt(ctx context.Context, email string, amountCents int64, transactionID string) error {
	subject := "Thank you for your donation"
	body := fmt.Sprintf(
		"Hello,\n\nWe received your contribution of $%.2f (transaction %s). Thank you for supporting the fund.\n\nBest regards,\nThe BloodLink Team",
		float64(amountCents)/100, transactionID,
	)
	return s.send(email, "", subject, body)
}
