package service

import (
	"context"
	"fmt"

	"clubhub-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendDecisionEmail(ctx context.Context, email, name string, app *domain.Application) error {
	subject, body := decisionMessage(name, app)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send decision email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

// decisionMessage builds the subject and plain-text body for a decision,
// templated by application type.
func decisionMessage(name string, app *domain.Application) (string, string) {
	accepted := app.Status == domain.ApplicationStatusAccepted

	var what string
	switch app.ApplicationType {
	case domain.ApplicationTypeProject:
		what = fmt.Sprintf("Project Application - %s", app.TargetName)
	case domain.ApplicationTypeClass:
		what = fmt.Sprintf("Class Application - %s", app.TargetName)
	case domain.ApplicationTypeBoard:
		what = fmt.Sprintf("Board Application - %s", app.BoardPosition)
	default:
		what = "Club Application"
	}

	var subject, body string
	if accepted {
		subject = fmt.Sprintf("Accepted: %s", what)
		body = fmt.Sprintf("Hello %s,\n\nGood news! Your application has been accepted.", name)
		switch app.ApplicationType {
		case domain.ApplicationTypeProject:
			body += fmt.Sprintf("\n\nYou are now part of the %s project team. Watch for a Slack invite with your project channel.", app.TargetName)
		case domain.ApplicationTypeClass:
			body += fmt.Sprintf("\n\nYou are now enrolled in %s. Watch for a Slack invite with your class channel.", app.TargetName)
		}
	} else {
		subject = fmt.Sprintf("Update on your application: %s", what)
		body = fmt.Sprintf("Hello %s,\n\nThank you for applying. Unfortunately we are unable to accept your application at this time.\n\nWe encourage you to apply again next semester.", name)
	}
	body += "\n\nBest,\nThe Club Board"

	return subject, body
}
