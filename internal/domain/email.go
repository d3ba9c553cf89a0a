package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SurveyReceiptEmailData holds data for the survey receipt email.
type SurveyReceiptEmailData struct {
	Email          string
	Name           string
	ConferenceName string
	SurveyType     string
}

// EmailService sends attendee-facing emails.
type EmailService interface {
	SendSurveyReceipt(ctx context.Context, data *SurveyReceiptEmailData) error
}
