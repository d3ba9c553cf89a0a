package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"confcompanion/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

const surveyReceiptTemplate = "survey_receipt"

// SendSurveyReceipt sends the survey receipt template to the respondent.
// A cancelled ctx skips the send.
func (s *emailService) SendSurveyReceipt(ctx context.Context, data *domain.SurveyReceiptEmailData) error {
	if data == nil || strings.TrimSpace(data.Email) == "" {
		return fmt.Errorf("survey receipt needs a recipient: %w", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	subject, htmlBody, textBody, err := s.renderer.Render(surveyReceiptTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", surveyReceiptTemplate, err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send survey receipt email: %w", err)
	}
	s.logger.InfoContext(ctx, "survey receipt sent", "to", data.Email, "survey_type", data.SurveyType)
	return nil
}
