package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"confcompanion/internal/domain"
)

const (
	sendTimeout = 10 * time.Second
	utf8Charset = "UTF-8"
)

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
}

// NewMailer creates a mailer from config. Provider "ses" uses AWS SES; "noop", "" or unknown uses a no-op mailer.
func NewMailer(config MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	switch config.Provider {
	case "ses":
		if config.SES.Region == "" || config.FromAddress == "" {
			return nil, errors.New("ses mailer requires a region and a from address")
		}
		from := mail.Address{Name: config.FromName, Address: config.FromAddress}
		if config.SES.InsecureSkipVerify {
			logger.Warn("TLS certificate verification is disabled for SES, use only in development")
		}
		return &sesMailer{
			client: newSESClient(config.SES),
			source: from.String(),
			logger: logger,
		}, nil
	case "noop", "":
		return &noopMailer{logger: logger}, nil
	default:
		logger.Warn("unknown email provider, using noop", "provider", config.Provider)
		return &noopMailer{logger: logger}, nil
	}
}

func newSESClient(cfg SESConfig) *ses.Client {
	httpClient := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: cfg.InsecureSkipVerify,
				MinVersion:         tls.VersionTLS12,
			},
		},
	}
	awsCfg := aws.Config{
		Region:     cfg.Region,
		HTTPClient: httpClient,
	}
	// Empty static keys would fail every call; leave credentials unset so the
	// SDK reports the missing configuration instead.
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		)
	}
	return ses.NewFromConfig(awsCfg)
}

// sesAPI is the slice of the SES client the mailer uses.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesMailer struct {
	client sesAPI
	source string
	logger *slog.Logger
}

func (s *sesMailer) Send(to, subject, html, text string) error {
	if html == "" && text == "" {
		return errors.New("email has no body")
	}
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	result, err := s.client.SendEmail(ctx, sendEmailInput(s.source, to, subject, html, text))
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	s.logger.Info("email sent via SES", "message_id", aws.ToString(result.MessageId))
	return nil
}

func sendEmailInput(source, to, subject, html, text string) *ses.SendEmailInput {
	body := &types.Body{}
	if html != "" {
		body.Html = utf8Content(html)
	}
	if text != "" {
		body.Text = utf8Content(text)
	}
	return &ses.SendEmailInput{
		Source:      aws.String(source),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: utf8Content(subject),
			Body:    body,
		},
	}
}

func utf8Content(s string) *types.Content {
	return &types.Content{Data: aws.String(s), Charset: aws.String(utf8Charset)}
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(to, subject, html, text string) error {
	n.logger.Debug("email would be sent (noop)", "to", to, "subject", subject)
	return nil
}
