package mailer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"restock_service/internal/domain/entities"
	"restock_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

var (
	ErrMissingFromAddress   = errors.New("missing MAIL_FROM_ADDRESS")
	ErrMailerNotConfigured  = errors.New("ses mailer not configured")
	ErrMissingRecipient     = errors.New("email has no recipient")
	ErrEmptyProviderMessage = errors.New("ses returned no message id")
)

const charsetUTF8 = "UTF-8"

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESMailer sends supplier emails through Amazon SES v2.
//
// With EMAIL_SENDER_MOCK (or MAILER_MOCK) set, nothing leaves the process:
// the email is logged and a synthetic message id is returned.
type SESMailer struct {
	client      sesAPI
	fromAddress string
	mockMode    bool
}

var _ interfaces.IEmailSender = (*SESMailer)(nil)

// NewSESMailer builds the mailer from a shared AWS config. endpoint is
// optional (e.g. a LocalStack URL).
func NewSESMailer(cfg aws.Config, endpoint, fromAddress string) (*SESMailer, error) {
	if isEmailSenderMockEnabled() {
		log.Printf("[mailer] mock mode enabled")
		return &SESMailer{fromAddress: fromAddress, mockMode: true}, nil
	}

	fromAddress = strings.TrimSpace(fromAddress)
	if fromAddress == "" {
		log.Printf("[mailer] missing MAIL_FROM_ADDRESS")
		return nil, ErrMissingFromAddress
	}

	client := sesv2.NewFromConfig(cfg, func(o *sesv2.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	log.Printf("[mailer] SES client initialized from=%s", fromAddress)
	return &SESMailer{client: client, fromAddress: fromAddress}, nil
}

func (m *SESMailer) Send(ctx context.Context, email entities.SupplierEmail) (string, error) {
	to := strings.TrimSpace(email.To)
	if to == "" {
		return "", ErrMissingRecipient
	}

	if m != nil && m.mockMode {
		id := fmt.Sprintf("mock-%d", time.Now().UTC().UnixNano())
		log.Printf("[mailer] mock send session_id=%s supplier_id=%s to=%s subject=%q message_id=%s",
			email.SessionID, email.SupplierID, to, email.Subject, id)
		return id, nil
	}

	if m == nil || m.client == nil {
		log.Printf("[mailer] mailer not configured")
		return "", ErrMailerNotConfigured
	}
	log.Printf("[mailer] send start session_id=%s supplier_id=%s to=%s", email.SessionID, email.SupplierID, to)

	out, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charsetUTF8)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(email.Body), Charset: aws.String(charsetUTF8)},
				},
			},
		},
		EmailTags: []types.MessageTag{
			{Name: aws.String("session_id"), Value: aws.String(sanitizeTagValue(email.SessionID))},
		},
	})
	if err != nil {
		log.Printf("[mailer] ses send failed supplier_id=%s err=%v", email.SupplierID, err)
		return "", err
	}
	if out == nil || aws.ToString(out.MessageId) == "" {
		return "", ErrEmptyProviderMessage
	}

	id := aws.ToString(out.MessageId)
	log.Printf("[mailer] send success supplier_id=%s message_id=%s", email.SupplierID, id)
	return id, nil
}

// sanitizeTagValue keeps the characters SES accepts in tag values.
func sanitizeTagValue(v string) string {
	var b strings.Builder
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "none"
	}
	return b.String()
}

func isEmailSenderMockEnabled() bool {
	for _, key := range []string{"EMAIL_SENDER_MOCK", "MAILER_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
