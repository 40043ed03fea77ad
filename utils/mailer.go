package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESMailer sends transactional mail through AWS SES. A mailer with no
// source address or no usable AWS config reports itself unconfigured so
// callers can degrade instead of crashing.
type SESMailer struct {
	client *ses.Client
	source string
}

func NewSESMailer() *SESMailer {
	m := &SESMailer{source: os.Getenv("SES_EMAIL")}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Printf("AWS config load failed, mailer disabled: %v", err)
		return m
	}
	m.client = ses.NewFromConfig(cfg)
	return m
}

func (m *SESMailer) Configured() bool {
	return m.client != nil && m.source != ""
}

func (m *SESMailer) Send(to, subject, htmlBody string) error {
	if !m.Configured() {
		return errors.New("mailer not configured")
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(htmlBody),
				},
			},
		},
		Source: aws.String(m.source),
	}

	if _, err := m.client.SendEmail(context.TODO(), input); err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}
