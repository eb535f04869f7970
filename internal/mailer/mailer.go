package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer delivers status-change notifications. Implementations must never
// make delivery failures fatal to the caller's request.
type Mailer interface {
	SendStatusUpdate(ctx context.Context, to, applicantName string, applicationID uint, statusLabel string) error
}

// SESMailer sends through AWS SES.
type SESMailer struct {
	client *ses.Client
	from   string
}

func NewSESMailer(ctx context.Context, region, from string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), from: from}, nil
}

func (m *SESMailer) SendStatusUpdate(ctx context.Context, to, applicantName string, applicationID uint, statusLabel string) error {
	subject := fmt.Sprintf("Your funding application is now %s", statusLabel)
	body := fmt.Sprintf(
		"Hi %s,\n\nThe status of your funding application #%d changed to: %s.\n\nYou can review the details in your dashboard.\n\nThe FemFund Team",
		applicantName, applicationID, statusLabel,
	)

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(m.from),
		Destination: &sestypes.Destination{ToAddresses: []string{to}},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
	})
	return err
}

// Noop is used when no email credential is configured.
type Noop struct{}

func (Noop) SendStatusUpdate(context.Context, string, string, uint, string) error {
	return nil
}
