package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vitrine/internal/config"
	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const mailCharset = "UTF-8"

// sesAPI is the part of the SES client used by the mailer.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesMailer struct {
	client sesAPI
	from   string
	logger *logger.Logger
}

// NewSESMailer returns a [Mailer] backed by Amazon SES in cfg.MailRegion.
// Credentials come from the default AWS chain. It returns nil, nil when no
// region is configured: replies are then stored without being sent.
func NewSESMailer(ctx context.Context, cfg config.Adapter, logger *logger.Logger) (Mailer, error) {
	if cfg.MailRegion == "" {
		logger.Info().Msg("mail region not configured, contact replies will not be e-mailed")
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.MailRegion))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS configuration: %w", err)
	}

	return newSESMailer(ses.NewFromConfig(awsCfg), cfg.MailFrom, logger), nil
}

func newSESMailer(client sesAPI, from string, logger *logger.Logger) *sesMailer {
	return &sesMailer{client: client, from: from, logger: logger}
}

// Send implements [Mailer].
func (m *sesMailer) Send(ctx context.Context, to, subject, body string) error {
	out, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(m.from),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String(mailCharset)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body), Charset: aws.String(mailCharset)},
			},
		},
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("to", to).Msg("error sending mail")
		return fmt.Errorf("%w: %w", ErrMailNotSent, err)
	}

	m.logger.Info().Str("message_id", aws.ToString(out.MessageId)).Msg("mail sent")
	return nil
}
