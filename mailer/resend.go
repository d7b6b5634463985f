package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

type ResendSender struct {
	client *resend.Client
}

func NewResendSender(apiKey string) (*ResendSender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: RESEND_API_KEY is empty", ErrNotConfigured)
	}
	return &ResendSender{client: resend.NewClient(apiKey)}, nil
}

// NewResendSenderWithClient is used when the caller needs a custom base URL
// or HTTP client.
func NewResendSenderWithClient(client *resend.Client) *ResendSender {
	return &ResendSender{client: client}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Receipt{}, errors.Join(ErrFailedToSend, err)
		}
		return Receipt{}, &ProviderError{
			Name:    "resend_error",
			Message: strings.TrimPrefix(err.Error(), "[ERROR]: "),
		}
	}
	return Receipt{ID: sent.Id}, nil
}
