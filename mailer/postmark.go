package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"
)

type PostmarkSender struct {
	client *postmark.Client
}

func NewPostmarkSender(serverToken, accountToken string) (*PostmarkSender, error) {
	if serverToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is empty", ErrNotConfigured)
	}
	return &PostmarkSender{client: postmark.NewClient(serverToken, accountToken)}, nil
}

func NewPostmarkSenderWithClient(client *postmark.Client) *PostmarkSender {
	return &PostmarkSender{client: client}
}

func (s *PostmarkSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     msg.From,
		To:       strings.Join(msg.To, ","),
		Subject:  msg.Subject,
		HTMLBody: msg.HTML,
		Tag:      "quote-request",
	})
	if err != nil {
		return Receipt{}, &ProviderError{Name: "postmark_error", Message: err.Error()}
	}
	if resp.ErrorCode > 0 {
		return Receipt{}, &ProviderError{
			Name:       "postmark_error",
			Message:    resp.Message,
			StatusCode: int(resp.ErrorCode),
		}
	}
	return Receipt{ID: resp.MessageID}, nil
}
