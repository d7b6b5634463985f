// Package mailer forwards quote requests to a transactional email provider.
//
// Providers sit behind the Sender interface: ResendSender (the production
// default), PostmarkSender and DevSender, which writes messages to disk for
// local work. A Resolver hands the configured Sender to the HTTP layer and
// reports ErrNotConfigured when the provider credential is absent.
package mailer

import "context"

// Message is one outbound email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Receipt is the provider acknowledgment returned to the caller as-is.
type Receipt struct {
	ID string `json:"id"`
}

type Sender interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
}

// Resolver returns the Sender to use for the current request.
type Resolver interface {
	Resolve() (Sender, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func() (Sender, error)

func (f ResolverFunc) Resolve() (Sender, error) { return f() }
