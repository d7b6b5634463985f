package mailer

import (
	"fmt"

	"github.com/lzmu/lzmubackend/config"
)

type staticResolver struct {
	sender Sender
	err    error
}

func (r staticResolver) Resolve() (Sender, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.sender, nil
}

// NewResolver builds the provider named in cfg once. A missing credential does
// not fail here; every Resolve call reports it instead.
func NewResolver(cfg config.Email) Resolver {
	sender, err := newSender(cfg)
	return staticResolver{sender: sender, err: err}
}

func newSender(cfg config.Email) (Sender, error) {
	switch cfg.Provider {
	case "", "resend":
		return NewResendSender(cfg.ResendAPIKey)
	case "postmark":
		return NewPostmarkSender(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	case "dev":
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrNotConfigured, cfg.Provider)
	}
}
