package client

import (
	"context"
	"errors"
	"sync"

	"github.com/lzmu/lzmubackend/dto"
	"github.com/lzmu/lzmubackend/mailer"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
)

const (
	MsgSomethingWentWrong = "Something went wrong. Please try again."
	MsgFailedToSend       = "Failed to send message. Please try again later."
)

var (
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrAlreadySubmitted = errors.New("the form has already been submitted")
)

// Form is one quote form: the fields a visitor typed and where the
// submission stands. Only one submission can be in flight per Form.
type Form struct {
	client *Client

	mu         sync.Mutex
	fields     dto.QuoteRequest
	submitting bool
	submitted  bool
	errMsg     string
	receipt    mailer.Receipt
}

func NewForm(c *Client) *Form {
	return &Form{client: c}
}

// SetFields replaces the field values. Ignored once the form is submitted.
func (f *Form) SetFields(q dto.QuoteRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted {
		return
	}
	f.fields = q
}

func (f *Form) Fields() dto.QuoteRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case f.submitted:
		return StateSubmitted
	case f.submitting:
		return StateSubmitting
	default:
		return StateIdle
	}
}

// Error is the message shown under the form; empty when there is none.
func (f *Form) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

func (f *Form) Receipt() mailer.Receipt {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.receipt
}

// Confirmation is the text of the panel that replaces a submitted form.
func (f *Form) Confirmation() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.submitted {
		return ""
	}
	return "Thanks, " + f.fields.Name + "! Our team will personally review your request and reach out within 24 hours."
}

// Submit sends the current fields once. Endpoint and network failures do
// not come back as errors: they leave the form idle with Error() set, ready
// to resubmit. Only a refused submission returns an error.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch {
	case f.submitted:
		f.mu.Unlock()
		return ErrAlreadySubmitted
	case f.submitting:
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	f.submitting = true
	f.errMsg = ""
	fields := f.fields
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	receipt, err := f.client.Send(ctx, fields)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		f.submitted = true
		f.receipt = receipt
		return nil
	}
	f.errMsg = failureMessage(err)
	return nil
}

func failureMessage(err error) string {
	var rerr *ResponseError
	if !errors.As(err, &rerr) {
		return MsgFailedToSend
	}
	// An error response that is not JSON fails like a dropped connection.
	if rerr.DecodeErr != nil {
		return MsgFailedToSend
	}
	if msg := rerr.Message(); msg != "" {
		return msg
	}
	return MsgSomethingWentWrong
}
