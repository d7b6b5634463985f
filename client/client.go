// Package client submits quote requests to the /api/send endpoint and tracks
// the state of one quote form.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lzmu/lzmubackend/dto"
	"github.com/lzmu/lzmubackend/mailer"
)

const sendPath = "/api/send"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New returns a client for the service at baseURL, e.g. "https://lzmu.dev".
// No timeout is set; the transport defaults apply.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResponseError is a non-2xx answer from the endpoint.
type ResponseError struct {
	StatusCode int
	// Body is the decoded {"error": ...} payload, nil when the body was not JSON.
	Body *ErrorBody
	// DecodeErr is set when the body could not be decoded.
	DecodeErr error
}

func (e *ResponseError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("quote endpoint returned %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("quote endpoint returned %d", e.StatusCode)
}

// Message is error.message when the endpoint sent an error object with a
// message. A plain string error does not count.
func (e *ResponseError) Message() string {
	if e.Body == nil {
		return ""
	}
	return e.Body.Message()
}

// ErrorBody keeps the raw "error" value, which is either a string or an
// object depending on the failure.
type ErrorBody struct {
	Error json.RawMessage `json:"error"`
}

func (b ErrorBody) Message() string {
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b.Error, &obj); err != nil {
		return ""
	}
	return obj.Message
}

// Send posts q as JSON. A transport failure is returned as-is; any non-2xx
// status comes back as *ResponseError.
func (c *Client) Send(ctx context.Context, q dto.QuoteRequest) (mailer.Receipt, error) {
	payload, err := json.Marshal(q)
	if err != nil {
		return mailer.Receipt{}, fmt.Errorf("encode quote request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(payload))
	if err != nil {
		return mailer.Receipt{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mailer.Receipt{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return mailer.Receipt{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rerr := &ResponseError{StatusCode: resp.StatusCode}
		var body ErrorBody
		if err := json.Unmarshal(raw, &body); err != nil {
			rerr.DecodeErr = err
		} else {
			rerr.Body = &body
		}
		return mailer.Receipt{}, rerr
	}

	// A 2xx is a success whatever the body says; the receipt is best effort.
	var receipt mailer.Receipt
	_ = json.Unmarshal(raw, &receipt)
	return receipt, nil
}
