package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lzmu/lzmubackend/dto"
	"github.com/lzmu/lzmubackend/mailer"
	"github.com/lzmu/lzmubackend/middleware"
)

const maxQuoteBodyBytes = 64 << 10

var errInvalidPayload = errors.New("invalid quote request payload")

// QuoteSettings is the fixed envelope of every outbound quote email.
type QuoteSettings struct {
	From             string
	To               string
	StrictValidation bool
}

// SendQuoteRequest forwards one quote request to the email provider.
//
// Every failure is a 500 with an {"error": ...} body: a missing credential,
// an unreadable body, or a provider rejection. The one exception is strict
// validation, which answers 400 and is off unless configured.
func SendQuoteRequest(resolver mailer.Resolver, settings QuoteSettings, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// A visitor closing the tab must not abort a send already under way.
		ctx := context.WithoutCancel(c.Request.Context())
		reqID := zap.String("request_id", middleware.GetRequestID(c))

		sender, err := resolver.Resolve()
		if err != nil {
			log.Error("email provider not configured", reqID, zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service not configured"})
			return
		}

		body, err := decodeQuoteRequest(c)
		if err != nil {
			log.Warn("unreadable quote request", reqID, zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		req := body.Normalize()

		if settings.StrictValidation {
			if err := req.Validate(); err != nil {
				var fields dto.FieldErrors
				if errors.As(err, &fields) {
					c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
						"message": "Invalid quote request",
						"fields":  fields,
					}})
					return
				}
				log.Error("quote validation failed", reqID, zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
		}

		msg, err := mailer.NewQuoteMessage(ctx, settings.From, settings.To, req)
		if err != nil {
			log.Error("render quote email", reqID, zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		receipt, err := sender.Send(ctx, msg)
		if err != nil {
			log.Error("send quote email", reqID, zap.Error(err))
			var pe *mailer.ProviderError
			if errors.As(err, &pe) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": pe})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": mailer.ProviderError{
				Name:    "application_error",
				Message: "Failed to send email",
			}})
			return
		}

		log.Info("quote request forwarded", reqID, zap.String("message_id", receipt.ID))
		c.JSON(http.StatusOK, receipt)
	}
}

// decodeQuoteRequest rejects empty, malformed, null and wrongly typed bodies,
// and anything trailing the JSON object. Missing fields are fine.
func decodeQuoteRequest(c *gin.Context) (*dto.QuoteRequest, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxQuoteBodyBytes))
	if err != nil {
		return nil, errors.Join(errInvalidPayload, err)
	}

	var body *dto.QuoteRequest
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.Join(errInvalidPayload, err)
	}
	if body == nil {
		return nil, errInvalidPayload
	}
	return body, nil
}
