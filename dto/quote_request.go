package dto

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/lzmu/lzmubackend/models"
	"github.com/lzmu/lzmubackend/utils"
)

// QuoteRequest is the body of POST /api/send. It lives for one request and
// is never stored.
type QuoteRequest struct {
	Name     string `json:"name"     validate:"required,max=200"`
	Email    string `json:"email"    validate:"required,email,max=254"`
	Company  string `json:"company"  validate:"max=200"`
	Service  string `json:"service"  validate:"required,quote_service"`
	Budget   string `json:"budget"   validate:"required,quote_budget"`
	Timeline string `json:"timeline" validate:"max=200"`
	Message  string `json:"message"  validate:"required,max=5000"`
}

// Normalize returns a copy with every field passed through utils.NormalizeText.
func (q QuoteRequest) Normalize() QuoteRequest {
	return QuoteRequest{
		Name:     utils.NormalizeText(q.Name),
		Email:    utils.NormalizeText(q.Email),
		Company:  utils.NormalizeText(q.Company),
		Service:  utils.NormalizeText(q.Service),
		Budget:   utils.NormalizeText(q.Budget),
		Timeline: utils.NormalizeText(q.Timeline),
		Message:  utils.NormalizeText(q.Message),
	}
}

// FieldErrors maps json field names to the failed rule.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return "invalid quote request"
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func quoteValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonTagName)
		_ = validate.RegisterValidation("quote_service", func(fl validator.FieldLevel) bool {
			return utils.Contains(models.Services, fl.Field().String())
		})
		_ = validate.RegisterValidation("quote_budget", func(fl validator.FieldLevel) bool {
			return utils.Contains(models.Budgets, fl.Field().String())
		})
	})
	return validate
}

// Validate applies the strict rules. It is only called when strict
// validation is enabled; the default contract forwards whatever arrives.
func (q QuoteRequest) Validate() error {
	err := quoteValidator().Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := FieldErrors{}
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
