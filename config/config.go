package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lzmu/lzmubackend/utils"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	GinMode        string        `env:"GIN_MODE" envDefault:"release"`
	AllowedOrigins string        `env:"ALLOWED_ORIGINS"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownAfter  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Email Email
	Quote Quote
}

// Email selects the provider and carries its credentials. Credentials are
// optional here: a missing key is reported on each request, not at startup.
type Email struct {
	Provider             string `env:"EMAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey         string `env:"RESEND_API_KEY"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

type Quote struct {
	From             string `env:"QUOTE_FROM" envDefault:"Lzmu Quote Request <onboarding@resend.dev>"`
	To               string `env:"QUOTE_TO" envDefault:"hello@lzmu.dev"`
	StrictValidation bool   `env:"QUOTE_STRICT_VALIDATION" envDefault:"false"`
}

// Load reads an optional .env file and parses the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	return Parse()
}

// Parse reads the process environment without touching .env files.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Email.Provider {
	case "resend", "postmark", "dev":
	default:
		return fmt.Errorf("%w: unknown EMAIL_PROVIDER %q", ErrInvalidConfig, c.Email.Provider)
	}
	if c.Quote.From == "" || c.Quote.To == "" {
		return fmt.Errorf("%w: QUOTE_FROM and QUOTE_TO must not be empty", ErrInvalidConfig)
	}
	return nil
}

// Origins returns the CORS allow-list as a set.
func (c Config) Origins() map[string]bool {
	return utils.SplitCSVSet(c.AllowedOrigins)
}

func (c Config) Addr() string {
	return ":" + c.Port
}
