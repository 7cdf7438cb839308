package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// Config reúne tudo o que a API lê do ambiente.
type Config struct {
	Port         string
	DatabasePath string

	SessionSecret string
	SessionTTL    time.Duration

	MercadoPagoAccessToken string
	MercadoPagoAPIURL      string
	ProcessadorTimeout     time.Duration

	PlanoID               string
	PeriodoAssinaturaDias int

	// Stripe é opcional: sem STRIPE_SECRET_KEY a rota /webhooks/stripe não é montada.
	StripeSecretKey     string
	StripeWebhookSecret string
	StripeAPIURL        string

	// Token estático para as rotas /admin. Vazio desliga as rotas.
	AdminToken string
}

// StripeHabilitada informa se a integração com a Stripe foi configurada.
func (c Config) StripeHabilitada() bool {
	return c.StripeSecretKey != ""
}

// Load lê .env (se existir) e depois as variáveis de ambiente.
func Load() (Config, error) {
	// Não é erro se o arquivo não existir.
	_ = godotenv.Load(".env", ".env.local")

	var errs error
	c := Config{
		Port:                   getenv("PORT", "8080"),
		DatabasePath:           getenv("DATABASE_PATH", "./atelie.db"),
		SessionSecret:          os.Getenv("SESSION_SECRET"),
		MercadoPagoAccessToken: os.Getenv("MERCADO_PAGO_ACCESS_TOKEN"),
		MercadoPagoAPIURL:      getenv("MERCADO_PAGO_API_URL", "https://api.mercadopago.com"),
		PlanoID:                getenv("PLANO_ID", "premium"),
		StripeSecretKey:        os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret:    os.Getenv("STRIPE_WEBHOOK_SECRET"),
		StripeAPIURL:           os.Getenv("STRIPE_API_URL"),
		AdminToken:             os.Getenv("ADMIN_TOKEN"),
	}

	var err error
	if c.SessionTTL, err = getDuration("SESSION_TTL", 24*time.Hour); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.ProcessadorTimeout, err = getDuration("PROCESSADOR_TIMEOUT", 10*time.Second); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.PeriodoAssinaturaDias, err = getInt("PERIODO_ASSINATURA_DIAS", 30); err != nil {
		errs = multierror.Append(errs, err)
	}

	if err := c.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return c, errs
}

// Validate confere as regras que não dependem de parsing.
func (c Config) Validate() error {
	var errs *multierror.Error
	if c.SessionSecret == "" {
		errs = multierror.Append(errs, errors.New("SESSION_SECRET é obrigatório"))
	} else if len(c.SessionSecret) < 32 {
		errs = multierror.Append(errs, errors.New("SESSION_SECRET deve ter pelo menos 32 caracteres"))
	}
	if c.MercadoPagoAccessToken == "" {
		errs = multierror.Append(errs, errors.New("MERCADO_PAGO_ACCESS_TOKEN é obrigatório"))
	}
	if c.PeriodoAssinaturaDias <= 0 {
		errs = multierror.Append(errs, errors.New("PERIODO_ASSINATURA_DIAS deve ser positivo"))
	}
	if c.ProcessadorTimeout <= 0 {
		errs = multierror.Append(errs, errors.New("PROCESSADOR_TIMEOUT deve ser positivo"))
	}
	if c.StripeSecretKey != "" && c.StripeWebhookSecret == "" {
		errs = multierror.Append(errs, errors.New("STRIPE_WEBHOOK_SECRET é obrigatório quando STRIPE_SECRET_KEY está definido"))
	}
	return errs.ErrorOrNil()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s inválido: %w", k, err)
	}
	return d, nil
}

func getInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s inválido: %w", k, err)
	}
	return n, nil
}
