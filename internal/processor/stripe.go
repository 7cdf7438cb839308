package processor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
	"github.com/willjrcristo/atelie-inteligente/internal/domain"
)

// ErrAssinaturaWebhook indica que o header Stripe-Signature não confere com o segredo.
var ErrAssinaturaWebhook = errors.New("assinatura do webhook da stripe inválida")

// Stripe trata PaymentIntents como pagamentos: 'succeeded' equivale a 'approved'.
type Stripe struct {
	api           *client.API
	webhookSecret string
}

// NewStripe cria o cliente. apiURL vazio usa a API pública da Stripe.
func NewStripe(secretKey, webhookSecret, apiURL string, timeout time.Duration) *Stripe {
	cfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: timeout},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	if apiURL != "" {
		cfg.URL = stripe.String(apiURL)
	}
	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, cfg),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg),
	}
	return &Stripe{
		api:           client.New(secretKey, backends),
		webhookSecret: webhookSecret,
	}
}

func (s *Stripe) Nome() string { return "stripe" }

// BuscarPagamento busca o PaymentIntent, com o customer expandido para achar o e-mail.
func (s *Stripe) BuscarPagamento(ctx context.Context, id string) (*domain.Pagamento, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.AddExpand("customer")

	pi, err := s.api.PaymentIntents.Get(id, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			if stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Code == stripe.ErrorCodeResourceMissing {
				return nil, ErrNaoEncontrado
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrIndisponivel, err)
	}
	if pi == nil || pi.Status == "" {
		return nil, ErrNaoEncontrado
	}

	pagamento := &domain.Pagamento{
		ID:           pi.ID,
		Status:       statusStripe(pi.Status),
		EmailPagador: strings.TrimSpace(pi.ReceiptEmail),
	}
	if pagamento.EmailPagador == "" && pi.Customer != nil {
		pagamento.EmailPagador = strings.TrimSpace(pi.Customer.Email)
	}
	return pagamento, nil
}

func statusStripe(s stripe.PaymentIntentStatus) string {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return domain.StatusPagamentoAprovado
	case stripe.PaymentIntentStatusProcessing:
		return "in_process"
	case stripe.PaymentIntentStatusCanceled:
		return "cancelled"
	}
	return string(s)
}

// ExtrairNotificacao valida a assinatura do evento e devolve o ID do PaymentIntent.
// relevante é false para eventos que não são de payment_intent.
func (s *Stripe) ExtrairNotificacao(payload []byte, assinatura string) (id string, relevante bool, err error) {
	event, err := webhook.ConstructEventWithOptions(payload, assinatura, s.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrAssinaturaWebhook, err)
	}

	if !strings.HasPrefix(string(event.Type), "payment_intent.") || event.Data == nil {
		return "", false, nil
	}
	id, _ = event.Data.Object["id"].(string)
	return id, true, nil
}
