package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
)

const MercadoPagoAPIURL = "https://api.mercadopago.com"

// MercadoPago consulta a API de pagamentos do Mercado Pago.
type MercadoPago struct {
	baseURL     string
	accessToken string
	timeout     time.Duration
	httpClient  *http.Client
}

// NewMercadoPago cria o cliente. O timeout limita cada consulta ao processador.
func NewMercadoPago(baseURL, accessToken string, timeout time.Duration) *MercadoPago {
	if baseURL == "" {
		baseURL = MercadoPagoAPIURL
	}
	return &MercadoPago{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		timeout:     timeout,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

func (m *MercadoPago) Nome() string { return "mercadopago" }

type mpPagamento struct {
	ID           json.Number `json:"id"`
	Status       string      `json:"status"`
	DateApproved string      `json:"date_approved"`
	Payer        *struct {
		Email string `json:"email"`
	} `json:"payer"`
}

// BuscarPagamento faz GET /v1/payments/{id}.
func (m *MercadoPago) BuscarPagamento(ctx context.Context, id string) (*domain.Pagamento, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/v1/payments/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("montando requisição ao mercado pago: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndisponivel, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusBadRequest:
		return nil, ErrNaoEncontrado
	case resp.StatusCode != http.StatusOK:
		// 401/403 também caem aqui: credencial errada se corrige sem perder o evento.
		return nil, fmt.Errorf("%w: status %d", ErrIndisponivel, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: lendo resposta: %v", ErrIndisponivel, err)
	}

	var p mpPagamento
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: resposta inválida: %v", ErrIndisponivel, err)
	}
	if p.Status == "" {
		return nil, ErrNaoEncontrado
	}

	pagamento := &domain.Pagamento{ID: id, Status: p.Status}
	if p.ID != "" {
		pagamento.ID = p.ID.String()
	}
	if p.Payer != nil {
		pagamento.EmailPagador = strings.TrimSpace(p.Payer.Email)
	}
	if p.DateApproved != "" {
		if t, err := time.Parse(time.RFC3339Nano, p.DateApproved); err == nil {
			pagamento.DataAprovacao = t
		} else {
			slog.Warn("date_approved em formato inesperado", "pagamento_id", id, "valor", p.DateApproved)
		}
	}
	return pagamento, nil
}
