package processor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78/webhook"
)

const segredoTeste = "whsec_teste"

func novoStripeFake(t *testing.T, handler http.HandlerFunc) *Stripe {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewStripe("sk_test_123", segredoTeste, srv.URL, time.Second)
}

func TestStripe_BuscarPagamento(t *testing.T) {
	t.Run("succeeded vira approved e usa o e-mail do recibo", func(t *testing.T) {
		s := novoStripeFake(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"pi_123","object":"payment_intent","status":"succeeded","receipt_email":"ana@atelie.com"}`))
		})

		p, err := s.BuscarPagamento(context.Background(), "pi_123")
		require.NoError(t, err)
		assert.True(t, p.Aprovado())
		assert.Equal(t, "ana@atelie.com", p.EmailPagador)
	})

	t.Run("sem recibo usa o e-mail do customer", func(t *testing.T) {
		s := novoStripeFake(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"pi_1","object":"payment_intent","status":"succeeded","customer":{"id":"cus_1","object":"customer","email":"bia@email.com"}}`))
		})

		p, err := s.BuscarPagamento(context.Background(), "pi_1")
		require.NoError(t, err)
		assert.Equal(t, "bia@email.com", p.EmailPagador)
	})

	t.Run("processing não é aprovado", func(t *testing.T) {
		s := novoStripeFake(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"pi_2","object":"payment_intent","status":"processing"}`))
		})

		p, err := s.BuscarPagamento(context.Background(), "pi_2")
		require.NoError(t, err)
		assert.False(t, p.Aprovado())
	})

	t.Run("404 vira não encontrado", func(t *testing.T) {
		s := novoStripeFake(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such payment_intent"}}`))
		})

		_, err := s.BuscarPagamento(context.Background(), "pi_x")
		assert.ErrorIs(t, err, ErrNaoEncontrado)
	})

	t.Run("500 é indisponibilidade", func(t *testing.T) {
		s := novoStripeFake(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"type":"api_error","message":"boom"}}`))
		})

		_, err := s.BuscarPagamento(context.Background(), "pi_x")
		assert.ErrorIs(t, err, ErrIndisponivel)
	})
}

func TestStripe_ExtrairNotificacao(t *testing.T) {
	s := NewStripe("sk_test_123", segredoTeste, "", time.Second)

	assinar := func(payload string) string {
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   []byte(payload),
			Secret:    segredoTeste,
			Timestamp: time.Now(),
		})
		return signed.Header
	}

	t.Run("payment_intent devolve o ID", func(t *testing.T) {
		payload := `{"id":"evt_1","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_123","object":"payment_intent"}}}`
		id, relevante, err := s.ExtrairNotificacao([]byte(payload), assinar(payload))
		require.NoError(t, err)
		assert.True(t, relevante)
		assert.Equal(t, "pi_123", id)
	})

	t.Run("outros eventos são ignorados", func(t *testing.T) {
		payload := `{"id":"evt_2","object":"event","type":"customer.created","data":{"object":{"id":"cus_1","object":"customer"}}}`
		_, relevante, err := s.ExtrairNotificacao([]byte(payload), assinar(payload))
		require.NoError(t, err)
		assert.False(t, relevante)
	})

	t.Run("assinatura inválida", func(t *testing.T) {
		_, _, err := s.ExtrairNotificacao([]byte(`{}`), "t=1,v1=abc")
		assert.ErrorIs(t, err, ErrAssinaturaWebhook)
	})
}
