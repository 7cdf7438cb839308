package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/willjrcristo/atelie-inteligente/internal/service"
)

const (
	maxBodyBytes = int64(65536) // Limite de 64KB

	// Teto da conciliação inteira. O processador tem o próprio timeout, menor.
	tempoMaximoConciliacao = 30 * time.Second

	avisoPerfilNaoEncontrado = "pagamento aprovado sem perfil correspondente, enviado para revisão manual"
)

// WebhookHandler recebe as notificações do Mercado Pago.
type WebhookHandler struct {
	conciliador Conciliador
}

func NewWebhookHandler(c Conciliador) *WebhookHandler {
	return &WebhookHandler{
		conciliador: c,
	}
}

// @Summary      Recebe notificação de pagamento do Mercado Pago
// @Description  Busca o pagamento no processador e, se aprovado, ativa a assinatura do ceramista pagador. Idempotente por pagamento.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        notificacao  body      object  true  "Notificação com data.id ou id"
// @Success      200          {object}  map[string]interface{}
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Failure      500          {object}  map[string]string
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) HandleMercadoPago(w http.ResponseWriter, r *http.Request) {
	processador := h.conciliador.Processador()
	defer recuperarWebhook(w, processador)

	payload, ok := lerCorpo(w, r)
	if !ok {
		webhookNotificacoesTotal.WithLabelValues(processador, string(service.ResultadoPagamentoInvalido)).Inc()
		return
	}
	slog.Info("Notificação de pagamento recebida", "processador", processador, "bytes", len(payload))

	ctx, cancel := contextoConciliacao(r)
	defer cancel()

	res, err := h.conciliador.ProcessarNotificacao(ctx, payload)
	responderConciliacao(w, processador, res, err)
}

// StripeWebhookHandler recebe os eventos da Stripe.
type StripeWebhookHandler struct {
	conciliador Conciliador
	extrator    ExtratorStripe
}

func NewStripeWebhookHandler(c Conciliador, e ExtratorStripe) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		conciliador: c,
		extrator:    e,
	}
}

// HandleStripeWebhook é o handler para a rota que recebe os eventos da Stripe.
// @Summary      Recebe evento da Stripe
// @Description  Verifica o cabeçalho Stripe-Signature e concilia eventos payment_intent.*
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "Assinatura do evento"
// @Success      200               {object}  map[string]interface{}
// @Failure      400               {object}  map[string]string
// @Failure      404               {object}  map[string]string
// @Failure      500               {object}  map[string]string
// @Router       /webhooks/stripe [post]
func (h *StripeWebhookHandler) HandleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	processador := h.conciliador.Processador()
	defer recuperarWebhook(w, processador)

	payload, ok := lerCorpo(w, r)
	if !ok {
		webhookNotificacoesTotal.WithLabelValues(processador, string(service.ResultadoPagamentoInvalido)).Inc()
		return
	}

	id, relevante, err := h.extrator.ExtrairNotificacao(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		slog.Warn("Evento da Stripe rejeitado", "error", err)
		webhookNotificacoesTotal.WithLabelValues(processador, string(service.ResultadoPagamentoInvalido)).Inc()
		respondWithError(w, http.StatusBadRequest, "Falha na verificação da assinatura do webhook")
		return
	}
	if !relevante {
		webhookNotificacoesTotal.WithLabelValues(processador, string(service.ResultadoIgnorado)).Inc()
		respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
		return
	}

	if id == "" {
		responderConciliacao(w, processador, service.ResultadoPagamentoInvalido, service.ErrPayloadInvalido)
		return
	}

	ctx, cancel := contextoConciliacao(r)
	defer cancel()

	res, err := h.conciliador.ProcessarPagamento(ctx, id, payload)
	responderConciliacao(w, processador, res, err)
}

func lerCorpo(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		var muitoGrande *http.MaxBytesError
		if errors.As(err, &muitoGrande) {
			respondWithError(w, http.StatusBadRequest, "Corpo da requisição muito grande")
			return nil, false
		}
		slog.Error("Erro ao ler o corpo do webhook", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Erro ao ler corpo da requisição")
		return nil, false
	}
	return payload, true
}

// A conciliação não é abortada se o processador desconectar no meio: a escrita precisa terminar.
func contextoConciliacao(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(r.Context()), tempoMaximoConciliacao)
}

// responderConciliacao traduz o desfecho da conciliação para o status que o processador entende:
// 2xx encerra as tentativas, 5xx pede nova entrega.
func responderConciliacao(w http.ResponseWriter, processador string, res service.Resultado, err error) {
	if res == "" {
		res = service.ResultadoFalhaTransitoria
	}
	webhookNotificacoesTotal.WithLabelValues(processador, string(res)).Inc()

	switch {
	case err == nil && res == service.ResultadoIgnorado:
		respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
	case err == nil:
		respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
	case errors.Is(err, service.ErrPerfilNaoEncontrado):
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "warning": avisoPerfilNaoEncontrado})
	case errors.Is(err, service.ErrPayloadInvalido):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailPagadorAusente):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPagamentoNaoEncontrado):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrProcessadorIndisponivel):
		respondWithError(w, http.StatusInternalServerError, "Processador de pagamentos indisponível, tente novamente")
	default:
		slog.Error("Erro ao conciliar pagamento", "error", err, "processador", processador)
		respondWithError(w, http.StatusInternalServerError, "Erro interno ao processar webhook")
	}
}

func recuperarWebhook(w http.ResponseWriter, processador string) {
	if rec := recover(); rec != nil {
		slog.Error("Pânico ao processar webhook", "processador", processador, "panic", fmt.Sprint(rec))
		webhookNotificacoesTotal.WithLabelValues(processador, string(service.ResultadoFalhaTransitoria)).Inc()
		respondWithError(w, http.StatusInternalServerError, "Erro interno ao processar webhook")
	}
}
