package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
	"github.com/willjrcristo/atelie-inteligente/internal/processor"
	"github.com/willjrcristo/atelie-inteligente/internal/repository"
)

// BuscadorPagamentos é o que a conciliação precisa de um processador de pagamentos.
type BuscadorPagamentos interface {
	Nome() string
	BuscarPagamento(ctx context.Context, id string) (*domain.Pagamento, error)
}

// Resultado descreve o que a conciliação fez com uma notificação aceita.
type Resultado string

const (
	ResultadoIgnorado          Resultado = "ignorado"
	ResultadoAtivado           Resultado = "ativado"
	ResultadoJaAplicado        Resultado = "ja_aplicado"
	ResultadoSemPerfil         Resultado = "perfil_nao_encontrado"
	ResultadoRevisaoManual     Resultado = "revisao_manual"
	ResultadoFalhaTransitoria  Resultado = "falha_transitoria"
	ResultadoPagamentoInvalido Resultado = "pagamento_invalido"
)

// ReconciliadorConfig traz os parâmetros do plano concedido por um pagamento aprovado.
type ReconciliadorConfig struct {
	PlanoID string
	Periodo time.Duration
}

// Reconciliador aplica notificações de pagamento sobre as assinaturas.
// É o único caminho que ativa uma assinatura a partir de um sinal externo.
type Reconciliador struct {
	processador BuscadorPagamentos
	perfis      repository.PerfilRepository
	assinaturas repository.AssinaturaRepository
	revisoes    repository.RevisaoRepository
	cfg         ReconciliadorConfig
	agora       func() time.Time

	// Entregas simultâneas do mesmo pagamento compartilham uma única execução.
	emAndamento singleflight.Group
}

// NewReconciliador cria o reconciliador para um processador.
func NewReconciliador(
	processador BuscadorPagamentos,
	perfis repository.PerfilRepository,
	assinaturas repository.AssinaturaRepository,
	revisoes repository.RevisaoRepository,
	cfg ReconciliadorConfig,
) *Reconciliador {
	if cfg.Periodo <= 0 {
		cfg.Periodo = 30 * 24 * time.Hour
	}
	return &Reconciliador{
		processador: processador,
		perfis:      perfis,
		assinaturas: assinaturas,
		revisoes:    revisoes,
		cfg:         cfg,
		agora:       time.Now,
	}
}

// Processador devolve o nome do processador atendido.
func (r *Reconciliador) Processador() string {
	return r.processador.Nome()
}

// ProcessarNotificacao extrai o ID do payload e concilia o pagamento.
func (r *Reconciliador) ProcessarNotificacao(ctx context.Context, payload []byte) (Resultado, error) {
	id, err := ExtrairPagamentoID(payload)
	if err != nil {
		return ResultadoPagamentoInvalido, err
	}
	return r.ProcessarPagamento(ctx, id, payload)
}

// ProcessarPagamento concilia um pagamento já identificado.
func (r *Reconciliador) ProcessarPagamento(ctx context.Context, pagamentoID string, payload []byte) (Resultado, error) {
	v, err, compartilhado := r.emAndamento.Do(pagamentoID, func() (any, error) {
		return r.conciliar(ctx, domain.NotificacaoPagamento{
			Processador: r.processador.Nome(),
			PagamentoID: pagamentoID,
			Payload:     payload,
		})
	})
	if compartilhado {
		slog.Debug("Notificação simultânea reaproveitou a conciliação em andamento", "pagamento_id", pagamentoID)
	}
	res, _ := v.(Resultado)
	return res, err
}

func (r *Reconciliador) conciliar(ctx context.Context, n domain.NotificacaoPagamento) (Resultado, error) {
	log := slog.With("processador", n.Processador, "pagamento_id", n.PagamentoID)

	// 1. Buscar o estado autoritativo no processador
	pagamento, err := r.processador.BuscarPagamento(ctx, n.PagamentoID)
	if err != nil {
		if errors.Is(err, processor.ErrNaoEncontrado) {
			log.Warn("Pagamento não encontrado no processador")
			return ResultadoPagamentoInvalido, ErrPagamentoNaoEncontrado
		}
		log.Error("Falha ao consultar o processador", "error", err)
		return ResultadoFalhaTransitoria, fmt.Errorf("%w: %v", ErrProcessadorIndisponivel, err)
	}

	// 2. Só pagamento aprovado mexe na assinatura
	if !pagamento.Aprovado() {
		log.Info("Pagamento ainda não aprovado, nada a fazer", "status", pagamento.Status)
		return ResultadoIgnorado, nil
	}

	// 3. Sem e-mail do pagador não há como saber de quem é o pagamento
	if pagamento.EmailPagador == "" {
		log.Error("Pagamento aprovado sem e-mail do pagador, enviado para revisão manual")
		if err := r.registrarRevisao(ctx, n, domain.MotivoEmailPagadorAusente, ""); err != nil {
			return ResultadoFalhaTransitoria, err
		}
		return ResultadoRevisaoManual, ErrEmailPagadorAusente
	}

	// 4. Encontrar o perfil pelo e-mail
	perfil, err := r.perfis.FindByEmail(ctx, pagamento.EmailPagador)
	if err != nil {
		log.Error("Erro ao buscar perfil do pagador", "error", err)
		return ResultadoFalhaTransitoria, fmt.Errorf("%w: %v", ErrFalhaPersistencia, err)
	}
	if perfil == nil {
		// Reentregar não resolve: o perfil não vai aparecer sozinho.
		log.Warn("Nenhum perfil com o e-mail do pagador, enviado para revisão manual", "email", pagamento.EmailPagador)
		if err := r.registrarRevisao(ctx, n, domain.MotivoPerfilNaoEncontrado, pagamento.EmailPagador); err != nil {
			return ResultadoFalhaTransitoria, err
		}
		return ResultadoSemPerfil, ErrPerfilNaoEncontrado
	}

	// 5. Ativar (ou renovar) a assinatura
	agora := r.agora()
	assinatura := domain.Assinatura{
		UserID:            perfil.Base().ID,
		Status:            domain.StatusAtiva,
		ReferenciaExterna: pagamento.ID,
		PlanoID:           r.cfg.PlanoID,
		PeriodoAtualFim:   agora.Add(r.cfg.Periodo),
		AtualizadoEm:      agora,
	}
	registro := domain.PagamentoAplicado{
		Processador:   n.Processador,
		PagamentoID:   pagamento.ID,
		UserID:        assinatura.UserID,
		DataAprovacao: pagamento.DataAprovacao,
		AplicadoEm:    agora,
	}
	aplicado, err := r.assinaturas.AplicarPagamento(ctx, registro, assinatura)
	if err != nil {
		log.Error("Erro ao gravar assinatura", "error", err, "user_id", assinatura.UserID)
		return ResultadoFalhaTransitoria, fmt.Errorf("%w: %v", ErrFalhaPersistencia, err)
	}
	if !aplicado {
		log.Info("Pagamento já aplicado anteriormente", "user_id", assinatura.UserID)
		return ResultadoJaAplicado, nil
	}

	log.Info("Assinatura ativada",
		"user_id", assinatura.UserID,
		"data_aprovacao", pagamento.DataAprovacao,
		"periodo_atual_fim", assinatura.PeriodoAtualFim,
	)
	return ResultadoAtivado, nil
}

// Se nem a revisão puder ser gravada, o evento precisa voltar: perder o registro é pior que reprocessar.
func (r *Reconciliador) registrarRevisao(ctx context.Context, n domain.NotificacaoPagamento, motivo, email string) error {
	err := r.revisoes.Registrar(ctx, domain.RevisaoManual{
		Processador:  n.Processador,
		PagamentoID:  n.PagamentoID,
		Motivo:       motivo,
		EmailPagador: email,
		Payload:      string(n.Payload),
		CriadoEm:     r.agora(),
	})
	if err != nil {
		slog.Error("Erro ao registrar revisão manual", "error", err, "pagamento_id", n.PagamentoID)
		return fmt.Errorf("%w: %v", ErrFalhaPersistencia, err)
	}
	return nil
}

// referencia aceita o ID como string ("123") ou número (123).
type referencia string

func (r *referencia) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = referencia(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = referencia(n.String())
	return nil
}

// ExtrairPagamentoID lê o ID de "data.id" ou, na falta dele, do "id" de nível superior.
// Um "data" que não seja objeto é ignorado.
func ExtrairPagamentoID(payload []byte) (string, error) {
	var corpo struct {
		Data json.RawMessage `json:"data"`
		ID   referencia      `json:"id"`
	}
	if err := json.Unmarshal(payload, &corpo); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPayloadInvalido, err)
	}

	if bytes.HasPrefix(bytes.TrimSpace(corpo.Data), []byte("{")) {
		var data struct {
			ID referencia `json:"id"`
		}
		if err := json.Unmarshal(corpo.Data, &data); err == nil {
			if id := strings.TrimSpace(string(data.ID)); id != "" {
				return id, nil
			}
		}
	}
	if id := strings.TrimSpace(string(corpo.ID)); id != "" {
		return id, nil
	}
	return "", ErrPayloadInvalido
}
