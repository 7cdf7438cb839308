package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
	"github.com/willjrcristo/atelie-inteligente/internal/repository"
)

// AssinaturaService atende as ações do próprio ceramista sobre o plano.
type AssinaturaService struct {
	assinaturas repository.AssinaturaRepository
	agora       func() time.Time
}

func NewAssinaturaService(assinaturas repository.AssinaturaRepository) *AssinaturaService {
	return &AssinaturaService{
		assinaturas: assinaturas,
		agora:       time.Now,
	}
}

func (s *AssinaturaService) Consultar(ctx context.Context, userID string) (*domain.Assinatura, error) {
	a, err := s.assinaturas.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAssinaturaNaoEncontrada
	}
	return a, nil
}

// Cancelar leva a assinatura de active para canceled. O período pago não é devolvido.
func (s *AssinaturaService) Cancelar(ctx context.Context, userID string) (*domain.Assinatura, error) {
	return s.transicionar(ctx, userID, domain.StatusCancelada, nil)
}

// Reativar volta de canceled para active, desde que o período pago ainda não tenha acabado.
func (s *AssinaturaService) Reativar(ctx context.Context, userID string) (*domain.Assinatura, error) {
	return s.transicionar(ctx, userID, domain.StatusAtiva, func(a *domain.Assinatura, agora time.Time) error {
		if a.Status != domain.StatusCancelada {
			return ErrTransicaoInvalida
		}
		if !a.PeriodoAtualFim.After(agora) {
			return ErrAssinaturaExpirada
		}
		return nil
	})
}

func (s *AssinaturaService) transicionar(
	ctx context.Context,
	userID string,
	para domain.StatusAssinatura,
	validar func(a *domain.Assinatura, agora time.Time) error,
) (*domain.Assinatura, error) {
	a, err := s.Consultar(ctx, userID)
	if err != nil {
		return nil, err
	}

	agora := s.agora()
	if validar != nil {
		if err := validar(a, agora); err != nil {
			return nil, err
		}
	}
	if !domain.PodeTransicionar(a.Status, para) || a.Status == para {
		return nil, ErrTransicaoInvalida
	}

	ok, err := s.assinaturas.AtualizarStatus(ctx, userID, a.Status, para, agora)
	if err != nil {
		return nil, fmt.Errorf("atualizando assinatura: %w", err)
	}
	if !ok {
		// Alguém (provavelmente o webhook) mudou o status no meio do caminho.
		return nil, ErrTransicaoInvalida
	}

	slog.Info("Status da assinatura alterado", "user_id", userID, "de", a.Status, "para", para)
	a.Status = para
	a.AtualizadoEm = agora
	return a, nil
}
