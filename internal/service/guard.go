package service

import (
	"context"
	"fmt"
	"time"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
	"github.com/willjrcristo/atelie-inteligente/internal/repository"
)

// Guard decide para onde um usuário autenticado pode ir.
// Sempre lê o estado atual do banco: uma ativação feita pelo webhook aparece na próxima chamada.
type Guard struct {
	perfis      repository.PerfilRepository
	assinaturas repository.AssinaturaRepository
	agora       func() time.Time
}

func NewGuard(perfis repository.PerfilRepository, assinaturas repository.AssinaturaRepository) *Guard {
	return &Guard{
		perfis:      perfis,
		assinaturas: assinaturas,
		agora:       time.Now,
	}
}

// Avaliacao é o resultado completo de uma avaliação do guard.
type Avaliacao struct {
	Perfil     domain.Perfil
	Assinatura *domain.Assinatura
	Destino    domain.Destino
}

// Avaliar carrega perfil e assinatura e calcula o destino.
func (g *Guard) Avaliar(ctx context.Context, userID string) (*Avaliacao, error) {
	perfil, err := g.perfis.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscando perfil: %w", err)
	}
	if perfil == nil {
		return nil, ErrPerfilNaoEncontrado
	}

	av := &Avaliacao{Perfil: perfil}
	// Comprador não depende de assinatura.
	if perfil.Tipo() == domain.TipoCeramista {
		av.Assinatura, err = g.assinaturas.GetByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("buscando assinatura: %w", err)
		}
	}
	av.Destino = domain.DestinoPara(perfil, av.Assinatura, g.agora())
	return av, nil
}

// Destino é o atalho para quem só precisa da rota.
func (g *Guard) Destino(ctx context.Context, userID string) (domain.Destino, error) {
	av, err := g.Avaliar(ctx, userID)
	if err != nil {
		return "", err
	}
	return av.Destino, nil
}
