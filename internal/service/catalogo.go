package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
	"github.com/willjrcristo/atelie-inteligente/internal/repository"
)

const tentativasSlug = 3

// NovaPeca são os dados para publicar uma peça.
type NovaPeca struct {
	Nome          string `json:"nome"`
	Descricao     string `json:"descricao"`
	PrecoCentavos int64  `json:"preco_centavos"`
}

// DadosPublicos são os campos que o ceramista edita na página pública.
type DadosPublicos struct {
	Nome      string `json:"nome"`
	Bio       string `json:"bio"`
	Cidade    string `json:"cidade"`
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
}

// PaginaCeramista é o perfil público com as peças ativas.
type PaginaCeramista struct {
	Ceramista *domain.Ceramista `json:"ceramista"`
	Pecas     []domain.Peca     `json:"pecas"`
}

// CatalogoService cuida das peças e das páginas públicas.
type CatalogoService struct {
	perfis repository.PerfilRepository
	pecas  repository.PecaRepository
	agora  func() time.Time
}

func NewCatalogoService(perfis repository.PerfilRepository, pecas repository.PecaRepository) *CatalogoService {
	return &CatalogoService{
		perfis: perfis,
		pecas:  pecas,
		agora:  time.Now,
	}
}

func (s *CatalogoService) CriarPeca(ctx context.Context, ceramistaID string, nova NovaPeca) (*domain.Peca, error) {
	nova.Nome = strings.TrimSpace(nova.Nome)
	if nova.Nome == "" || nova.PrecoCentavos < 0 {
		return nil, ErrDadosInvalidos
	}

	peca := domain.Peca{
		ID:            uuid.NewString(),
		CeramistaID:   ceramistaID,
		Nome:          nova.Nome,
		Descricao:     strings.TrimSpace(nova.Descricao),
		PrecoCentavos: nova.PrecoCentavos,
		Status:        domain.StatusPecaAtiva,
		CriadoEm:      s.agora(),
	}

	var err error
	for i := 0; i < tentativasSlug; i++ {
		peca.Slug = GerarSlug(peca.Nome)
		err = s.pecas.Create(ctx, peca)
		if !errors.Is(err, repository.ErrRegistroDuplicado) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return &peca, nil
}

func (s *CatalogoService) ListarPecasDoCeramista(ctx context.Context, ceramistaID string) ([]domain.Peca, error) {
	return s.pecas.ListByCeramista(ctx, ceramistaID, false)
}

func (s *CatalogoService) AlterarStatusPeca(ctx context.Context, ceramistaID, pecaID string, status domain.StatusPeca) error {
	if !status.Valido() {
		return ErrDadosInvalidos
	}
	if _, err := s.pecaDoCeramista(ctx, ceramistaID, pecaID); err != nil {
		return err
	}
	return s.pecas.UpdateStatus(ctx, pecaID, status)
}

func (s *CatalogoService) RemoverPeca(ctx context.Context, ceramistaID, pecaID string) error {
	if _, err := s.pecaDoCeramista(ctx, ceramistaID, pecaID); err != nil {
		return err
	}
	return s.pecas.Delete(ctx, pecaID)
}

func (s *CatalogoService) pecaDoCeramista(ctx context.Context, ceramistaID, pecaID string) (*domain.Peca, error) {
	peca, err := s.pecas.GetByID(ctx, pecaID)
	if err != nil {
		return nil, err
	}
	if peca == nil {
		return nil, ErrPecaNaoEncontrada
	}
	if peca.CeramistaID != ceramistaID {
		return nil, ErrAcessoNegado
	}
	return peca, nil
}

// BuscarPecaPublica só devolve peças ativas.
func (s *CatalogoService) BuscarPecaPublica(ctx context.Context, slug string) (*domain.Peca, error) {
	peca, err := s.pecas.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if peca == nil || peca.Status != domain.StatusPecaAtiva {
		return nil, ErrPecaNaoEncontrada
	}
	return peca, nil
}

func (s *CatalogoService) Catalogo(ctx context.Context) ([]domain.Peca, error) {
	return s.pecas.ListAtivas(ctx)
}

// PaginaPublica monta a página de um ceramista. Compradores não têm página.
func (s *CatalogoService) PaginaPublica(ctx context.Context, ceramistaID string) (*PaginaCeramista, error) {
	c, err := s.ceramista(ctx, ceramistaID)
	if err != nil {
		return nil, err
	}
	pecas, err := s.pecas.ListByCeramista(ctx, ceramistaID, true)
	if err != nil {
		return nil, err
	}
	return &PaginaCeramista{Ceramista: c, Pecas: pecas}, nil
}

func (s *CatalogoService) AtualizarDadosPublicos(ctx context.Context, ceramistaID string, d DadosPublicos) (*domain.Ceramista, error) {
	c, err := s.ceramista(ctx, ceramistaID)
	if err != nil {
		return nil, err
	}
	if nome := strings.TrimSpace(d.Nome); nome != "" {
		c.Nome = nome
	}
	c.Bio = strings.TrimSpace(d.Bio)
	c.Cidade = strings.TrimSpace(d.Cidade)
	c.WhatsApp = strings.TrimSpace(d.WhatsApp)
	c.Instagram = strings.TrimSpace(d.Instagram)

	if err := s.perfis.UpdateCeramista(ctx, *c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogoService) ceramista(ctx context.Context, id string) (*domain.Ceramista, error) {
	perfil, err := s.perfis.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c, ok := perfil.(*domain.Ceramista)
	if !ok {
		return nil, ErrPerfilNaoEncontrado
	}
	return c, nil
}
