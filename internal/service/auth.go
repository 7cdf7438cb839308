package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
	"github.com/willjrcristo/atelie-inteligente/internal/repository"
)

const tamanhoMinimoSenha = 8

// Cadastro são os dados enviados na criação de conta.
type Cadastro struct {
	Nome  string            `json:"nome"`
	Email string            `json:"email"`
	Senha string            `json:"senha"`
	Tipo  domain.TipoPerfil `json:"tipo"`
}

// SessaoEmitida é a resposta de cadastro e login.
type SessaoEmitida struct {
	Token    string         `json:"token"`
	ExpiraEm time.Time      `json:"expira_em"`
	Destino  domain.Destino `json:"destino"`
	Perfil   domain.Perfil  `json:"perfil"`
}

// AuthService cuida de cadastro e login.
type AuthService struct {
	perfis      repository.PerfilRepository
	assinaturas repository.AssinaturaRepository
	sessoes     *Sessoes
	guard       *Guard
	planoID     string
	custoHash   int
	agora       func() time.Time
}

func NewAuthService(
	perfis repository.PerfilRepository,
	assinaturas repository.AssinaturaRepository,
	sessoes *Sessoes,
	guard *Guard,
	planoID string,
) *AuthService {
	return &AuthService{
		perfis:      perfis,
		assinaturas: assinaturas,
		sessoes:     sessoes,
		guard:       guard,
		planoID:     planoID,
		custoHash:   bcrypt.DefaultCost,
		agora:       time.Now,
	}
}

// Cadastrar cria o perfil e já devolve uma sessão.
// Ceramistas nascem com assinatura pendente até o primeiro pagamento aprovado.
func (s *AuthService) Cadastrar(ctx context.Context, c Cadastro) (*SessaoEmitida, error) {
	c.Nome = strings.TrimSpace(c.Nome)
	c.Email = domain.NormalizarEmail(c.Email)
	if c.Nome == "" || !strings.Contains(c.Email, "@") || len(c.Senha) < tamanhoMinimoSenha || !c.Tipo.Valido() {
		return nil, ErrDadosInvalidos
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Senha), s.custoHash)
	if err != nil {
		return nil, fmt.Errorf("gerando hash da senha: %w", err)
	}

	perfil := domain.NovoPerfil(c.Tipo, domain.PerfilBase{
		ID:       uuid.NewString(),
		Email:    c.Email,
		Nome:     c.Nome,
		CriadoEm: s.agora(),
	})
	if err := s.perfis.Create(ctx, perfil, string(hash)); err != nil {
		if errors.Is(err, repository.ErrRegistroDuplicado) {
			return nil, ErrEmailJaCadastrado
		}
		return nil, err
	}

	if perfil.Tipo() == domain.TipoCeramista {
		if err := s.assinaturas.CriarPendente(ctx, perfil.Base().ID, s.planoID, s.agora()); err != nil {
			// O guard trata a ausência de assinatura como não paga, então o cadastro segue.
			slog.Error("Erro ao criar assinatura pendente", "error", err, "user_id", perfil.Base().ID)
		}
	}

	slog.Info("Perfil criado", "user_id", perfil.Base().ID, "tipo", perfil.Tipo())
	return s.abrirSessao(ctx, perfil.Base().ID)
}

// Login confere e-mail e senha.
func (s *AuthService) Login(ctx context.Context, email, senha string) (*SessaoEmitida, error) {
	perfil, hash, err := s.perfis.GetCredenciais(ctx, email)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	return s.abrirSessao(ctx, perfil.Base().ID)
}

func (s *AuthService) abrirSessao(ctx context.Context, userID string) (*SessaoEmitida, error) {
	av, err := s.guard.Avaliar(ctx, userID)
	if err != nil {
		return nil, err
	}
	token, expira, err := s.sessoes.Emitir(userID)
	if err != nil {
		return nil, err
	}
	return &SessaoEmitida{
		Token:    token,
		ExpiraEm: expira,
		Destino:  av.Destino,
		Perfil:   av.Perfil,
	}, nil
}
