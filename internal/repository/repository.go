package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/willjrcristo/atelie-inteligente/internal/domain"
)

// ErrRegistroDuplicado indica violação de unicidade (e-mail ou slug já usados).
var ErrRegistroDuplicado = errors.New("registro duplicado")

// PerfilRepository define as operações de persistência de perfis.
// Usar interfaces nos permite 'mockar' o repositório nos testes da camada de serviço.
type PerfilRepository interface {
	Create(ctx context.Context, perfil domain.Perfil, senhaHash string) error
	GetByID(ctx context.Context, id string) (domain.Perfil, error)
	FindByEmail(ctx context.Context, email string) (domain.Perfil, error)
	GetCredenciais(ctx context.Context, email string) (domain.Perfil, string, error)
	UpdateCeramista(ctx context.Context, ceramista domain.Ceramista) error
}

// AssinaturaRepository é o armazenamento de direitos de acesso (entitlements).
type AssinaturaRepository interface {
	// AplicarPagamento registra o pagamento e grava a assinatura (chave user_id) na mesma transação.
	// Retorna false, sem tocar na assinatura, quando o pagamento já tinha sido aplicado.
	AplicarPagamento(ctx context.Context, pagamento domain.PagamentoAplicado, assinatura domain.Assinatura) (bool, error)
	CriarPendente(ctx context.Context, userID, planoID string, agora time.Time) error
	GetByUserID(ctx context.Context, userID string) (*domain.Assinatura, error)
	// AtualizarStatus só altera a linha se o status atual for 'de'.
	AtualizarStatus(ctx context.Context, userID string, de, para domain.StatusAssinatura, agora time.Time) (bool, error)
}

// RevisaoRepository guarda pagamentos aprovados que precisam de conciliação manual.
type RevisaoRepository interface {
	Registrar(ctx context.Context, revisao domain.RevisaoManual) error
	List(ctx context.Context) ([]domain.RevisaoManual, error)
}

// PecaRepository cuida do catálogo de peças.
type PecaRepository interface {
	Create(ctx context.Context, peca domain.Peca) error
	GetByID(ctx context.Context, id string) (*domain.Peca, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Peca, error)
	ListByCeramista(ctx context.Context, ceramistaID string, somenteAtivas bool) ([]domain.Peca, error)
	ListAtivas(ctx context.Context) ([]domain.Peca, error)
	UpdateStatus(ctx context.Context, id string, status domain.StatusPeca) error
	Delete(ctx context.Context, id string) error
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func unix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func fromUnix(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
