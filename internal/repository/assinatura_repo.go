package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
)

type sqliteAssinaturaRepository struct {
	db *sql.DB
}

// NewSQLiteAssinaturaRepository cria o repositório de assinaturas.
func NewSQLiteAssinaturaRepository(db *sql.DB) AssinaturaRepository {
	return &sqliteAssinaturaRepository{db: db}
}

const upsertAssinatura = `
INSERT INTO subscriptions (user_id, status, referencia_externa, plano_id, periodo_atual_fim, atualizado_em)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET
	status             = excluded.status,
	referencia_externa = excluded.referencia_externa,
	plano_id           = excluded.plano_id,
	periodo_atual_fim  = excluded.periodo_atual_fim,
	atualizado_em      = excluded.atualizado_em`

// O livro de pagamentos aplicados é a guarda de idempotência: um pagamento
// reentregue fora de ordem ou depois de um cancelamento não mexe na assinatura.
func (r *sqliteAssinaturaRepository) AplicarPagamento(ctx context.Context, p domain.PagamentoAplicado, a domain.Assinatura) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("aplicando pagamento: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO pagamentos_aplicados (processador, pagamento_id, user_id, data_aprovacao, aplicado_em)
		 VALUES (?, ?, ?, ?, ?)`,
		p.Processador, p.PagamentoID, p.UserID, unix(p.DataAprovacao), unix(p.AplicadoEm),
	)
	if err != nil {
		return false, fmt.Errorf("registrando pagamento aplicado: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("registrando pagamento aplicado: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if _, err = tx.ExecContext(ctx, upsertAssinatura,
		a.UserID, string(a.Status), a.ReferenciaExterna, a.PlanoID, unix(a.PeriodoAtualFim), unix(a.AtualizadoEm),
	); err != nil {
		return false, fmt.Errorf("gravando assinatura: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("aplicando pagamento: %w", err)
	}
	return true, nil
}

func (r *sqliteAssinaturaRepository) CriarPendente(ctx context.Context, userID, planoID string, agora time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO subscriptions (user_id, status, plano_id, atualizado_em) VALUES (?, ?, ?, ?)`,
		userID, string(domain.StatusPendente), planoID, unix(agora),
	)
	if err != nil {
		return fmt.Errorf("criando assinatura pendente: %w", err)
	}
	return nil
}

func (r *sqliteAssinaturaRepository) GetByUserID(ctx context.Context, userID string) (*domain.Assinatura, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, status, referencia_externa, plano_id, periodo_atual_fim, atualizado_em
		 FROM subscriptions WHERE user_id = ?`, userID)

	var (
		a                 domain.Assinatura
		status            string
		fim, atualizadoEm int64
	)
	if err := row.Scan(&a.UserID, &status, &a.ReferenciaExterna, &a.PlanoID, &fim, &atualizadoEm); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lendo assinatura: %w", err)
	}
	a.Status = domain.StatusAssinatura(status)
	a.PeriodoAtualFim = fromUnix(fim)
	a.AtualizadoEm = fromUnix(atualizadoEm)
	return &a, nil
}

func (r *sqliteAssinaturaRepository) AtualizarStatus(ctx context.Context, userID string, de, para domain.StatusAssinatura, agora time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE subscriptions SET status = ?, atualizado_em = ? WHERE user_id = ? AND status = ?`,
		string(para), unix(agora), userID, string(de),
	)
	if err != nil {
		return false, fmt.Errorf("atualizando status da assinatura: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("atualizando status da assinatura: %w", err)
	}
	return n > 0, nil
}
