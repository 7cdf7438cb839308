package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
)

type sqliteRevisaoRepository struct {
	db *sql.DB
}

func NewSQLiteRevisaoRepository(db *sql.DB) RevisaoRepository {
	return &sqliteRevisaoRepository{db: db}
}

// Registrar ignora a reentrega de um pagamento já registrado pelo mesmo motivo.
func (r *sqliteRevisaoRepository) Registrar(ctx context.Context, rev domain.RevisaoManual) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO revisoes_manuais (processador, pagamento_id, motivo, email_pagador, payload, criado_em)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rev.Processador, rev.PagamentoID, rev.Motivo, rev.EmailPagador, rev.Payload, unix(rev.CriadoEm),
	)
	if err != nil {
		return fmt.Errorf("registrando revisão manual: %w", err)
	}
	return nil
}

func (r *sqliteRevisaoRepository) List(ctx context.Context) ([]domain.RevisaoManual, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, processador, pagamento_id, motivo, email_pagador, payload, criado_em
		 FROM revisoes_manuais ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listando revisões: %w", err)
	}
	defer rows.Close()

	var revisoes []domain.RevisaoManual
	for rows.Next() {
		var (
			rev      domain.RevisaoManual
			criadoEm int64
		)
		if err := rows.Scan(&rev.ID, &rev.Processador, &rev.PagamentoID, &rev.Motivo, &rev.EmailPagador, &rev.Payload, &criadoEm); err != nil {
			return nil, err
		}
		rev.CriadoEm = fromUnix(criadoEm)
		revisoes = append(revisoes, rev)
	}
	return revisoes, rows.Err()
}
