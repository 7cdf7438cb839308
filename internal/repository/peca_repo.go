package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
)

const pecaColunas = "id, ceramista_id, nome, slug, descricao, preco_centavos, status, criado_em"

type sqlitePecaRepository struct {
	db *sql.DB
}

func NewSQLitePecaRepository(db *sql.DB) PecaRepository {
	return &sqlitePecaRepository{db: db}
}

func (r *sqlitePecaRepository) Create(ctx context.Context, p domain.Peca) error {
	stmt, err := r.db.PrepareContext(ctx, "INSERT INTO pieces("+pecaColunas+") VALUES(?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, p.ID, p.CeramistaID, p.Nome, p.Slug, p.Descricao, p.PrecoCentavos, string(p.Status), unix(p.CriadoEm))
	if err != nil {
		if isUniqueViolation(err) {
			return ErrRegistroDuplicado
		}
		return fmt.Errorf("inserindo peça: %w", err)
	}
	return nil
}

func (r *sqlitePecaRepository) GetByID(ctx context.Context, id string) (*domain.Peca, error) {
	return scanPeca(r.db.QueryRowContext(ctx, "SELECT "+pecaColunas+" FROM pieces WHERE id = ?", id))
}

func (r *sqlitePecaRepository) GetBySlug(ctx context.Context, slug string) (*domain.Peca, error) {
	return scanPeca(r.db.QueryRowContext(ctx, "SELECT "+pecaColunas+" FROM pieces WHERE slug = ?", slug))
}

func (r *sqlitePecaRepository) ListByCeramista(ctx context.Context, ceramistaID string, somenteAtivas bool) ([]domain.Peca, error) {
	query := "SELECT " + pecaColunas + " FROM pieces WHERE ceramista_id = ?"
	args := []any{ceramistaID}
	if somenteAtivas {
		query += " AND status = ?"
		args = append(args, string(domain.StatusPecaAtiva))
	}
	query += " ORDER BY criado_em DESC, id"
	return r.list(ctx, query, args...)
}

func (r *sqlitePecaRepository) ListAtivas(ctx context.Context) ([]domain.Peca, error) {
	return r.list(ctx,
		"SELECT "+pecaColunas+" FROM pieces WHERE status = ? ORDER BY criado_em DESC, id",
		string(domain.StatusPecaAtiva),
	)
}

func (r *sqlitePecaRepository) UpdateStatus(ctx context.Context, id string, status domain.StatusPeca) error {
	stmt, err := r.db.PrepareContext(ctx, "UPDATE pieces SET status = ? WHERE id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, string(status), id)
	return err
}

func (r *sqlitePecaRepository) Delete(ctx context.Context, id string) error {
	stmt, err := r.db.PrepareContext(ctx, "DELETE FROM pieces WHERE id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, id)
	return err
}

func (r *sqlitePecaRepository) list(ctx context.Context, query string, args ...any) ([]domain.Peca, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pecas := []domain.Peca{}
	for rows.Next() {
		var (
			p        domain.Peca
			status   string
			criadoEm int64
		)
		if err := rows.Scan(&p.ID, &p.CeramistaID, &p.Nome, &p.Slug, &p.Descricao, &p.PrecoCentavos, &status, &criadoEm); err != nil {
			return nil, err
		}
		p.Status = domain.StatusPeca(status)
		p.CriadoEm = fromUnix(criadoEm)
		pecas = append(pecas, p)
	}
	return pecas, rows.Err()
}

func scanPeca(row *sql.Row) (*domain.Peca, error) {
	var (
		p        domain.Peca
		status   string
		criadoEm int64
	)
	if err := row.Scan(&p.ID, &p.CeramistaID, &p.Nome, &p.Slug, &p.Descricao, &p.PrecoCentavos, &status, &criadoEm); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lendo peça: %w", err)
	}
	p.Status = domain.StatusPeca(status)
	p.CriadoEm = fromUnix(criadoEm)
	return &p, nil
}
