package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
)

const perfilColunas = "id, email, nome, tipo, bio, cidade, whatsapp, instagram, criado_em"

type sqlitePerfilRepository struct {
	db *sql.DB
}

// NewSQLitePerfilRepository cria o repositório de perfis sobre a conexão informada.
func NewSQLitePerfilRepository(db *sql.DB) PerfilRepository {
	return &sqlitePerfilRepository{db: db}
}

func (r *sqlitePerfilRepository) Create(ctx context.Context, perfil domain.Perfil, senhaHash string) error {
	base := perfil.Base()
	var bio, cidade, whatsapp, instagram string
	if c, ok := perfil.(*domain.Ceramista); ok {
		bio, cidade, whatsapp, instagram = c.Bio, c.Cidade, c.WhatsApp, c.Instagram
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles(id, email, nome, tipo, senha_hash, bio, cidade, whatsapp, instagram, criado_em)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		base.ID, domain.NormalizarEmail(base.Email), base.Nome, string(perfil.Tipo()), senhaHash,
		bio, cidade, whatsapp, instagram, unix(base.CriadoEm),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrRegistroDuplicado
		}
		return fmt.Errorf("inserindo perfil: %w", err)
	}
	return nil
}

func (r *sqlitePerfilRepository) GetByID(ctx context.Context, id string) (domain.Perfil, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+perfilColunas+", senha_hash FROM profiles WHERE id = ?", id)
	perfil, _, err := scanPerfil(row)
	return perfil, err
}

// FindByEmail faz a busca exata, sem diferenciar maiúsculas de minúsculas.
func (r *sqlitePerfilRepository) FindByEmail(ctx context.Context, email string) (domain.Perfil, error) {
	perfil, _, err := r.GetCredenciais(ctx, email)
	return perfil, err
}

func (r *sqlitePerfilRepository) GetCredenciais(ctx context.Context, email string) (domain.Perfil, string, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+perfilColunas+", senha_hash FROM profiles WHERE email = ? COLLATE NOCASE",
		domain.NormalizarEmail(email),
	)
	return scanPerfil(row)
}

func (r *sqlitePerfilRepository) UpdateCeramista(ctx context.Context, c domain.Ceramista) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET nome = ?, bio = ?, cidade = ?, whatsapp = ?, instagram = ?
		 WHERE id = ? AND tipo = 'ceramista'`,
		c.Nome, c.Bio, c.Cidade, c.WhatsApp, c.Instagram, c.ID,
	)
	if err != nil {
		return fmt.Errorf("atualizando ceramista: %w", err)
	}
	return nil
}

// scanPerfil retorna nil, "", nil quando não há linha, como os demais Get do pacote.
func scanPerfil(row *sql.Row) (domain.Perfil, string, error) {
	var (
		base                             domain.PerfilBase
		tipo, senhaHash                  string
		bio, cidade, whatsapp, instagram string
		criadoEm                         int64
	)
	err := row.Scan(&base.ID, &base.Email, &base.Nome, &tipo, &bio, &cidade, &whatsapp, &instagram, &criadoEm, &senhaHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("lendo perfil: %w", err)
	}
	base.CriadoEm = fromUnix(criadoEm)

	switch domain.TipoPerfil(tipo) {
	case domain.TipoCeramista:
		return &domain.Ceramista{
			PerfilBase: base,
			Bio:        bio,
			Cidade:     cidade,
			WhatsApp:   whatsapp,
			Instagram:  instagram,
		}, senhaHash, nil
	case domain.TipoComprador:
		return &domain.Comprador{PerfilBase: base}, senhaHash, nil
	}
	return nil, "", fmt.Errorf("tipo de perfil desconhecido: %q", tipo)
}
