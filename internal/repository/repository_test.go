package repository

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willjrcristo/atelie-inteligente/internal/domain"
)

// openTestDB abre um banco em memória com as migrações aplicadas.
// Uma única conexão garante que todos os testes vejam o mesmo banco.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func criarCeramista(t *testing.T, repo PerfilRepository, id, email string) *domain.Ceramista {
	t.Helper()
	c := &domain.Ceramista{
		PerfilBase: domain.PerfilBase{ID: id, Email: email, Nome: "Ana", CriadoEm: time.Now()},
		Cidade:     "Cunha",
	}
	require.NoError(t, repo.Create(context.Background(), c, "hash"))
	return c
}

func TestMigrate_Idempotente(t *testing.T) {
	db := openTestDB(t)
	// Rodar de novo não deve falhar (ErrNoChange é tratado).
	assert.NoError(t, Migrate(db))
}

func TestPerfilRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLitePerfilRepository(openTestDB(t))

	criarCeramista(t, repo, "c1", "Ana@Atelie.com")
	require.NoError(t, repo.Create(ctx, &domain.Comprador{
		PerfilBase: domain.PerfilBase{ID: "b1", Email: "bia@email.com", Nome: "Bia"},
	}, "hash-b"))

	t.Run("busca por e-mail ignora caixa", func(t *testing.T) {
		p, err := repo.FindByEmail(ctx, "  ANA@atelie.COM ")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "c1", p.Base().ID)
		assert.Equal(t, "ana@atelie.com", p.Base().Email)

		c, ok := p.(*domain.Ceramista)
		require.True(t, ok)
		assert.Equal(t, "Cunha", c.Cidade)
	})

	t.Run("e-mail desconhecido retorna nil", func(t *testing.T) {
		p, err := repo.FindByEmail(ctx, "ninguem@email.com")
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("comprador vem como variante própria", func(t *testing.T) {
		p, hash, err := repo.GetCredenciais(ctx, "bia@email.com")
		require.NoError(t, err)
		assert.IsType(t, &domain.Comprador{}, p)
		assert.Equal(t, "hash-b", hash)
	})

	t.Run("e-mail duplicado", func(t *testing.T) {
		err := repo.Create(ctx, &domain.Comprador{PerfilBase: domain.PerfilBase{ID: "x", Email: "ana@atelie.com"}}, "h")
		assert.ErrorIs(t, err, ErrRegistroDuplicado)
	})

	t.Run("atualiza dados públicos do ceramista", func(t *testing.T) {
		c := domain.Ceramista{PerfilBase: domain.PerfilBase{ID: "c1", Nome: "Ana Souza"}, Bio: "Torno e raku", Instagram: "@ana"}
		require.NoError(t, repo.UpdateCeramista(ctx, c))

		p, err := repo.GetByID(ctx, "c1")
		require.NoError(t, err)
		got := p.(*domain.Ceramista)
		assert.Equal(t, "Ana Souza", got.Nome)
		assert.Equal(t, "Torno e raku", got.Bio)
		assert.Equal(t, "@ana", got.Instagram)
	})
}

func pagamentoAplicado(processador, id, userID string, em time.Time) domain.PagamentoAplicado {
	return domain.PagamentoAplicado{
		Processador: processador, PagamentoID: id, UserID: userID,
		DataAprovacao: em, AplicadoEm: em,
	}
}

func assinaturaAtiva(userID, ref string, agora time.Time) domain.Assinatura {
	return domain.Assinatura{
		UserID:            userID,
		Status:            domain.StatusAtiva,
		ReferenciaExterna: ref,
		PlanoID:           "premium",
		PeriodoAtualFim:   agora.Add(30 * 24 * time.Hour),
		AtualizadoEm:      agora,
	}
}

func TestAssinaturaRepository_AplicarPagamento(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	perfis := NewSQLitePerfilRepository(db)
	repo := NewSQLiteAssinaturaRepository(db)
	criarCeramista(t, perfis, "c1", "ana@atelie.com")

	agora := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.CriarPendente(ctx, "c1", "premium", agora))

	a, err := repo.GetByUserID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, domain.StatusPendente, a.Status)
	assert.True(t, a.PeriodoAtualFim.IsZero())

	aprovadoEm := agora.Add(-time.Minute)
	registro := pagamentoAplicado("mercadopago", "123", "c1", agora)
	registro.DataAprovacao = aprovadoEm
	ativa := assinaturaAtiva("c1", "123", agora)
	aplicado, err := repo.AplicarPagamento(ctx, registro, ativa)
	require.NoError(t, err)
	assert.True(t, aplicado)

	var dataAprovacao int64
	require.NoError(t, db.QueryRow(
		"SELECT data_aprovacao FROM pagamentos_aplicados WHERE processador = 'mercadopago' AND pagamento_id = '123'",
	).Scan(&dataAprovacao))
	assert.Equal(t, aprovadoEm.Unix(), dataAprovacao)

	// Reentrega do mesmo pagamento, mais tarde: nada muda.
	depois := agora.Add(time.Hour)
	aplicado, err = repo.AplicarPagamento(ctx, pagamentoAplicado("mercadopago", "123", "c1", depois), assinaturaAtiva("c1", "123", depois))
	require.NoError(t, err)
	assert.False(t, aplicado)

	a, err = repo.GetByUserID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAtiva, a.Status)
	assert.Equal(t, "123", a.ReferenciaExterna)
	assert.Equal(t, ativa.PeriodoAtualFim, a.PeriodoAtualFim)

	// Um novo pagamento renova o período.
	renovacao := assinaturaAtiva("c1", "456", agora)
	renovacao.PeriodoAtualFim = agora.Add(60 * 24 * time.Hour)
	aplicado, err = repo.AplicarPagamento(ctx, pagamentoAplicado("mercadopago", "456", "c1", agora), renovacao)
	require.NoError(t, err)
	assert.True(t, aplicado)

	// O mesmo id em outro processador é outro pagamento.
	aplicado, err = repo.AplicarPagamento(ctx, pagamentoAplicado("stripe", "123", "c1", agora), assinaturaAtiva("c1", "123", agora))
	require.NoError(t, err)
	assert.True(t, aplicado)

	var total int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM subscriptions WHERE user_id = 'c1'").Scan(&total))
	assert.Equal(t, 1, total)
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM pagamentos_aplicados WHERE user_id = 'c1'").Scan(&total))
	assert.Equal(t, 3, total)
}

func TestAssinaturaRepository_ReentregaForaDeOrdem(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	criarCeramista(t, NewSQLitePerfilRepository(db), "c1", "ana@atelie.com")
	repo := NewSQLiteAssinaturaRepository(db)

	t0 := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	tB := t0.Add(20 * 24 * time.Hour)
	tA := t0.Add(25 * 24 * time.Hour)

	aplicado, err := repo.AplicarPagamento(ctx, pagamentoAplicado("mercadopago", "A", "c1", t0), assinaturaAtiva("c1", "A", t0))
	require.NoError(t, err)
	require.True(t, aplicado)

	renovacao := assinaturaAtiva("c1", "B", tB)
	aplicado, err = repo.AplicarPagamento(ctx, pagamentoAplicado("mercadopago", "B", "c1", tB), renovacao)
	require.NoError(t, err)
	require.True(t, aplicado)

	// A chega de novo depois de B.
	aplicado, err = repo.AplicarPagamento(ctx, pagamentoAplicado("mercadopago", "A", "c1", tA), assinaturaAtiva("c1", "A", tA))
	require.NoError(t, err)
	assert.False(t, aplicado)

	a, err := repo.GetByUserID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAtiva, a.Status)
	assert.Equal(t, "B", a.ReferenciaExterna)
	assert.Equal(t, renovacao.PeriodoAtualFim, a.PeriodoAtualFim)
}

func TestAssinaturaRepository_ReentregaAposCancelamento(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	criarCeramista(t, NewSQLitePerfilRepository(db), "c1", "ana@atelie.com")
	repo := NewSQLiteAssinaturaRepository(db)

	t0 := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	ativa := assinaturaAtiva("c1", "A", t0)
	aplicado, err := repo.AplicarPagamento(ctx, pagamentoAplicado("mercadopago", "A", "c1", t0), ativa)
	require.NoError(t, err)
	require.True(t, aplicado)

	ok, err := repo.AtualizarStatus(ctx, "c1", domain.StatusAtiva, domain.StatusCancelada, t0.Add(time.Hour))
	require.NoError(t, err)
	require.True(t, ok)

	depois := t0.Add(2 * 24 * time.Hour)
	aplicado, err = repo.AplicarPagamento(ctx, pagamentoAplicado("mercadopago", "A", "c1", depois), assinaturaAtiva("c1", "A", depois))
	require.NoError(t, err)
	assert.False(t, aplicado)

	a, err := repo.GetByUserID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelada, a.Status)
	assert.Equal(t, ativa.PeriodoAtualFim, a.PeriodoAtualFim)
}

func TestAssinaturaRepository_AplicarPagamentoConcorrente(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	criarCeramista(t, NewSQLitePerfilRepository(db), "c1", "ana@atelie.com")
	repo := NewSQLiteAssinaturaRepository(db)

	agora := time.Now().UTC().Truncate(time.Second)
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		aplicados int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			em := agora.Add(time.Duration(i) * time.Second)
			ok, err := repo.AplicarPagamento(ctx, pagamentoAplicado("mercadopago", "999", "c1", em), assinaturaAtiva("c1", "999", em))
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				aplicados++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, aplicados)
	a, err := repo.GetByUserID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAtiva, a.Status)
	assert.Equal(t, "999", a.ReferenciaExterna)
}

func TestAssinaturaRepository_AtualizarStatus(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	criarCeramista(t, NewSQLitePerfilRepository(db), "c1", "ana@atelie.com")
	repo := NewSQLiteAssinaturaRepository(db)

	agora := time.Now()
	_, err := repo.AplicarPagamento(ctx, pagamentoAplicado("mercadopago", "1", "c1", agora), domain.Assinatura{
		UserID: "c1", Status: domain.StatusAtiva, ReferenciaExterna: "1", PlanoID: "premium",
		PeriodoAtualFim: agora.Add(time.Hour), AtualizadoEm: agora,
	})
	require.NoError(t, err)

	ok, err := repo.AtualizarStatus(ctx, "c1", domain.StatusAtiva, domain.StatusCancelada, agora)
	require.NoError(t, err)
	assert.True(t, ok)

	// O status atual já não é 'active'.
	ok, err = repo.AtualizarStatus(ctx, "c1", domain.StatusAtiva, domain.StatusCancelada, agora)
	require.NoError(t, err)
	assert.False(t, ok)

	a, err := repo.GetByUserID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelada, a.Status)
}

func TestRevisaoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRevisaoRepository(openTestDB(t))

	rev := domain.RevisaoManual{
		Processador: "mercadopago", PagamentoID: "42",
		Motivo: domain.MotivoEmailPagadorAusente, Payload: `{"id":42}`, CriadoEm: time.Now(),
	}
	require.NoError(t, repo.Registrar(ctx, rev))
	require.NoError(t, repo.Registrar(ctx, rev))

	revisoes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, revisoes, 1)
	assert.Equal(t, "42", revisoes[0].PagamentoID)
	assert.Equal(t, domain.MotivoEmailPagadorAusente, revisoes[0].Motivo)
}

func TestPecaRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	criarCeramista(t, NewSQLitePerfilRepository(db), "c1", "ana@atelie.com")
	repo := NewSQLitePecaRepository(db)

	agora := time.Now()
	vaso := domain.Peca{ID: "p1", CeramistaID: "c1", Nome: "Vaso", Slug: "vaso-ab12", PrecoCentavos: 12000, Status: domain.StatusPecaAtiva, CriadoEm: agora}
	tigela := domain.Peca{ID: "p2", CeramistaID: "c1", Nome: "Tigela", Slug: "tigela-cd34", Status: domain.StatusPecaInativa, CriadoEm: agora}
	require.NoError(t, repo.Create(ctx, vaso))
	require.NoError(t, repo.Create(ctx, tigela))

	dup := vaso
	dup.ID = "p3"
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrRegistroDuplicado)

	p, err := repo.GetBySlug(ctx, "vaso-ab12")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int64(12000), p.PrecoCentavos)

	todas, err := repo.ListByCeramista(ctx, "c1", false)
	require.NoError(t, err)
	assert.Len(t, todas, 2)

	ativas, err := repo.ListAtivas(ctx)
	require.NoError(t, err)
	require.Len(t, ativas, 1)
	assert.Equal(t, "p1", ativas[0].ID)

	require.NoError(t, repo.UpdateStatus(ctx, "p2", domain.StatusPecaAtiva))
	ativas, err = repo.ListByCeramista(ctx, "c1", true)
	require.NoError(t, err)
	assert.Len(t, ativas, 2)

	require.NoError(t, repo.Delete(ctx, "p1"))
	p, err = repo.GetByID(ctx, "p1")
	assert.NoError(t, err)
	assert.Nil(t, p)
}
