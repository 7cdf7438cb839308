package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
)

func TestGerarSlug(t *testing.T) {
	casos := map[string]string{
		"Vaso de Cerâmica Azul":      "vaso-de-ceramica-azul",
		"  Tigela   Raku!! ":         "tigela-raku",
		"Caneca Ação & Coração 2024": "caneca-acao-coracao-2024",
		"???":                        "peca",
	}
	for nome, prefixo := range casos {
		slug := GerarSlug(nome)
		assert.Regexp(t, regexp.MustCompile("^"+regexp.QuoteMeta(prefixo)+"-[0-9a-f]{6}$"), slug, nome)
	}
	assert.NotEqual(t, GerarSlug("Vaso"), GerarSlug("Vaso"))
}

func novoCatalogo() (*CatalogoService, *fakePecas) {
	perfis := newFakePerfis(
		&domain.Ceramista{PerfilBase: domain.PerfilBase{ID: "ana", Email: "ana@atelie.com", Nome: "Ana"}},
		&domain.Ceramista{PerfilBase: domain.PerfilBase{ID: "caio", Email: "caio@atelie.com", Nome: "Caio"}},
		&domain.Comprador{PerfilBase: domain.PerfilBase{ID: "bia", Email: "bia@email.com", Nome: "Bia"}},
	)
	pecas := newFakePecas()
	return NewCatalogoService(perfis, pecas), pecas
}

func TestCatalogoService_Pecas(t *testing.T) {
	ctx := context.Background()
	s, _ := novoCatalogo()

	vaso, err := s.CriarPeca(ctx, "ana", NovaPeca{Nome: "Vaso Azul", PrecoCentavos: 15000})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPecaAtiva, vaso.Status)
	assert.Contains(t, vaso.Slug, "vaso-azul-")

	_, err = s.CriarPeca(ctx, "ana", NovaPeca{Nome: " ", PrecoCentavos: 1})
	assert.ErrorIs(t, err, ErrDadosInvalidos)
	_, err = s.CriarPeca(ctx, "ana", NovaPeca{Nome: "Prato", PrecoCentavos: -1})
	assert.ErrorIs(t, err, ErrDadosInvalidos)

	t.Run("peça pública por slug", func(t *testing.T) {
		p, err := s.BuscarPecaPublica(ctx, vaso.Slug)
		require.NoError(t, err)
		assert.Equal(t, vaso.ID, p.ID)
	})

	t.Run("outro ceramista não altera a peça", func(t *testing.T) {
		err := s.AlterarStatusPeca(ctx, "caio", vaso.ID, domain.StatusPecaInativa)
		assert.ErrorIs(t, err, ErrAcessoNegado)
		assert.ErrorIs(t, s.RemoverPeca(ctx, "caio", vaso.ID), ErrAcessoNegado)
	})

	t.Run("status inválido", func(t *testing.T) {
		assert.ErrorIs(t, s.AlterarStatusPeca(ctx, "ana", vaso.ID, "vendida"), ErrDadosInvalidos)
	})

	t.Run("peça inativa some do catálogo", func(t *testing.T) {
		require.NoError(t, s.AlterarStatusPeca(ctx, "ana", vaso.ID, domain.StatusPecaInativa))

		_, err := s.BuscarPecaPublica(ctx, vaso.Slug)
		assert.ErrorIs(t, err, ErrPecaNaoEncontrada)

		catalogo, err := s.Catalogo(ctx)
		require.NoError(t, err)
		assert.Empty(t, catalogo)

		minhas, err := s.ListarPecasDoCeramista(ctx, "ana")
		require.NoError(t, err)
		assert.Len(t, minhas, 1)
	})

	t.Run("remover", func(t *testing.T) {
		require.NoError(t, s.RemoverPeca(ctx, "ana", vaso.ID))
		assert.ErrorIs(t, s.RemoverPeca(ctx, "ana", vaso.ID), ErrPecaNaoEncontrada)
	})
}

func TestCatalogoService_PaginaPublica(t *testing.T) {
	ctx := context.Background()
	s, _ := novoCatalogo()

	_, err := s.CriarPeca(ctx, "ana", NovaPeca{Nome: "Vaso", PrecoCentavos: 100})
	require.NoError(t, err)
	inativa, err := s.CriarPeca(ctx, "ana", NovaPeca{Nome: "Prato", PrecoCentavos: 100})
	require.NoError(t, err)
	require.NoError(t, s.AlterarStatusPeca(ctx, "ana", inativa.ID, domain.StatusPecaInativa))

	pagina, err := s.PaginaPublica(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, "Ana", pagina.Ceramista.Nome)
	require.Len(t, pagina.Pecas, 1)
	assert.Equal(t, "Vaso", pagina.Pecas[0].Nome)

	_, err = s.PaginaPublica(ctx, "bia")
	assert.ErrorIs(t, err, ErrPerfilNaoEncontrado)
	_, err = s.PaginaPublica(ctx, "fantasma")
	assert.ErrorIs(t, err, ErrPerfilNaoEncontrado)
}

func TestCatalogoService_AtualizarDadosPublicos(t *testing.T) {
	ctx := context.Background()
	s, _ := novoCatalogo()

	c, err := s.AtualizarDadosPublicos(ctx, "ana", DadosPublicos{Bio: " Cerâmica de alta temperatura ", Cidade: "Cunha", Instagram: "@ana"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Nome)
	assert.Equal(t, "Cerâmica de alta temperatura", c.Bio)

	_, err = s.AtualizarDadosPublicos(ctx, "bia", DadosPublicos{Bio: "x"})
	assert.ErrorIs(t, err, ErrPerfilNaoEncontrado)
}
