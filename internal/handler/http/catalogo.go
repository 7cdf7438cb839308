package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
	"github.com/willjrcristo/atelie-inteligente/internal/service"
)

// CatalogoHandler atende as rotas públicas, sem sessão.
type CatalogoHandler struct {
	service CatalogoService
}

func NewCatalogoHandler(s CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{
		service: s,
	}
}

// @Summary      Catálogo de peças
// @Description  Todas as peças ativas
// @Tags         catalogo
// @Produce      json
// @Success      200  {array}   domain.Peca
// @Failure      500  {object}  map[string]string
// @Router       /catalogo [get]
func (h *CatalogoHandler) Catalogo(w http.ResponseWriter, r *http.Request) {
	pecas, err := h.service.Catalogo(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Erro ao buscar catálogo")
		return
	}
	if pecas == nil {
		pecas = []domain.Peca{}
	}
	respondWithJSON(w, http.StatusOK, pecas)
}

// @Summary      Busca uma peça pelo slug
// @Tags         catalogo
// @Produce      json
// @Param        slug  path      string  true  "Slug da peça"
// @Success      200   {object}  domain.Peca
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /pecas/{slug} [get]
func (h *CatalogoHandler) BuscarPeca(w http.ResponseWriter, r *http.Request) {
	peca, err := h.service.BuscarPecaPublica(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, service.ErrPecaNaoEncontrada) {
			respondWithError(w, http.StatusNotFound, err.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "Erro ao buscar peça")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, peca)
}

// @Summary      Página pública de um ceramista
// @Tags         catalogo
// @Produce      json
// @Param        id   path      string  true  "ID do ceramista"
// @Success      200  {object}  service.PaginaCeramista
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /ceramistas/{id} [get]
func (h *CatalogoHandler) PaginaCeramista(w http.ResponseWriter, r *http.Request) {
	pagina, err := h.service.PaginaPublica(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrPerfilNaoEncontrado) {
			respondWithError(w, http.StatusNotFound, "ceramista não encontrado")
		} else {
			respondWithError(w, http.StatusInternalServerError, "Erro ao buscar ceramista")
		}
		return
	}
	if pagina.Pecas == nil {
		pagina.Pecas = []domain.Peca{}
	}
	respondWithJSON(w, http.StatusOK, pagina)
}
