package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
	"github.com/willjrcristo/atelie-inteligente/internal/service"
)

// PainelHandler gerencia as rotas de /painel, a área do ceramista.
type PainelHandler struct {
	sessoes     ValidadorSessao
	guard       Guard
	assinaturas AssinaturaService
	catalogo    CatalogoService
}

func NewPainelHandler(sessoes ValidadorSessao, guard Guard, assinaturas AssinaturaService, catalogo CatalogoService) *PainelHandler {
	return &PainelHandler{
		sessoes:     sessoes,
		guard:       guard,
		assinaturas: assinaturas,
		catalogo:    catalogo,
	}
}

// Routes monta as rotas do painel.
// Plano e perfil ficam abertos a qualquer ceramista (é por aqui que ele reativa);
// as peças exigem assinatura vigente.
func (h *PainelHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(Autenticado(h.sessoes))

	r.Group(func(r chi.Router) {
		r.Use(ExigirCeramista(h.guard))
		r.Get("/assinatura", h.ConsultarAssinatura)          // GET /painel/assinatura
		r.Post("/assinatura/cancelar", h.CancelarAssinatura) // POST /painel/assinatura/cancelar
		r.Post("/assinatura/reativar", h.ReativarAssinatura) // POST /painel/assinatura/reativar
		r.Put("/perfil", h.AtualizarPerfil)                  // PUT /painel/perfil
	})

	r.Group(func(r chi.Router) {
		r.Use(ExigirDestino(h.guard, domain.DestinoPainel))
		r.Get("/pecas", h.ListarPecas)                     // GET /painel/pecas
		r.Post("/pecas", h.CriarPeca)                      // POST /painel/pecas
		r.Patch("/pecas/{id}/status", h.AlterarStatusPeca) // PATCH /painel/pecas/{id}/status
		r.Delete("/pecas/{id}", h.RemoverPeca)             // DELETE /painel/pecas/{id}
	})

	return r
}

// --- ASSINATURA ---

// @Summary      Consulta a assinatura
// @Tags         painel
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Assinatura
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /painel/assinatura [get]
func (h *PainelHandler) ConsultarAssinatura(w http.ResponseWriter, r *http.Request) {
	a, err := h.assinaturas.Consultar(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		respondErroAssinatura(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, a)
}

// @Summary      Cancela a assinatura
// @Description  Leva a assinatura de active para canceled. O acesso termina na hora.
// @Tags         painel
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Assinatura
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /painel/assinatura/cancelar [post]
func (h *PainelHandler) CancelarAssinatura(w http.ResponseWriter, r *http.Request) {
	a, err := h.assinaturas.Cancelar(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		respondErroAssinatura(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, a)
}

// @Summary      Reativa a assinatura
// @Description  Volta de canceled para active enquanto o período pago não terminou. Depois disso é preciso pagar de novo.
// @Tags         painel
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Assinatura
// @Failure      402  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /painel/assinatura/reativar [post]
func (h *PainelHandler) ReativarAssinatura(w http.ResponseWriter, r *http.Request) {
	a, err := h.assinaturas.Reativar(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		respondErroAssinatura(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, a)
}

func respondErroAssinatura(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAssinaturaNaoEncontrada):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrTransicaoInvalida):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrAssinaturaExpirada):
		respondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Erro ao atualizar assinatura")
	}
}

// --- PERFIL PÚBLICO ---

// @Summary      Atualiza os dados públicos do ceramista
// @Tags         painel
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        dados  body      service.DadosPublicos  true  "Campos públicos"
// @Success      200    {object}  domain.Ceramista
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /painel/perfil [put]
func (h *PainelHandler) AtualizarPerfil(w http.ResponseWriter, r *http.Request) {
	var d service.DadosPublicos
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	c, err := h.catalogo.AtualizarDadosPublicos(r.Context(), UserIDFromContext(r.Context()), d)
	if err != nil {
		if errors.Is(err, service.ErrPerfilNaoEncontrado) {
			respondWithError(w, http.StatusNotFound, err.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "Erro ao atualizar perfil")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, c)
}

// --- PEÇAS ---

// @Summary      Lista as peças do ceramista
// @Description  Inclui as peças inativas
// @Tags         painel
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Peca
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /painel/pecas [get]
func (h *PainelHandler) ListarPecas(w http.ResponseWriter, r *http.Request) {
	pecas, err := h.catalogo.ListarPecasDoCeramista(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Erro ao buscar peças")
		return
	}
	if pecas == nil {
		pecas = []domain.Peca{}
	}
	respondWithJSON(w, http.StatusOK, pecas)
}

// @Summary      Publica uma peça
// @Tags         painel
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        peca  body      service.NovaPeca  true  "Dados da peça"
// @Success      201   {object}  domain.Peca
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /painel/pecas [post]
func (h *PainelHandler) CriarPeca(w http.ResponseWriter, r *http.Request) {
	var nova service.NovaPeca
	if err := json.NewDecoder(r.Body).Decode(&nova); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	peca, err := h.catalogo.CriarPeca(r.Context(), UserIDFromContext(r.Context()), nova)
	if err != nil {
		respondErroPeca(w, err, "Erro ao criar peça")
		return
	}
	respondWithJSON(w, http.StatusCreated, peca)
}

type requisicaoStatusPeca struct {
	Status domain.StatusPeca `json:"status"`
}

// @Summary      Ativa ou desativa uma peça
// @Tags         painel
// @Accept       json
// @Security     BearerAuth
// @Param        id      path      string                true  "ID da peça"
// @Param        status  body      requisicaoStatusPeca  true  "active ou inactive"
// @Success      204     {string}  string "No Content"
// @Failure      400     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /painel/pecas/{id}/status [patch]
func (h *PainelHandler) AlterarStatusPeca(w http.ResponseWriter, r *http.Request) {
	var req requisicaoStatusPeca
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	err := h.catalogo.AlterarStatusPeca(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		respondErroPeca(w, err, "Erro ao alterar status da peça")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Remove uma peça
// @Tags         painel
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da peça"
// @Success      204  {string}  string "No Content"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /painel/pecas/{id} [delete]
func (h *PainelHandler) RemoverPeca(w http.ResponseWriter, r *http.Request) {
	err := h.catalogo.RemoverPeca(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		respondErroPeca(w, err, "Erro ao remover peça")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondErroPeca(w http.ResponseWriter, err error, mensagem string) {
	switch {
	case errors.Is(err, service.ErrDadosInvalidos):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPecaNaoEncontrada):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAcessoNegado):
		respondWithError(w, http.StatusForbidden, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, mensagem)
	}
}
