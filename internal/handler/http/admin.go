package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
)

// AdminHandler expõe a fila de revisão manual dos pagamentos que não puderam ser conciliados.
type AdminHandler struct {
	token    string
	revisoes RevisaoLister
}

func NewAdminHandler(token string, revisoes RevisaoLister) *AdminHandler {
	return &AdminHandler{
		token:    token,
		revisoes: revisoes,
	}
}

func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.exigirToken)

	r.Get("/revisoes", h.ListarRevisoes) // GET /admin/revisoes

	return r
}

func (h *AdminHandler) exigirToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recebido := r.Header.Get("X-Admin-Token")
		if h.token == "" || subtle.ConstantTimeCompare([]byte(recebido), []byte(h.token)) != 1 {
			respondWithError(w, http.StatusUnauthorized, "Token de administração inválido")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// @Summary      Lista os pagamentos aguardando revisão manual
// @Description  Pagamentos aprovados sem e-mail do pagador ou sem perfil correspondente
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Token  header    string  true  "Token de administração"
// @Success      200            {array}   domain.RevisaoManual
// @Failure      401            {object}  map[string]string
// @Failure      500            {object}  map[string]string
// @Router       /admin/revisoes [get]
func (h *AdminHandler) ListarRevisoes(w http.ResponseWriter, r *http.Request) {
	revisoes, err := h.revisoes.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Erro ao buscar revisões")
		return
	}
	if revisoes == nil {
		revisoes = []domain.RevisaoManual{}
	}
	respondWithJSON(w, http.StatusOK, revisoes)
}
