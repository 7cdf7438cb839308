package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
	"github.com/willjrcristo/atelie-inteligente/internal/service"
)

type chaveContexto string

const (
	chaveUserID    chaveContexto = "user_id"
	chaveAvaliacao chaveContexto = "avaliacao"
)

// UserIDFromContext devolve o usuário autenticado pelo middleware Autenticado.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(chaveUserID).(string)
	return id
}

// AvaliacaoFromContext devolve a avaliação feita pelos middlewares do guard, se houver.
func AvaliacaoFromContext(ctx context.Context) *service.Avaliacao {
	av, _ := ctx.Value(chaveAvaliacao).(*service.Avaliacao)
	return av
}

// Autenticado exige um token de sessão válido no cabeçalho Authorization: Bearer.
func Autenticado(sessoes ValidadorSessao) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				respondWithError(w, http.StatusUnauthorized, "Sessão ausente")
				return
			}
			userID, err := sessoes.Validar(strings.TrimSpace(token))
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, service.ErrSessaoInvalida.Error())
				return
			}
			ctx := context.WithValue(r.Context(), chaveUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExigirDestino só deixa passar quem o guard mandaria para o destino informado.
// Deve ser usado depois de Autenticado.
func ExigirDestino(guard Guard, destino domain.Destino) func(http.Handler) http.Handler {
	return exigir(guard, func(av *service.Avaliacao) bool {
		return av.Destino == destino
	})
}

// ExigirCeramista deixa passar qualquer ceramista, pago ou não.
func ExigirCeramista(guard Guard) func(http.Handler) http.Handler {
	return exigir(guard, func(av *service.Avaliacao) bool {
		return av.Perfil.Tipo() == domain.TipoCeramista
	})
}

func exigir(guard Guard, permitido func(*service.Avaliacao) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			av, ok := avaliar(w, r, guard)
			if !ok {
				return
			}
			if !permitido(av) {
				respondWithJSON(w, http.StatusForbidden, map[string]string{
					"error":   service.ErrAcessoNegado.Error(),
					"destino": string(av.Destino),
				})
				return
			}
			ctx := context.WithValue(r.Context(), chaveAvaliacao, av)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func avaliar(w http.ResponseWriter, r *http.Request, guard Guard) (*service.Avaliacao, bool) {
	av, err := guard.Avaliar(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, service.ErrPerfilNaoEncontrado) {
			// Token válido de um perfil que não existe mais.
			respondWithError(w, http.StatusUnauthorized, service.ErrSessaoInvalida.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "Erro ao avaliar sessão")
		}
		return nil, false
	}
	return av, true
}

// SessaoHandler expõe o guard para o front decidir a tela inicial.
type SessaoHandler struct {
	guard Guard
}

func NewSessaoHandler(g Guard) *SessaoHandler {
	return &SessaoHandler{
		guard: g,
	}
}

type respostaDestino struct {
	Destino    domain.Destino     `json:"destino"`
	Perfil     domain.Perfil      `json:"perfil"`
	Assinatura *domain.Assinatura `json:"assinatura,omitempty"`
}

// @Summary      Destino da sessão
// @Description  Diz para onde o usuário autenticado deve ir: catalogo, assinar ou painel
// @Tags         sessao
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  respostaDestino
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /sessao/destino [get]
func (h *SessaoHandler) Destino(w http.ResponseWriter, r *http.Request) {
	av, ok := avaliar(w, r, h.guard)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, respostaDestino{
		Destino:    av.Destino,
		Perfil:     av.Perfil,
		Assinatura: av.Assinatura,
	})
}
