package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/willjrcristo/atelie-inteligente/internal/service"
)

// AuthHandler gerencia as rotas de /auth.
type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(s AuthService) *AuthHandler {
	return &AuthHandler{
		service: s,
	}
}

func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/cadastro", h.Cadastrar) // POST /auth/cadastro
	r.Post("/login", h.Login)        // POST /auth/login

	return r
}

type requisicaoLogin struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// @Summary      Cria uma conta
// @Description  Cria um perfil de ceramista ou comprador e já devolve a sessão. Ceramistas começam com assinatura pendente.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        cadastro  body      service.Cadastro  true  "Dados do cadastro"
// @Success      201       {object}  service.SessaoEmitida
// @Failure      400       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /auth/cadastro [post]
func (h *AuthHandler) Cadastrar(w http.ResponseWriter, r *http.Request) {
	var c service.Cadastro
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	sessao, err := h.service.Cadastrar(r.Context(), c)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDadosInvalidos):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrEmailJaCadastrado):
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Erro ao criar conta")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, sessao)
}

// @Summary      Entra com e-mail e senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      requisicaoLogin  true  "Credenciais"
// @Success      200    {object}  service.SessaoEmitida
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requisicaoLogin
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	sessao, err := h.service.Login(r.Context(), req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, service.ErrCredenciaisInvalidas) {
			respondWithError(w, http.StatusUnauthorized, err.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "Erro ao entrar")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, sessao)
}
