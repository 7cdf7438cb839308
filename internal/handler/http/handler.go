package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
	"github.com/willjrcristo/atelie-inteligente/internal/service"
)

// Para facilitar os testes, os handlers dependem de interfaces e não das structs do pacote service.

// Conciliador é o reconciliador de um processador de pagamentos.
type Conciliador interface {
	Processador() string
	ProcessarNotificacao(ctx context.Context, payload []byte) (service.Resultado, error)
	ProcessarPagamento(ctx context.Context, pagamentoID string, payload []byte) (service.Resultado, error)
}

// ExtratorStripe valida a assinatura do evento da Stripe e extrai o ID do pagamento.
type ExtratorStripe interface {
	ExtrairNotificacao(payload []byte, assinatura string) (id string, relevante bool, err error)
}

type AuthService interface {
	Cadastrar(ctx context.Context, c service.Cadastro) (*service.SessaoEmitida, error)
	Login(ctx context.Context, email, senha string) (*service.SessaoEmitida, error)
}

type ValidadorSessao interface {
	Validar(token string) (string, error)
}

type Guard interface {
	Avaliar(ctx context.Context, userID string) (*service.Avaliacao, error)
}

type AssinaturaService interface {
	Consultar(ctx context.Context, userID string) (*domain.Assinatura, error)
	Cancelar(ctx context.Context, userID string) (*domain.Assinatura, error)
	Reativar(ctx context.Context, userID string) (*domain.Assinatura, error)
}

type CatalogoService interface {
	CriarPeca(ctx context.Context, ceramistaID string, nova service.NovaPeca) (*domain.Peca, error)
	ListarPecasDoCeramista(ctx context.Context, ceramistaID string) ([]domain.Peca, error)
	AlterarStatusPeca(ctx context.Context, ceramistaID, pecaID string, status domain.StatusPeca) error
	RemoverPeca(ctx context.Context, ceramistaID, pecaID string) error
	BuscarPecaPublica(ctx context.Context, slug string) (*domain.Peca, error)
	Catalogo(ctx context.Context) ([]domain.Peca, error)
	PaginaPublica(ctx context.Context, ceramistaID string) (*service.PaginaCeramista, error)
	AtualizarDadosPublicos(ctx context.Context, ceramistaID string, d service.DadosPublicos) (*domain.Ceramista, error)
}

type RevisaoLister interface {
	List(ctx context.Context) ([]domain.RevisaoManual, error)
}

// --- FUNÇÕES AUXILIARES ---

func respondWithError(w http.ResponseWriter, code int, message string) {
	if code >= http.StatusInternalServerError {
		slog.Error("API Error", "code", code, "message", message)
	} else {
		slog.Warn("API Error", "code", code, "message", message)
	}
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
