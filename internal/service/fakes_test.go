package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/willjrcristo/atelie-inteligente/internal/domain"
	"github.com/willjrcristo/atelie-inteligente/internal/processor"
	"github.com/willjrcristo/atelie-inteligente/internal/repository"
)

// --- Fakes em memória das camadas externas ---

type fakePerfis struct {
	mu     sync.Mutex
	perfis map[string]domain.Perfil
	hashes map[string]string
	err    error
}

func newFakePerfis(perfis ...domain.Perfil) *fakePerfis {
	f := &fakePerfis{perfis: map[string]domain.Perfil{}, hashes: map[string]string{}}
	for _, p := range perfis {
		f.perfis[p.Base().ID] = p
	}
	return f
}

func (f *fakePerfis) Create(ctx context.Context, p domain.Perfil, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existente := range f.perfis {
		if existente.Base().Email == domain.NormalizarEmail(p.Base().Email) {
			return repository.ErrRegistroDuplicado
		}
	}
	f.perfis[p.Base().ID] = p
	f.hashes[p.Base().ID] = hash
	return nil
}

func (f *fakePerfis) GetByID(ctx context.Context, id string) (domain.Perfil, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.perfis[id], nil
}

func (f *fakePerfis) FindByEmail(ctx context.Context, email string) (domain.Perfil, error) {
	p, _, err := f.GetCredenciais(ctx, email)
	return p, err
}

func (f *fakePerfis) GetCredenciais(ctx context.Context, email string) (domain.Perfil, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, "", f.err
	}
	for id, p := range f.perfis {
		if domain.NormalizarEmail(p.Base().Email) == domain.NormalizarEmail(email) {
			return p, f.hashes[id], nil
		}
	}
	return nil, "", nil
}

func (f *fakePerfis) UpdateCeramista(ctx context.Context, c domain.Ceramista) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.perfis[c.ID] = &c
	return nil
}

// fakeAssinaturas reproduz o livro de pagamentos aplicados do SQLite.
type fakeAssinaturas struct {
	mu        sync.Mutex
	registros map[string]domain.Assinatura
	aplicados map[string]domain.PagamentoAplicado
	escritas  int
	errAplicar error
}

func newFakeAssinaturas() *fakeAssinaturas {
	return &fakeAssinaturas{
		registros: map[string]domain.Assinatura{},
		aplicados: map[string]domain.PagamentoAplicado{},
	}
}

func (f *fakeAssinaturas) AplicarPagamento(ctx context.Context, p domain.PagamentoAplicado, a domain.Assinatura) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errAplicar != nil {
		return false, f.errAplicar
	}
	chave := p.Processador + "/" + p.PagamentoID
	if _, ok := f.aplicados[chave]; ok {
		return false, nil
	}
	f.aplicados[chave] = p
	f.registros[a.UserID] = a
	f.escritas++
	return true, nil
}

func (f *fakeAssinaturas) CriarPendente(ctx context.Context, userID, planoID string, agora time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.registros[userID]; !ok {
		f.registros[userID] = domain.Assinatura{UserID: userID, Status: domain.StatusPendente, PlanoID: planoID, AtualizadoEm: agora}
	}
	return nil
}

func (f *fakeAssinaturas) GetByUserID(ctx context.Context, userID string) (*domain.Assinatura, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.registros[userID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAssinaturas) AtualizarStatus(ctx context.Context, userID string, de, para domain.StatusAssinatura, agora time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.registros[userID]
	if !ok || a.Status != de {
		return false, nil
	}
	a.Status = para
	a.AtualizadoEm = agora
	f.registros[userID] = a
	return true, nil
}

type fakeRevisoes struct {
	mu       sync.Mutex
	revisoes []domain.RevisaoManual
	err      error
}

func (f *fakeRevisoes) Registrar(ctx context.Context, r domain.RevisaoManual) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.revisoes = append(f.revisoes, r)
	return nil
}

func (f *fakeRevisoes) List(ctx context.Context) ([]domain.RevisaoManual, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.RevisaoManual(nil), f.revisoes...), nil
}

type fakePecas struct {
	mu    sync.Mutex
	pecas map[string]domain.Peca
}

func newFakePecas() *fakePecas {
	return &fakePecas{pecas: map[string]domain.Peca{}}
}

func (f *fakePecas) Create(ctx context.Context, p domain.Peca) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existente := range f.pecas {
		if existente.Slug == p.Slug {
			return repository.ErrRegistroDuplicado
		}
	}
	f.pecas[p.ID] = p
	return nil
}

func (f *fakePecas) GetByID(ctx context.Context, id string) (*domain.Peca, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pecas[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePecas) GetBySlug(ctx context.Context, slug string) (*domain.Peca, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.pecas {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePecas) ListByCeramista(ctx context.Context, ceramistaID string, somenteAtivas bool) ([]domain.Peca, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Peca
	for _, p := range f.pecas {
		if p.CeramistaID == ceramistaID && (!somenteAtivas || p.Status == domain.StatusPecaAtiva) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePecas) ListAtivas(ctx context.Context) ([]domain.Peca, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Peca
	for _, p := range f.pecas {
		if p.Status == domain.StatusPecaAtiva {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePecas) UpdateStatus(ctx context.Context, id string, status domain.StatusPeca) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.pecas[id]
	p.Status = status
	f.pecas[id] = p
	return nil
}

func (f *fakePecas) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pecas, id)
	return nil
}

// fakeProcessador devolve pagamentos fixos por ID.
type fakeProcessador struct {
	mu         sync.Mutex
	pagamentos map[string]*domain.Pagamento
	err        error
	chamadas   int
}

func (f *fakeProcessador) Nome() string { return "fake" }

func (f *fakeProcessador) BuscarPagamento(ctx context.Context, id string) (*domain.Pagamento, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chamadas++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.pagamentos[id]
	if !ok {
		return nil, errNaoEncontradoFake
	}
	return p, nil
}

var errNaoEncontradoFake = fmt.Errorf("fake: %w", processor.ErrNaoEncontrado)
