package domain

import "time"

// StatusPagamentoAprovado é o único status que concede acesso.
const StatusPagamentoAprovado = "approved"

// Pagamento é a visão autoritativa de um pagamento, buscada no processador.
type Pagamento struct {
	ID            string
	Status        string
	EmailPagador  string
	DataAprovacao time.Time
}

// Aprovado informa se o pagamento foi confirmado pelo processador.
func (p *Pagamento) Aprovado() bool {
	return p != nil && p.Status == StatusPagamentoAprovado
}

// NotificacaoPagamento é o aviso recebido do processador.
// Pode chegar mais de uma vez para o mesmo pagamento.
type NotificacaoPagamento struct {
	Processador string
	PagamentoID string
	Payload     []byte
}

// PagamentoAplicado registra um pagamento que já concedeu acesso.
// Cada pagamento é aplicado uma única vez por processador.
type PagamentoAplicado struct {
	Processador   string
	PagamentoID   string
	UserID        string
	DataAprovacao time.Time
	AplicadoEm    time.Time
}

// Motivos de revisão manual.
const (
	MotivoEmailPagadorAusente = "email_pagador_ausente"
	MotivoPerfilNaoEncontrado = "perfil_nao_encontrado"
)

// RevisaoManual guarda um pagamento aprovado que não pôde ser conciliado.
type RevisaoManual struct {
	ID           int64     `json:"id"`
	Processador  string    `json:"processador"`
	PagamentoID  string    `json:"pagamento_id"`
	Motivo       string    `json:"motivo"`
	EmailPagador string    `json:"email_pagador,omitempty"`
	Payload      string    `json:"payload"`
	CriadoEm     time.Time `json:"criado_em"`
}
