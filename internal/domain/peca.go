package domain

import "time"

type StatusPeca string

const (
	StatusPecaAtiva   StatusPeca = "active"
	StatusPecaInativa StatusPeca = "inactive"
)

func (s StatusPeca) Valido() bool {
	return s == StatusPecaAtiva || s == StatusPecaInativa
}

// Peca é uma peça de cerâmica publicada por um ceramista.
type Peca struct {
	ID            string     `json:"id"`
	CeramistaID   string     `json:"ceramista_id"`
	Nome          string     `json:"nome"`
	Slug          string     `json:"slug"`
	Descricao     string     `json:"descricao"`
	PrecoCentavos int64      `json:"preco_centavos"`
	Status        StatusPeca `json:"status"`
	CriadoEm      time.Time  `json:"criado_em"`
}
