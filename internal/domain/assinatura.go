package domain

import "time"

// StatusAssinatura segue os valores gravados pela integração de pagamento.
type StatusAssinatura string

const (
	StatusAtiva     StatusAssinatura = "active"
	StatusCancelada StatusAssinatura = "canceled"
	StatusPendente  StatusAssinatura = "pending"
)

// Assinatura é o registro único de plano de cada usuário.
type Assinatura struct {
	UserID string           `json:"user_id"`
	Status StatusAssinatura `json:"status"`

	// ID do pagamento no processador que ativou (ou renovou) o plano.
	ReferenciaExterna string `json:"referencia_externa,omitempty"`

	PlanoID string `json:"plano_id"`

	// Fim do período pago. Zero enquanto a assinatura estiver pendente.
	PeriodoAtualFim time.Time `json:"periodo_atual_fim"`

	AtualizadoEm time.Time `json:"atualizado_em"`
}

// PodeTransicionar valida as mudanças de status permitidas.
// active -> active é a renovação trazida por um novo pagamento aprovado.
func PodeTransicionar(de, para StatusAssinatura) bool {
	switch de {
	case StatusPendente:
		return para == StatusAtiva
	case StatusAtiva:
		return para == StatusCancelada || para == StatusAtiva
	case StatusCancelada:
		return para == StatusAtiva
	}
	return false
}

// Vigente indica se a assinatura dá direito ao painel no instante informado.
func (a *Assinatura) Vigente(agora time.Time) bool {
	if a == nil {
		return false
	}
	return a.Status == StatusAtiva && a.PeriodoAtualFim.After(agora)
}
