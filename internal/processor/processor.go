// Package processor fala com os processadores de pagamento externos.
// Cada cliente busca o estado autoritativo de um pagamento pelo ID recebido na notificação.
package processor

import "errors"

var (
	// ErrNaoEncontrado indica que o processador não tem um registro utilizável para o ID.
	ErrNaoEncontrado = errors.New("pagamento não encontrado no processador")
	// ErrIndisponivel cobre erros de rede, timeout e respostas 5xx; vale tentar de novo.
	ErrIndisponivel = errors.New("processador de pagamentos indisponível")
)
