package service

import "errors"

// Erros da conciliação de pagamentos. O handler traduz cada um para um status HTTP.
var (
	ErrPayloadInvalido         = errors.New("payload da notificação sem ID de pagamento")
	ErrProcessadorIndisponivel = errors.New("processador de pagamentos indisponível")
	ErrPagamentoNaoEncontrado  = errors.New("pagamento não encontrado")
	ErrEmailPagadorAusente     = errors.New("pagamento aprovado sem e-mail do pagador")
	ErrPerfilNaoEncontrado     = errors.New("perfil não encontrado")
	ErrFalhaPersistencia       = errors.New("falha ao gravar no banco")
)

// Erros de negócio das demais operações.
var (
	ErrDadosInvalidos          = errors.New("dados inválidos")
	ErrEmailJaCadastrado       = errors.New("e-mail já cadastrado")
	ErrCredenciaisInvalidas    = errors.New("e-mail ou senha inválidos")
	ErrSessaoInvalida          = errors.New("sessão inválida ou expirada")
	ErrAssinaturaNaoEncontrada = errors.New("assinatura não encontrada")
	ErrTransicaoInvalida       = errors.New("mudança de status da assinatura não permitida")
	ErrAssinaturaExpirada      = errors.New("período da assinatura encerrado, é preciso um novo pagamento")
	ErrPecaNaoEncontrada       = errors.New("peça não encontrada")
	ErrAcessoNegado            = errors.New("acesso negado")
)
