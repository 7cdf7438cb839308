package domain

import "time"

// Destino é a área da aplicação que um usuário autenticado pode acessar.
type Destino string

const (
	DestinoCatalogo Destino = "catalogo"
	DestinoAssinar  Destino = "assinar"
	DestinoPainel   Destino = "painel"
)

// DestinoPara decide o destino a partir do perfil e da assinatura atuais.
// Comprador vai sempre para o catálogo, independente da assinatura.
func DestinoPara(p Perfil, a *Assinatura, agora time.Time) Destino {
	if p == nil || p.Tipo() != TipoCeramista {
		return DestinoCatalogo
	}
	if a.Vigente(agora) {
		return DestinoPainel
	}
	return DestinoAssinar
}
