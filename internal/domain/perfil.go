package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// TipoPerfil diferencia quem vende (ceramista) de quem compra (comprador).
type TipoPerfil string

const (
	TipoCeramista TipoPerfil = "ceramista"
	TipoComprador TipoPerfil = "comprador"
)

// Valido informa se o tipo é um dos dois papéis conhecidos.
func (t TipoPerfil) Valido() bool {
	return t == TipoCeramista || t == TipoComprador
}

// PerfilBase reúne os campos comuns a qualquer perfil.
type PerfilBase struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Nome     string    `json:"nome"`
	CriadoEm time.Time `json:"criado_em"`
}

// Perfil é a identidade de um usuário autenticado.
// Só existem duas variantes: *Ceramista e *Comprador.
type Perfil interface {
	Base() PerfilBase
	Tipo() TipoPerfil
	perfil()
}

// Ceramista é o perfil do artesão, com os dados exibidos na página pública.
type Ceramista struct {
	PerfilBase
	Bio       string `json:"bio"`
	Cidade    string `json:"cidade"`
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
}

func (c Ceramista) Base() PerfilBase { return c.PerfilBase }
func (Ceramista) Tipo() TipoPerfil { return TipoCeramista }
func (Ceramista) perfil() {}

// MarshalJSON inclui o campo "tipo" na resposta.
func (c Ceramista) MarshalJSON() ([]byte, error) {
	type alias Ceramista
	return json.Marshal(struct {
		Tipo TipoPerfil `json:"tipo"`
		alias
	}{TipoCeramista, alias(c)})
}

// Comprador é o perfil de quem navega pelo catálogo.
type Comprador struct {
	PerfilBase
}

func (c Comprador) Base() PerfilBase { return c.PerfilBase }
func (Comprador) Tipo() TipoPerfil { return TipoComprador }
func (Comprador) perfil() {}

func (c Comprador) MarshalJSON() ([]byte, error) {
	type alias Comprador
	return json.Marshal(struct {
		Tipo TipoPerfil `json:"tipo"`
		alias
	}{TipoComprador, alias(c)})
}

// NovoPerfil monta a variante certa a partir do tipo.
// Retorna nil para tipos desconhecidos.
func NovoPerfil(tipo TipoPerfil, base PerfilBase) Perfil {
	switch tipo {
	case TipoCeramista:
		return &Ceramista{PerfilBase: base}
	case TipoComprador:
		return &Comprador{PerfilBase: base}
	}
	return nil
}

// NormalizarEmail é a chave de comparação entre o e-mail do perfil e o do pagador.
func NormalizarEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
