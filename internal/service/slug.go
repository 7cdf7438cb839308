package service

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GerarSlug transforma "Vaso de Cerâmica Azul" em "vaso-de-ceramica-azul-1a2b3c".
// O sufixo aleatório evita colisão entre peças com o mesmo nome.
func GerarSlug(nome string) string {
	base := slugBase(nome)
	sufixo := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	if base == "" {
		return "peca-" + sufixo
	}
	return base + "-" + sufixo
}

func slugBase(nome string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	semAcento, _, err := transform.String(t, nome)
	if err != nil {
		semAcento = nome
	}

	var b strings.Builder
	hifen := false
	for _, r := range strings.ToLower(semAcento) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hifen = false
		case b.Len() > 0 && !hifen:
			b.WriteByte('-')
			hifen = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if len(s) > 60 {
		s = strings.TrimSuffix(s[:60], "-")
	}
	return s
}
