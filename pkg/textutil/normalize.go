package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean normaliza texto livre vindo do cliente antes de persistir:
// aplica NFC (forma composta) e remove espaços nas bordas. Nomes como
// "João" podem chegar decompostos (a + combining tilde) dependendo do
// navegador; sem NFC o mesmo nome vira duas strings distintas no banco.
func Clean(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// CleanAll aplica Clean a cada elemento, no lugar.
func CleanAll(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = Clean(*f)
		}
	}
}
