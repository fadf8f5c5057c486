package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatarBRL formata um valor no padrao brasileiro: ponto como separador
// de milhar, virgula como separador decimal, sempre duas casas. A
// substituicao e fixa e nao depende do locale do sistema.
func FormatarBRL(v decimal.Decimal) string {
	s := v.StringFixed(2)
	negativo := strings.HasPrefix(s, "-")
	if negativo {
		s = s[1:]
	}
	inteiro, fracao, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(inteiro); i++ {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(inteiro[i])
	}
	out := b.String() + "," + fracao
	if negativo {
		out = "-" + out
	}
	return out
}

// FormatarData devolve a data no formato dd/mm/aaaa.
func FormatarData(t time.Time) string {
	return t.Format("02/01/2006")
}
