package report

import (
	"encoding/csv"
	"io"
	"strings"

	"contabil/models"
)

// GerarCSV escreve os lancamentos como CSV separado por ponto e virgula,
// com BOM UTF-8 para abrir corretamente no Excel pt-BR. Uma linha por
// lancamento, sem linhas de resumo; despesas saem com valor negativo.
func GerarCSV(w io.Writer, lancs []Lancamento) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write([]string{"Data", "Descricao", "Tipo", "Categoria", "Fornecedor", "CNPJ/CPF", "Valor"}); err != nil {
		return err
	}

	for _, l := range lancs {
		tipo := "Receita"
		valor := l.Valor
		if l.Tipo == models.TipoDespesa {
			tipo = "Despesa"
			valor = valor.Neg()
		}
		categoria := l.Categoria
		if categoria == "" {
			categoria = "Sem Categoria"
		}
		fornecedor := l.Fornecedor
		if fornecedor == "" {
			fornecedor = "-"
		}
		cpfCnpj := l.CpfCnpj
		if cpfCnpj == "" {
			cpfCnpj = "-"
		}
		linha := []string{
			FormatarData(l.Data),
			l.Descricao,
			tipo,
			categoria,
			fornecedor,
			cpfCnpj,
			strings.ReplaceAll(valor.StringFixed(2), ".", ","),
		}
		if err := cw.Write(linha); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
