package report

import (
	"testing"
	"time"

	"contabil/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGerarExcel(t *testing.T) {
	lancs := []Lancamento{
		{
			Tipo:       models.TipoReceita,
			Data:       time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Descricao:  "Venda",
			Valor:      decimal.RequireFromString("1000.00"),
			Categoria:  "Vendas",
			Fornecedor: "Cliente A",
			CpfCnpj:    "12.345.678/0001-90",
		},
		{
			Tipo:      models.TipoDespesa,
			Data:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Descricao: "Aluguel",
			Valor:     decimal.RequireFromString("850.00"),
		},
	}
	resumo := resumoCom("1000.00", "850.00")

	f, err := GerarExcel(lancs, resumo)
	require.NoError(t, err)
	defer f.Close()

	raw := excelize.Options{RawCellValue: true}
	ler := func(celula string) string {
		v, err := f.GetCellValue(abaLancamentos, celula, raw)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Data", ler("A1"))
	assert.Equal(t, "Valor", ler("G1"))

	assert.Equal(t, "05/01/2024", ler("A2"))
	assert.Equal(t, "Receita", ler("B2"))
	assert.Equal(t, "Venda", ler("C2"))
	assert.Equal(t, "1000", ler("G2"))

	// Despesa sai negativa, com placeholders nos vinculos ausentes.
	assert.Equal(t, "Despesa", ler("B3"))
	assert.Equal(t, "-", ler("D3"))
	assert.Equal(t, "-850", ler("G3"))

	// Resumo: linha em branco e tres linhas de totais.
	assert.Equal(t, "Total Receitas:", ler("F5"))
	assert.Equal(t, "1000", ler("G5"))
	assert.Equal(t, "Total Despesas:", ler("F6"))
	assert.Equal(t, "-850", ler("G6"))
	assert.Equal(t, "BALANÇO:", ler("F7"))
	assert.Equal(t, "150", ler("G7"))
}
