package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"contabil/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarCSV(t *testing.T) {
	lancs := []Lancamento{
		{
			Tipo:       models.TipoReceita,
			Data:       time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			Descricao:  "Venda de serviço",
			Valor:      decimal.RequireFromString("1250.50"),
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

	var buf bytes.Buffer
	require.NoError(t, GerarCSV(&buf, lancs))

	saida := buf.String()
	require.True(t, strings.HasPrefix(saida, "\xEF\xBB\xBF"), "deve comecar com BOM UTF-8")

	linhas := strings.Split(strings.TrimRight(strings.TrimPrefix(saida, "\xEF\xBB\xBF"), "\n"), "\n")
	require.Len(t, linhas, 3)

	assert.Equal(t, "Data;Descricao;Tipo;Categoria;Fornecedor;CNPJ/CPF;Valor", linhas[0])
	assert.Equal(t, "20/01/2024;Venda de serviço;Receita;Vendas;Cliente A;12.345.678/0001-90;1250,50", linhas[1])
	// Despesa sai com sinal negativo e placeholders nos vinculos ausentes.
	assert.Equal(t, "10/01/2024;Aluguel;Despesa;Sem Categoria;-;-;-850,00", linhas[2])
}

func TestGerarCSVVazio(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GerarCSV(&buf, nil))

	linhas := strings.Split(strings.TrimRight(strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF"), "\n"), "\n")
	require.Len(t, linhas, 1, "apenas o cabecalho")
}
