package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"contabil/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHandlerCSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	config.GlobalConfig = cfgTeste()
	defer func() { config.GlobalConfig = nil }()

	colunas := []string{"id", "user_id", "descricao", "valor", "data", "data_cadastro"}
	mock.ExpectQuery("SELECT .* FROM `receitas`").
		WillReturnRows(sqlmock.NewRows(colunas).
			AddRow(1, 1, "Venda de serviço", "1000.00",
				time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))
	mock.ExpectQuery("SELECT .* FROM `despesas`").
		WillReturnRows(sqlmock.NewRows(colunas).
			AddRow(1, 1, "Aluguel", "850.00",
				time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)))

	r := routerAutenticado(1)
	h := NewExportHandler()
	r.GET("/export/csv", h.CSV)

	req := httptest.NewRequest("GET", "/export/csv", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "relatorio_contabil_")

	corpo := w.Body.String()
	assert.True(t, strings.HasPrefix(corpo, "\xEF\xBB\xBF"), "deve começar com BOM")

	linhas := strings.Split(strings.TrimSpace(strings.TrimPrefix(corpo, "\xEF\xBB\xBF")), "\n")
	require.Len(t, linhas, 3)
	assert.Equal(t, "Data;Descricao;Tipo;Categoria;Fornecedor;CNPJ/CPF;Valor", linhas[0])
	assert.Equal(t, "15/01/2024;Venda de serviço;Receita;Sem Categoria;-;-;1000,00", linhas[1])
	assert.Equal(t, "10/01/2024;Aluguel;Despesa;Sem Categoria;-;-;-850,00", linhas[2])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandlerExcel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	config.GlobalConfig = cfgTeste()
	defer func() { config.GlobalConfig = nil }()

	colunas := []string{"id", "user_id", "descricao", "valor", "data", "data_cadastro"}
	mock.ExpectQuery("SELECT .* FROM `receitas`").
		WillReturnRows(sqlmock.NewRows(colunas).
			AddRow(1, 1, "Venda", "1000.00",
				time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))
	mock.ExpectQuery("SELECT .* FROM `despesas`").
		WillReturnRows(sqlmock.NewRows(colunas))

	// Totais do resumo que vai no rodape da planilha.
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(valor\\), 0\\) AS total, COUNT\\(\\*\\) AS qtd FROM `receitas`").
		WillReturnRows(sqlmock.NewRows([]string{"total", "qtd"}).AddRow("1000.00", 1))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(valor\\), 0\\) AS total, COUNT\\(\\*\\) AS qtd FROM `despesas`").
		WillReturnRows(sqlmock.NewRows([]string{"total", "qtd"}).AddRow("0.00", 0))

	r := routerAutenticado(1)
	h := NewExportHandler()
	r.GET("/export/excel", h.Excel)

	req := httptest.NewRequest("GET", "/export/excel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "lancamentos_")
	// xlsx e um zip: assinatura PK.
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandlerPDF(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	config.GlobalConfig = cfgTeste()
	defer func() { config.GlobalConfig = nil }()

	colunas := []string{"id", "user_id", "descricao", "valor", "data", "data_cadastro"}
	mock.ExpectQuery("SELECT .* FROM `receitas`").
		WillReturnRows(sqlmock.NewRows(colunas).
			AddRow(1, 1, "Venda", "1000.00",
				time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))
	mock.ExpectQuery("SELECT .* FROM `despesas`").
		WillReturnRows(sqlmock.NewRows(colunas))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(valor\\), 0\\) AS total, COUNT\\(\\*\\) AS qtd FROM `receitas`").
		WillReturnRows(sqlmock.NewRows([]string{"total", "qtd"}).AddRow("1000.00", 1))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(valor\\), 0\\) AS total, COUNT\\(\\*\\) AS qtd FROM `despesas`").
		WillReturnRows(sqlmock.NewRows([]string{"total", "qtd"}).AddRow("0.00", 0))
	mock.ExpectQuery("SELECT .* FROM `perfis_empresa`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "razao_social"}).
			AddRow(5, 1, "ELC Serviços ME"))
	mock.ExpectQuery("SELECT .* FROM `contas_bancarias`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "perfil_empresa_id", "nome_banco", "agencia", "conta_corrente", "preferencial"}).
			AddRow(1, 5, "Banco do Brasil", "1234", "56789-0", true))

	r := routerAutenticado(1)
	h := NewExportHandler()
	r.GET("/export/pdf", h.PDF)

	req := httptest.NewRequest("GET", "/export/pdf", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "relatorio_")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
	require.NoError(t, mock.ExpectationsWereMet())
}
