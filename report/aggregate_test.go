package report

import (
	"testing"
	"time"

	"contabil/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestResumir(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(valor\\), 0\\) AS total, COUNT\\(\\*\\) AS qtd FROM `receitas`").
		WillReturnRows(sqlmock.NewRows([]string{"total", "qtd"}).AddRow("1000.00", 1))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(valor\\), 0\\) AS total, COUNT\\(\\*\\) AS qtd FROM `despesas`").
		WillReturnRows(sqlmock.NewRows([]string{"total", "qtd"}).AddRow("1150.00", 2))

	r, err := Resumir(db, Filtro{UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, "1000", r.TotalReceitas.String())
	assert.Equal(t, "1150", r.TotalDespesas.String())
	assert.Equal(t, "-150", r.Balanco.String())
	assert.Equal(t, int64(1), r.QtdReceitas)
	assert.Equal(t, int64(2), r.QtdDespesas)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumirConjuntoVazio(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("FROM `receitas`").
		WillReturnRows(sqlmock.NewRows([]string{"total", "qtd"}).AddRow("0", 0))
	mock.ExpectQuery("FROM `despesas`").
		WillReturnRows(sqlmock.NewRows([]string{"total", "qtd"}).AddRow("0", 0))

	r, err := Resumir(db, Filtro{UserID: 1})
	require.NoError(t, err)
	assert.True(t, r.TotalReceitas.IsZero())
	assert.True(t, r.TotalDespesas.IsZero())
	assert.True(t, r.Balanco.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumirIntervaloInvertido(t *testing.T) {
	db, mock := setupMockDB(t)

	// Data inicial depois da final: resultado vazio sem tocar o banco.
	inicio := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r, err := Resumir(db, Filtro{UserID: 1, DataInicio: &inicio, DataFim: &fim})
	require.NoError(t, err)

	assert.True(t, r.TotalReceitas.IsZero())
	assert.True(t, r.TotalDespesas.IsZero())
	assert.Equal(t, int64(0), r.QtdReceitas)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumirApenasUmTipo(t *testing.T) {
	db, mock := setupMockDB(t)

	// Tipo "R" consulta somente a tabela de receitas.
	mock.ExpectQuery("FROM `receitas`").
		WillReturnRows(sqlmock.NewRows([]string{"total", "qtd"}).AddRow("300.00", 3))

	r, err := Resumir(db, Filtro{UserID: 1, Tipo: models.TipoReceita})
	require.NoError(t, err)
	assert.Equal(t, "300", r.TotalReceitas.String())
	assert.True(t, r.TotalDespesas.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPorCategoria(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("LEFT JOIN `?categorias`?").
		WillReturnRows(sqlmock.NewRows([]string{"categoria_id", "nome", "subtotal", "quantidade"}).
			AddRow(nil, "Sem Categoria", "1150.00", 2))

	fatias, err := PorCategoria(db, Filtro{UserID: 1}, models.TipoDespesa)
	require.NoError(t, err)
	require.Len(t, fatias, 1)

	assert.Nil(t, fatias[0].CategoriaID)
	assert.Equal(t, "Sem Categoria", fatias[0].Nome)
	assert.Equal(t, models.TipoDespesa, fatias[0].Tipo)
	assert.Equal(t, "1150", fatias[0].Subtotal.String())
	assert.Equal(t, int64(2), fatias[0].Quantidade)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSerieMensal(t *testing.T) {
	db, mock := setupMockDB(t)

	// Dois meses ancorados em fevereiro/2024: janeiro sai primeiro.
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("FROM `receitas`").
			WillReturnRows(sqlmock.NewRows([]string{"total", "qtd"}).AddRow("100.00", 1))
		mock.ExpectQuery("FROM `despesas`").
			WillReturnRows(sqlmock.NewRows([]string{"total", "qtd"}).AddRow("50.00", 1))
	}

	ref := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	serie, err := SerieMensal(db, 1, ref, 2)
	require.NoError(t, err)
	require.Len(t, serie, 2)

	assert.Equal(t, "Jan/2024", serie[0].Rotulo)
	assert.Equal(t, "Fev/2024", serie[1].Rotulo)
	assert.Equal(t, "100", serie[0].Receitas.String())
	assert.Equal(t, "50", serie[0].Despesas.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSerieMensalViradaDeAno(t *testing.T) {
	db, mock := setupMockDB(t)

	for i := 0; i < 3; i++ {
		mock.ExpectQuery("FROM `receitas`").
			WillReturnRows(sqlmock.NewRows([]string{"total", "qtd"}).AddRow("0", 0))
		mock.ExpectQuery("FROM `despesas`").
			WillReturnRows(sqlmock.NewRows([]string{"total", "qtd"}).AddRow("0", 0))
	}

	ref := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	serie, err := SerieMensal(db, 1, ref, 3)
	require.NoError(t, err)
	require.Len(t, serie, 3)
	assert.Equal(t, "Nov/2023", serie[0].Rotulo)
	assert.Equal(t, "Dez/2023", serie[1].Rotulo)
	assert.Equal(t, "Jan/2024", serie[2].Rotulo)
}

func TestLancamentosOrdenacao(t *testing.T) {
	db, mock := setupMockDB(t)

	colunas := []string{"id", "user_id", "descricao", "valor", "data", "data_cadastro"}
	d1 := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM `receitas`").
		WillReturnRows(sqlmock.NewRows(colunas).
			AddRow(1, 1, "Venda", "1000.00", d1, d1))
	mock.ExpectQuery("FROM `despesas`").
		WillReturnRows(sqlmock.NewRows(colunas).
			AddRow(2, 1, "Aluguel", "850.00", d2, d2).
			AddRow(3, 1, "Impostos", "300.00", d3, d3))

	lancs, err := Lancamentos(db, Filtro{UserID: 1})
	require.NoError(t, err)
	require.Len(t, lancs, 3)

	// Ordenados por data decrescente, receitas e despesas intercaladas.
	assert.Equal(t, "Impostos", lancs[0].Descricao)
	assert.Equal(t, models.TipoDespesa, lancs[0].Tipo)
	assert.Equal(t, "Aluguel", lancs[1].Descricao)
	assert.Equal(t, "Venda", lancs[2].Descricao)
	assert.Equal(t, models.TipoReceita, lancs[2].Tipo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
