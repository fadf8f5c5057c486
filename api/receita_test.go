package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"contabil/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceitaHandlerCreate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	config.GlobalConfig = cfgTeste()
	defer func() { config.GlobalConfig = nil }()

	// Validacao do vinculo de categoria antes do INSERT.
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categorias`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `receitas`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	r := routerAutenticado(1)
	h := NewReceitaHandler()
	r.POST("/receitas", h.Create)

	body := `{"descricao":"Venda de serviço","valor":1250.50,"data":"2024-01-15","categoria_id":3}`
	req := httptest.NewRequest("POST", "/receitas", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "receita criada")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReceitaHandlerCreateDataInvalida(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()
	config.GlobalConfig = cfgTeste()
	defer func() { config.GlobalConfig = nil }()

	r := routerAutenticado(1)
	h := NewReceitaHandler()
	r.POST("/receitas", h.Create)

	body := `{"descricao":"Venda","valor":100,"data":"15/01/2024"}`
	req := httptest.NewRequest("POST", "/receitas", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "data inválida")
}

func TestReceitaHandlerCreateCategoriaDeOutroTipo(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	config.GlobalConfig = cfgTeste()
	defer func() { config.GlobalConfig = nil }()

	// Categoria inexistente ou de despesa: o INSERT nunca acontece.
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categorias`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	r := routerAutenticado(1)
	h := NewReceitaHandler()
	r.POST("/receitas", h.Create)

	body := `{"descricao":"Venda","valor":100,"data":"2024-01-15","categoria_id":99}`
	req := httptest.NewRequest("POST", "/receitas", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "categoria inválida")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReceitaHandlerList(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	config.GlobalConfig = cfgTeste()
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `receitas`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT .* FROM `receitas`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "descricao", "valor", "data"}).
			AddRow(1, 1, "Venda A", "1000.00", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)).
			AddRow(2, 1, "Venda B", "500.00", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))

	r := routerAutenticado(1)
	h := NewReceitaHandler()
	r.GET("/receitas", h.List)

	req := httptest.NewRequest("GET", "/receitas?page=1&page_size=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	assert.Len(t, data["list"], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReceitaHandlerGetDeOutroUsuario(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	config.GlobalConfig = cfgTeste()
	defer func() { config.GlobalConfig = nil }()

	// A consulta ja filtra por user_id: registro de outro dono vira 404.
	mock.ExpectQuery("SELECT .* FROM `receitas`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	r := routerAutenticado(1)
	h := NewReceitaHandler()
	r.GET("/receitas/:id", h.Get)

	req := httptest.NewRequest("GET", "/receitas/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "receita não encontrada")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReceitaHandlerDelete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	config.GlobalConfig = cfgTeste()
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `receitas`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "descricao", "valor", "data"}).
			AddRow(7, 1, "Venda", "100.00", time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `receitas`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := routerAutenticado(1)
	h := NewReceitaHandler()
	r.DELETE("/receitas/:id", h.Delete)

	req := httptest.NewRequest("DELETE", "/receitas/7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "receita excluída")
	require.NoError(t, mock.ExpectationsWereMet())
}
