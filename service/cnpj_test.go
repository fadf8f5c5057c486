package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"contabil/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoClienteTeste(baseURL string) *CNPJClient {
	cfg := &config.Config{}
	cfg.Lookup.BaseURL = baseURL
	cfg.Lookup.TimeoutSeconds = 2
	return NewCNPJClient(cfg)
}

func TestNormalizarCNPJ(t *testing.T) {
	assert.Equal(t, "12345678000190", NormalizarCNPJ("12.345.678/0001-90"))
	assert.Equal(t, "12345678000190", NormalizarCNPJ("12345678000190"))
	assert.Equal(t, "", NormalizarCNPJ("abc"))
}

func TestConsultarCNPJ(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/12345678000190", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cnpj":"12345678000190","razao_social":"EMPRESA EXEMPLO LTDA","municipio":"SAO PAULO","uf":"SP"}`))
	}))
	defer srv.Close()

	dados, err := novoClienteTeste(srv.URL).Consultar("12.345.678/0001-90")
	require.NoError(t, err)
	assert.Equal(t, "EMPRESA EXEMPLO LTDA", dados.RazaoSocial)
	assert.Equal(t, "SP", dados.UF)
}

func TestConsultarCNPJTamanhoInvalido(t *testing.T) {
	_, err := novoClienteTeste("http://example.invalid").Consultar("123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "14 dígitos")
}

func TestConsultarCNPJFalhaViraErroGenerico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := novoClienteTeste(srv.URL).Consultar("12345678000190")
	assert.ErrorIs(t, err, ErrConsultaCNPJ)
}

func TestConsultarCNPJRespostaQuebrada(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{nao e json"))
	}))
	defer srv.Close()

	_, err := novoClienteTeste(srv.URL).Consultar("12345678000190")
	assert.ErrorIs(t, err, ErrConsultaCNPJ)
}
