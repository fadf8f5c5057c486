package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "operacao falhou"
	testErr := errors.New("internal database error")

	// err nil sempre devolve o fallback.
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// Modo release oculta o detalhe.
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// Modo debug expoe o detalhe.
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// Processo sem configuracao e tratado como desenvolvimento.
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfigDefaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "utf8mb4", cfg.Database.Charset)
	assert.Equal(t, 24, cfg.JWT.ExpireHours)
	assert.Equal(t, cfg.JWT.ExpireTime.Hours(), float64(cfg.JWT.ExpireHours))
	assert.Contains(t, cfg.Lookup.BaseURL, "brasilapi.com.br")
	assert.Same(t, cfg, GlobalConfig)
}

func TestLoadConfigMissingExternalFile(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	// Caminho inexistente cai nos padroes embutidos em vez de falhar.
	cfg, err := LoadConfig("/nonexistent/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Server.Mode)
}
