package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrega todas as configuracoes da aplicacao.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Lookup   LookupConfig   `mapstructure:"lookup"`
}

// ServerConfig configura o servidor HTTP.
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig configura a conexao MySQL.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// JWTConfig configura a assinatura dos tokens.
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// LookupConfig configura a consulta externa ao registro de empresas (CNPJ).
type LookupConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

var (
	// GlobalConfig e a instancia global de configuracao.
	GlobalConfig *Config
)

// LoadConfig carrega a configuracao com a seguinte precedencia:
// arquivo externo > padrao embutido, com variaveis de ambiente CONTABIL_*
// sobrepondo ambos. configPath e um caminho explicito opcional.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Primeiro os padroes embutidos.
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("lendo a configuração embutida: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("aviso: nao foi possivel ler %s: %v", configPath, err)
		} else {
			log.Printf("configuracao externa aplicada: %s", configPath)
		}
	} else {
		// Procura um arquivo de configuracao externo nos locais usuais.
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/contabil")
		externalViper.AddConfigPath("$HOME/.contabil")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("aviso: falha ao mesclar configuracao externa: %v", err)
			} else {
				log.Printf("configuracao externa aplicada: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	v.SetEnvPrefix("CONTABIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("interpretando a configuração: %w", err)
	}

	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24
	}
	cfg.JWT.ExpireTime = time.Duration(cfg.JWT.ExpireHours) * time.Hour

	if cfg.Lookup.TimeoutSeconds <= 0 {
		cfg.Lookup.TimeoutSeconds = 10
	}

	GlobalConfig = &cfg

	return &cfg, nil
}

// MustLoadConfig carrega a configuracao; em caso de falha, panica.
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("carregando configuracao: %v", err))
	}
	return cfg
}

// GetConfig devolve a configuracao global.
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("configuracao nao inicializada; chame LoadConfig antes")
	}
	return GlobalConfig
}

// PrintConfig registra a configuracao ativa, ocultando credenciais.
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("configuracao ativa:")
	log.Printf("  servidor: %s (modo: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  banco: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  consulta CNPJ: %s", GlobalConfig.Lookup.BaseURL)
}
