package main

import (
	"flag"
	"log"
	"strings"

	"contabil/config"
	"contabil/database"
	"contabil/middleware"
	"contabil/router"
)

// @title ELC Contábil API
// @version 1.0
// @description API de escrituração para pequenas empresas: receitas, despesas, categorias, fornecedores, relatórios e exportações
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "caminho do arquivo de configuração externo (opcional)")
	flag.StringVar(&configFile, "c", "", "caminho do arquivo de configuração (abreviado)")
	flag.StringVar(&port, "port", "", "porta de escuta, ex: 8080 ou :8080")
	flag.StringVar(&port, "p", "", "porta de escuta (abreviado)")
	flag.BoolVar(&showVersion, "version", false, "mostra a versão")
	flag.BoolVar(&showVersion, "v", false, "mostra a versão (abreviado)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("ELC Contábil v1.0.0")
		return
	}

	// Configuracao embutida + arquivo externo opcional por cima.
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("falha ao carregar a configuração: %v", err)
	}

	// A porta da linha de comando vence a da configuracao.
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("porta definida pela linha de comando: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("falha ao inicializar o banco: %v", err)
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  ELC Contábil no ar")
	log.Printf("==========================================")
	log.Printf("  Swagger: http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:     http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("falha ao subir o servidor: %v", err)
	}
}
