package router

import (
	"net/http"
	"time"

	"contabil/api"
	"contabil/config"
	_ "contabil/docs"
	"contabil/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter monta a tabela de rotas da aplicacao.
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()
	r.Use(CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler := api.NewAuthHandler(cfg)
	receitaHandler := api.NewReceitaHandler()
	despesaHandler := api.NewDespesaHandler()
	categoriaHandler := api.NewCategoriaHandler()
	fornecedorHandler := api.NewFornecedorHandler()
	empresaHandler := api.NewEmpresaHandler()
	preferenciasHandler := api.NewPreferenciasHandler()
	relatorioHandler := api.NewRelatorioHandler()
	exportHandler := api.NewExportHandler()
	lookupHandler := api.NewLookupHandler(cfg)

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.RateLimit(10, time.Minute), authHandler.Login)

			authProtected := auth.Group("")
			authProtected.Use(middleware.JWTAuth())
			{
				authProtected.GET("/profile", authHandler.Profile)
				authProtected.PUT("/password", authHandler.ChangePassword)
			}
		}

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth())
		{
			protected.GET("/receitas", receitaHandler.List)
			protected.POST("/receitas", receitaHandler.Create)
			protected.GET("/receitas/statistics", receitaHandler.Statistics)
			protected.GET("/receitas/:id", receitaHandler.Get)
			protected.PUT("/receitas/:id", receitaHandler.Update)
			protected.DELETE("/receitas/:id", receitaHandler.Delete)

			protected.GET("/despesas", despesaHandler.List)
			protected.POST("/despesas", despesaHandler.Create)
			protected.GET("/despesas/statistics", despesaHandler.Statistics)
			protected.GET("/despesas/:id", despesaHandler.Get)
			protected.PUT("/despesas/:id", despesaHandler.Update)
			protected.DELETE("/despesas/:id", despesaHandler.Delete)

			protected.GET("/categorias", categoriaHandler.List)
			protected.POST("/categorias", categoriaHandler.Create)
			protected.PUT("/categorias/:id", categoriaHandler.Update)
			protected.POST("/categorias/:id/activate", categoriaHandler.Activate)
			protected.POST("/categorias/:id/deactivate", categoriaHandler.Deactivate)

			protected.GET("/fornecedores", fornecedorHandler.List)
			protected.POST("/fornecedores", fornecedorHandler.Create)
			protected.GET("/fornecedores/:id", fornecedorHandler.Get)
			protected.PUT("/fornecedores/:id", fornecedorHandler.Update)
			protected.DELETE("/fornecedores/:id", fornecedorHandler.Delete)

			protected.GET("/empresa", empresaHandler.GetPerfil)
			protected.PUT("/empresa", empresaHandler.UpdatePerfil)
			protected.GET("/empresa/contas", empresaHandler.ListContas)
			protected.POST("/empresa/contas", empresaHandler.CreateConta)
			protected.PUT("/empresa/contas/:id", empresaHandler.UpdateConta)
			protected.DELETE("/empresa/contas/:id", empresaHandler.DeleteConta)
			protected.POST("/empresa/contas/:id/preferencial", empresaHandler.SetContaPreferencial)
			protected.GET("/empresa/declaracoes", empresaHandler.ListDeclaracoes)
			protected.POST("/empresa/declaracoes/:ano", empresaHandler.ConfirmarDeclaracao)

			protected.GET("/preferencias", preferenciasHandler.Get)
			protected.PUT("/preferencias", preferenciasHandler.Update)
			protected.POST("/preferencias/tema", preferenciasHandler.ToggleTema)

			protected.GET("/relatorios/resumo", relatorioHandler.Summary)
			protected.GET("/relatorios/mensal", relatorioHandler.Monthly)
			protected.GET("/relatorios/anual", relatorioHandler.Annual)
			protected.GET("/relatorios/fluxo-caixa", relatorioHandler.Cashflow)
			protected.GET("/relatorios/dashboard", relatorioHandler.Dashboard)

			protected.GET("/export/csv", exportHandler.CSV)
			protected.GET("/export/excel", exportHandler.Excel)
			protected.GET("/export/pdf", exportHandler.PDF)

			protected.GET("/lookup/cnpj/:cnpj", middleware.RateLimit(30, time.Minute), lookupHandler.CNPJ)
		}
	}

	return r
}

// CORSMiddleware libera requisicoes de outras origens.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
