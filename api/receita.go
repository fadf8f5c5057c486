package api

import (
	"time"

	"contabil/config"
	"contabil/database"
	"contabil/middleware"
	"contabil/models"
	"contabil/report"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReceitaHandler cuida dos lancamentos de receita.
type ReceitaHandler struct{}

// NewReceitaHandler cria o handler de receitas.
func NewReceitaHandler() *ReceitaHandler {
	return &ReceitaHandler{}
}

// LancamentoRequest e o corpo de criacao/edicao de receitas e despesas.
type LancamentoRequest struct {
	Descricao    string  `json:"descricao" binding:"required,max=255" example:"Venda de serviço"`
	Valor        float64 `json:"valor" binding:"required,gt=0" example:"1250.50"`
	Data         string  `json:"data" binding:"required" example:"2024-01-15"`
	CategoriaID  *uint   `json:"categoria_id"`
	FornecedorID *uint   `json:"fornecedor_id"`
	Comprovante  string  `json:"comprovante" binding:"omitempty,max=255"`
	Observacoes  string  `json:"observacoes"`
}

// LancamentoListRequest sao os filtros de listagem de lancamentos.
type LancamentoListRequest struct {
	Page        int    `form:"page" example:"1"`
	PageSize    int    `form:"page_size" example:"25"`
	DataInicio  string `form:"data_inicio" example:"2024-01-01"`
	DataFim     string `form:"data_fim" example:"2024-12-31"`
	CategoriaID *uint  `form:"categoria"`
	Fornecedor  *uint  `form:"fornecedor"`
	Busca       string `form:"busca"`
}

// parseData interpreta uma data aaaa-mm-dd.
func parseData(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// validarVinculos confere que a categoria (do tipo certo, propria ou
// padrao do sistema) e o fornecedor pertencem ao usuario. Devolve a
// mensagem do problema ou vazio.
func validarVinculos(userID uint, tipo string, categoriaID, fornecedorID *uint) string {
	if categoriaID != nil {
		var qtd int64
		database.DB.Model(&models.Categoria{}).
			Where("id = ? AND tipo = ? AND (user_id IS NULL OR user_id = ?)", *categoriaID, tipo, userID).
			Count(&qtd)
		if qtd == 0 {
			return "categoria inválida para este tipo de lançamento"
		}
	}
	if fornecedorID != nil {
		var qtd int64
		database.DB.Model(&models.Fornecedor{}).
			Where("id = ? AND user_id = ?", *fornecedorID, userID).
			Count(&qtd)
		if qtd == 0 {
			return "fornecedor não encontrado"
		}
	}
	return ""
}

// aplicarFiltrosLista monta a query de listagem comum a receitas e
// despesas. Datas malformadas sao ignoradas, nunca erram a requisicao.
func aplicarFiltrosLista(query *gorm.DB, req LancamentoListRequest) *gorm.DB {
	if req.DataInicio != "" {
		if t, err := parseData(req.DataInicio); err == nil {
			query = query.Where("data >= ?", t)
		}
	}
	if req.DataFim != "" {
		if t, err := parseData(req.DataFim); err == nil {
			query = query.Where("data <= ?", t)
		}
	}
	if req.CategoriaID != nil {
		query = query.Where("categoria_id = ?", *req.CategoriaID)
	}
	if req.Fornecedor != nil {
		query = query.Where("fornecedor_id = ?", *req.Fornecedor)
	}
	if req.Busca != "" {
		query = query.Where("descricao LIKE ?", "%"+req.Busca+"%")
	}
	return query
}

// normalizarPaginacao aplica os padroes de pagina, usando a preferencia
// do usuario como tamanho default.
func normalizarPaginacao(userID uint, page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 25
		if prefs, err := models.GetOrCreatePreferencias(database.DB, userID); err == nil {
			pageSize = prefs.ItensPorPagina
		}
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// Create cria uma receita
// @Summary Criar receita
// @Description Cria um novo lançamento de receita
// @Tags Receitas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LancamentoRequest true "Dados da receita"
// @Success 200 {object} Response{data=models.Receita} "Receita criada"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/receitas [post]
func (h *ReceitaHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req LancamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}
	data, err := parseData(req.Data)
	if err != nil {
		BadRequest(c, "data inválida, use o formato 2006-01-02")
		return
	}
	if msg := validarVinculos(userID, models.TipoReceita, req.CategoriaID, req.FornecedorID); msg != "" {
		BadRequest(c, msg)
		return
	}

	receita := models.Receita{
		UserID:       userID,
		Descricao:    req.Descricao,
		Valor:        decimal.NewFromFloat(req.Valor),
		Data:         data,
		CategoriaID:  req.CategoriaID,
		FornecedorID: req.FornecedorID,
		Comprovante:  req.Comprovante,
		Observacoes:  req.Observacoes,
	}
	if err := database.DB.Create(&receita).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao criar a receita"))
		return
	}
	SuccessWithMessage(c, "receita criada", receita)
}

// List lista as receitas do usuario
// @Summary Listar receitas
// @Description Lista as receitas do usuário com filtros e paginação
// @Tags Receitas
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Itens por página"
// @Param data_inicio query string false "Data inicial (2024-01-01)"
// @Param data_fim query string false "Data final (2024-12-31)"
// @Param categoria query int false "Filtro por categoria"
// @Param fornecedor query int false "Filtro por fornecedor"
// @Param busca query string false "Busca na descrição"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Receita}} "Lista de receitas"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/receitas [get]
func (h *ReceitaHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req LancamentoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}
	page, pageSize := normalizarPaginacao(userID, req.Page, req.PageSize)

	query := database.DB.Model(&models.Receita{}).Where("user_id = ?", userID)
	query = aplicarFiltrosLista(query, req)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao listar as receitas"))
		return
	}

	var receitas []models.Receita
	if err := query.Preload("Categoria").Preload("Fornecedor").
		Order("data DESC, data_cadastro DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&receitas).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao listar as receitas"))
		return
	}

	Success(c, PageResponse{Total: total, Page: page, PageSize: pageSize, List: receitas})
}

// Get devolve uma receita
// @Summary Detalhar receita
// @Description Devolve uma receita do usuário pelo id
// @Tags Receitas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da receita"
// @Success 200 {object} Response{data=models.Receita} "Receita"
// @Failure 404 {object} Response "Receita não encontrada"
// @Router /api/v1/receitas/{id} [get]
func (h *ReceitaHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var receita models.Receita
	if err := database.DB.Preload("Categoria").Preload("Fornecedor").
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&receita).Error; err != nil {
		NotFound(c, "receita não encontrada")
		return
	}
	Success(c, receita)
}

// Update atualiza uma receita
// @Summary Atualizar receita
// @Description Atualiza um lançamento de receita do usuário
// @Tags Receitas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da receita"
// @Param request body LancamentoRequest true "Dados da receita"
// @Success 200 {object} Response{data=models.Receita} "Receita atualizada"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 404 {object} Response "Receita não encontrada"
// @Router /api/v1/receitas/{id} [put]
func (h *ReceitaHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var receita models.Receita
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&receita).Error; err != nil {
		NotFound(c, "receita não encontrada")
		return
	}

	var req LancamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}
	data, err := parseData(req.Data)
	if err != nil {
		BadRequest(c, "data inválida, use o formato 2006-01-02")
		return
	}
	if msg := validarVinculos(userID, models.TipoReceita, req.CategoriaID, req.FornecedorID); msg != "" {
		BadRequest(c, msg)
		return
	}

	receita.Descricao = req.Descricao
	receita.Valor = decimal.NewFromFloat(req.Valor)
	receita.Data = data
	receita.CategoriaID = req.CategoriaID
	receita.FornecedorID = req.FornecedorID
	receita.Comprovante = req.Comprovante
	receita.Observacoes = req.Observacoes

	if err := database.DB.Save(&receita).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao atualizar a receita"))
		return
	}
	SuccessWithMessage(c, "receita atualizada", receita)
}

// Delete remove uma receita
// @Summary Excluir receita
// @Description Remove um lançamento de receita do usuário
// @Tags Receitas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da receita"
// @Success 200 {object} Response "Receita excluída"
// @Failure 404 {object} Response "Receita não encontrada"
// @Router /api/v1/receitas/{id} [delete]
func (h *ReceitaHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var receita models.Receita
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&receita).Error; err != nil {
		NotFound(c, "receita não encontrada")
		return
	}
	if err := database.DB.Delete(&receita).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao excluir a receita"))
		return
	}
	SuccessWithMessage(c, "receita excluída", nil)
}

// Statistics resume as receitas do periodo
// @Summary Estatísticas de receitas
// @Description Totais do período e quebra por categoria
// @Tags Receitas
// @Produce json
// @Security BearerAuth
// @Param data_inicio query string false "Data inicial (2024-01-01)"
// @Param data_fim query string false "Data final (2024-12-31)"
// @Success 200 {object} Response "Estatísticas"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/receitas/statistics [get]
func (h *ReceitaHandler) Statistics(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	filtro := report.Filtro{UserID: userID, Tipo: models.TipoReceita}
	if t, err := parseData(c.Query("data_inicio")); err == nil {
		filtro.DataInicio = &t
	}
	if t, err := parseData(c.Query("data_fim")); err == nil {
		filtro.DataFim = &t
	}

	resumo, err := report.Resumir(database.DB, filtro)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao calcular as estatísticas"))
		return
	}
	categorias, err := report.PorCategoria(database.DB, filtro, models.TipoReceita)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao calcular as estatísticas"))
		return
	}

	Success(c, gin.H{
		"total":      resumo.TotalReceitas,
		"quantidade": resumo.QtdReceitas,
		"categorias": categorias,
	})
}
