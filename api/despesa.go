package api

import (
	"contabil/config"
	"contabil/database"
	"contabil/middleware"
	"contabil/models"
	"contabil/report"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DespesaHandler cuida dos lancamentos de despesa.
type DespesaHandler struct{}

// NewDespesaHandler cria o handler de despesas.
func NewDespesaHandler() *DespesaHandler {
	return &DespesaHandler{}
}

// Create cria uma despesa
// @Summary Criar despesa
// @Description Cria um novo lançamento de despesa
// @Tags Despesas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LancamentoRequest true "Dados da despesa"
// @Success 200 {object} Response{data=models.Despesa} "Despesa criada"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/despesas [post]
func (h *DespesaHandler) Create(c *gin.Context) {
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
	if msg := validarVinculos(userID, models.TipoDespesa, req.CategoriaID, req.FornecedorID); msg != "" {
		BadRequest(c, msg)
		return
	}

	despesa := models.Despesa{
		UserID:       userID,
		Descricao:    req.Descricao,
		Valor:        decimal.NewFromFloat(req.Valor),
		Data:         data,
		CategoriaID:  req.CategoriaID,
		FornecedorID: req.FornecedorID,
		Comprovante:  req.Comprovante,
		Observacoes:  req.Observacoes,
	}
	if err := database.DB.Create(&despesa).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao criar a despesa"))
		return
	}
	SuccessWithMessage(c, "despesa criada", despesa)
}

// List lista as despesas do usuario
// @Summary Listar despesas
// @Description Lista as despesas do usuário com filtros e paginação
// @Tags Despesas
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Itens por página"
// @Param data_inicio query string false "Data inicial (2024-01-01)"
// @Param data_fim query string false "Data final (2024-12-31)"
// @Param categoria query int false "Filtro por categoria"
// @Param fornecedor query int false "Filtro por fornecedor"
// @Param busca query string false "Busca na descrição"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Despesa}} "Lista de despesas"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/despesas [get]
func (h *DespesaHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req LancamentoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}
	page, pageSize := normalizarPaginacao(userID, req.Page, req.PageSize)

	query := database.DB.Model(&models.Despesa{}).Where("user_id = ?", userID)
	query = aplicarFiltrosLista(query, req)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao listar as despesas"))
		return
	}

	var despesas []models.Despesa
	if err := query.Preload("Categoria").Preload("Fornecedor").
		Order("data DESC, data_cadastro DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&despesas).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao listar as despesas"))
		return
	}

	Success(c, PageResponse{Total: total, Page: page, PageSize: pageSize, List: despesas})
}

// Get devolve uma despesa
// @Summary Detalhar despesa
// @Description Devolve uma despesa do usuário pelo id
// @Tags Despesas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da despesa"
// @Success 200 {object} Response{data=models.Despesa} "Despesa"
// @Failure 404 {object} Response "Despesa não encontrada"
// @Router /api/v1/despesas/{id} [get]
func (h *DespesaHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var despesa models.Despesa
	if err := database.DB.Preload("Categoria").Preload("Fornecedor").
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&despesa).Error; err != nil {
		NotFound(c, "despesa não encontrada")
		return
	}
	Success(c, despesa)
}

// Update atualiza uma despesa
// @Summary Atualizar despesa
// @Description Atualiza um lançamento de despesa do usuário
// @Tags Despesas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da despesa"
// @Param request body LancamentoRequest true "Dados da despesa"
// @Success 200 {object} Response{data=models.Despesa} "Despesa atualizada"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 404 {object} Response "Despesa não encontrada"
// @Router /api/v1/despesas/{id} [put]
func (h *DespesaHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var despesa models.Despesa
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&despesa).Error; err != nil {
		NotFound(c, "despesa não encontrada")
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
	if msg := validarVinculos(userID, models.TipoDespesa, req.CategoriaID, req.FornecedorID); msg != "" {
		BadRequest(c, msg)
		return
	}

	despesa.Descricao = req.Descricao
	despesa.Valor = decimal.NewFromFloat(req.Valor)
	despesa.Data = data
	despesa.CategoriaID = req.CategoriaID
	despesa.FornecedorID = req.FornecedorID
	despesa.Comprovante = req.Comprovante
	despesa.Observacoes = req.Observacoes

	if err := database.DB.Save(&despesa).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao atualizar a despesa"))
		return
	}
	SuccessWithMessage(c, "despesa atualizada", despesa)
}

// Delete remove uma despesa
// @Summary Excluir despesa
// @Description Remove um lançamento de despesa do usuário
// @Tags Despesas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da despesa"
// @Success 200 {object} Response "Despesa excluída"
// @Failure 404 {object} Response "Despesa não encontrada"
// @Router /api/v1/despesas/{id} [delete]
func (h *DespesaHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var despesa models.Despesa
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&despesa).Error; err != nil {
		NotFound(c, "despesa não encontrada")
		return
	}
	if err := database.DB.Delete(&despesa).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao excluir a despesa"))
		return
	}
	SuccessWithMessage(c, "despesa excluída", nil)
}

// Statistics resume as despesas do periodo
// @Summary Estatísticas de despesas
// @Description Totais do período e quebra por categoria
// @Tags Despesas
// @Produce json
// @Security BearerAuth
// @Param data_inicio query string false "Data inicial (2024-01-01)"
// @Param data_fim query string false "Data final (2024-12-31)"
// @Success 200 {object} Response "Estatísticas"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/despesas/statistics [get]
func (h *DespesaHandler) Statistics(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	filtro := report.Filtro{UserID: userID, Tipo: models.TipoDespesa}
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
	categorias, err := report.PorCategoria(database.DB, filtro, models.TipoDespesa)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao calcular as estatísticas"))
		return
	}

	Success(c, gin.H{
		"total":      resumo.TotalDespesas,
		"quantidade": resumo.QtdDespesas,
		"categorias": categorias,
	})
}
