package api

import (
	"contabil/config"
	"contabil/database"
	"contabil/middleware"
	"contabil/models"

	"github.com/gin-gonic/gin"
)

// CategoriaHandler cuida das categorias de lancamento.
type CategoriaHandler struct{}

// NewCategoriaHandler cria o handler de categorias.
func NewCategoriaHandler() *CategoriaHandler {
	return &CategoriaHandler{}
}

// CategoriaRequest e o corpo de criacao/edicao de categoria.
type CategoriaRequest struct {
	Nome  string `json:"nome" binding:"required,max=100" example:"Marketing"`
	Tipo  string `json:"tipo" binding:"required,oneof=R D" example:"D"`
	Cor   string `json:"cor" binding:"omitempty,max=7" example:"#6c757d"`
	Icone string `json:"icone" binding:"omitempty,max=50" example:"bi-tag"`
}

// List lista as categorias visiveis
// @Summary Listar categorias
// @Description Lista as categorias do usuário e as padrão do sistema
// @Tags Categorias
// @Produce json
// @Security BearerAuth
// @Param tipo query string false "Filtro por direção (R ou D)"
// @Param ativo query bool false "Filtro por status"
// @Success 200 {object} Response{data=[]models.Categoria} "Lista de categorias"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/categorias [get]
func (h *CategoriaHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	query := database.DB.Where("user_id IS NULL OR user_id = ?", userID)
	if tipo := c.Query("tipo"); tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}
	if ativo := c.Query("ativo"); ativo != "" {
		query = query.Where("ativo = ?", ativo == "true")
	}

	var categorias []models.Categoria
	if err := query.Order("nome").Find(&categorias).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao listar as categorias"))
		return
	}
	Success(c, categorias)
}

// Create cria uma categoria do usuario
// @Summary Criar categoria
// @Description Cria uma categoria própria do usuário
// @Tags Categorias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoriaRequest true "Dados da categoria"
// @Success 200 {object} Response{data=models.Categoria} "Categoria criada"
// @Failure 400 {object} Response "Parâmetros inválidos ou nome duplicado"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/categorias [post]
func (h *CategoriaHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}

	// A unicidade (nome, tipo, usuario) tambem vale contra as categorias
	// padrao do sistema visiveis ao usuario.
	var qtd int64
	database.DB.Model(&models.Categoria{}).
		Where("nome = ? AND tipo = ? AND (user_id IS NULL OR user_id = ?)", req.Nome, req.Tipo, userID).
		Count(&qtd)
	if qtd > 0 {
		BadRequest(c, "já existe uma categoria com esse nome e tipo")
		return
	}

	categoria := models.Categoria{
		UserID: &userID,
		Nome:   req.Nome,
		Tipo:   req.Tipo,
		Cor:    req.Cor,
		Icone:  req.Icone,
		Ativo:  true,
	}
	if categoria.Cor == "" {
		categoria.Cor = "#6c757d"
	}
	if categoria.Icone == "" {
		categoria.Icone = "bi-tag"
	}
	if err := database.DB.Create(&categoria).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao criar a categoria"))
		return
	}
	SuccessWithMessage(c, "categoria criada", categoria)
}

// buscarCategoriaDoUsuario carrega uma categoria propria do usuario;
// categorias padrao do sistema nao sao editaveis.
func buscarCategoriaDoUsuario(c *gin.Context, userID uint) (*models.Categoria, bool) {
	var categoria models.Categoria
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&categoria).Error; err != nil {
		NotFound(c, "categoria não encontrada")
		return nil, false
	}
	return &categoria, true
}

// Update atualiza uma categoria do usuario
// @Summary Atualizar categoria
// @Description Atualiza uma categoria própria do usuário
// @Tags Categorias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da categoria"
// @Param request body CategoriaRequest true "Dados da categoria"
// @Success 200 {object} Response{data=models.Categoria} "Categoria atualizada"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 404 {object} Response "Categoria não encontrada"
// @Router /api/v1/categorias/{id} [put]
func (h *CategoriaHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	categoria, ok := buscarCategoriaDoUsuario(c, userID)
	if !ok {
		return
	}

	var req CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}

	var qtd int64
	database.DB.Model(&models.Categoria{}).
		Where("nome = ? AND tipo = ? AND (user_id IS NULL OR user_id = ?) AND id <> ?",
			req.Nome, req.Tipo, userID, categoria.ID).
		Count(&qtd)
	if qtd > 0 {
		BadRequest(c, "já existe uma categoria com esse nome e tipo")
		return
	}

	categoria.Nome = req.Nome
	categoria.Tipo = req.Tipo
	if req.Cor != "" {
		categoria.Cor = req.Cor
	}
	if req.Icone != "" {
		categoria.Icone = req.Icone
	}
	if err := database.DB.Save(categoria).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao atualizar a categoria"))
		return
	}
	SuccessWithMessage(c, "categoria atualizada", categoria)
}

// Activate reativa uma categoria
// @Summary Ativar categoria
// @Description Marca a categoria do usuário como ativa
// @Tags Categorias
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da categoria"
// @Success 200 {object} Response "Categoria ativada"
// @Failure 404 {object} Response "Categoria não encontrada"
// @Router /api/v1/categorias/{id}/activate [post]
func (h *CategoriaHandler) Activate(c *gin.Context) {
	h.mudarStatus(c, true, "categoria ativada")
}

// Deactivate desativa uma categoria
// @Summary Desativar categoria
// @Description Desativa a categoria sem removê-la dos lançamentos históricos
// @Tags Categorias
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da categoria"
// @Success 200 {object} Response "Categoria desativada"
// @Failure 404 {object} Response "Categoria não encontrada"
// @Router /api/v1/categorias/{id}/deactivate [post]
func (h *CategoriaHandler) Deactivate(c *gin.Context) {
	h.mudarStatus(c, false, "categoria desativada")
}

func (h *CategoriaHandler) mudarStatus(c *gin.Context, ativo bool, msg string) {
	userID := middleware.GetCurrentUserID(c)
	categoria, ok := buscarCategoriaDoUsuario(c, userID)
	if !ok {
		return
	}
	if err := database.DB.Model(categoria).Update("ativo", ativo).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao alterar a categoria"))
		return
	}
	SuccessWithMessage(c, msg, nil)
}
