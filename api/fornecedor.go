package api

import (
	"contabil/config"
	"contabil/database"
	"contabil/middleware"
	"contabil/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FornecedorHandler cuida do cadastro de clientes e fornecedores.
type FornecedorHandler struct{}

// NewFornecedorHandler cria o handler de fornecedores.
func NewFornecedorHandler() *FornecedorHandler {
	return &FornecedorHandler{}
}

// FornecedorRequest e o corpo de criacao/edicao de fornecedor.
type FornecedorRequest struct {
	Tipo         string `json:"tipo" binding:"required,oneof=PF PJ" example:"PJ"`
	Nome         string `json:"nome" binding:"required,max=255" example:"Distribuidora Alfa LTDA"`
	NomeFantasia string `json:"nome_fantasia" binding:"omitempty,max=255"`
	CpfCnpj      string `json:"cpf_cnpj" binding:"omitempty,max=18" example:"12.345.678/0001-90"`
	Telefone     string `json:"telefone" binding:"omitempty,max=20"`
	Email        string `json:"email" binding:"omitempty,email,max=100"`
	Logradouro   string `json:"logradouro" binding:"omitempty,max=255"`
	Numero       string `json:"numero" binding:"omitempty,max=30"`
	Complemento  string `json:"complemento" binding:"omitempty,max=100"`
	Bairro       string `json:"bairro" binding:"omitempty,max=100"`
	Municipio    string `json:"municipio" binding:"omitempty,max=100"`
	UF           string `json:"uf" binding:"omitempty,len=2"`
	CEP          string `json:"cep" binding:"omitempty,max=9"`
	Observacoes  string `json:"observacoes"`
}

func (req *FornecedorRequest) aplicar(f *models.Fornecedor) {
	f.Tipo = req.Tipo
	f.Nome = req.Nome
	f.NomeFantasia = req.NomeFantasia
	f.CpfCnpj = req.CpfCnpj
	f.Telefone = req.Telefone
	f.Email = req.Email
	f.Logradouro = req.Logradouro
	f.Numero = req.Numero
	f.Complemento = req.Complemento
	f.Bairro = req.Bairro
	f.Municipio = req.Municipio
	f.UF = req.UF
	f.CEP = req.CEP
	f.Observacoes = req.Observacoes
}

// List lista os fornecedores
// @Summary Listar fornecedores
// @Description Lista os fornecedores do usuário com filtros de tipo, status e busca
// @Tags Fornecedores
// @Produce json
// @Security BearerAuth
// @Param tipo query string false "PF ou PJ"
// @Param ativo query bool false "Filtro por status"
// @Param busca query string false "Busca por nome, fantasia ou CPF/CNPJ"
// @Success 200 {object} Response{data=[]models.Fornecedor} "Lista de fornecedores"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/fornecedores [get]
func (h *FornecedorHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	query := database.DB.Where("user_id = ?", userID)
	if tipo := c.Query("tipo"); tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}
	if ativo := c.Query("ativo"); ativo != "" {
		query = query.Where("ativo = ?", ativo == "true")
	}
	if busca := c.Query("busca"); busca != "" {
		like := "%" + busca + "%"
		query = query.Where("nome LIKE ? OR nome_fantasia LIKE ? OR cpf_cnpj LIKE ?", like, like, like)
	}

	var fornecedores []models.Fornecedor
	if err := query.Order("nome").Find(&fornecedores).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao listar os fornecedores"))
		return
	}
	Success(c, fornecedores)
}

// Create cria um fornecedor
// @Summary Criar fornecedor
// @Description Cadastra um novo fornecedor ou cliente
// @Tags Fornecedores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FornecedorRequest true "Dados do fornecedor"
// @Success 200 {object} Response{data=models.Fornecedor} "Fornecedor criado"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/fornecedores [post]
func (h *FornecedorHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req FornecedorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}

	fornecedor := models.Fornecedor{UserID: userID, Ativo: true}
	req.aplicar(&fornecedor)
	if err := database.DB.Create(&fornecedor).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao criar o fornecedor"))
		return
	}
	SuccessWithMessage(c, "fornecedor criado", fornecedor)
}

// Get detalha um fornecedor com os totais vinculados
// @Summary Detalhar fornecedor
// @Description Devolve o fornecedor e os totais de receitas e despesas vinculadas
// @Tags Fornecedores
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do fornecedor"
// @Success 200 {object} Response "Fornecedor com totais"
// @Failure 404 {object} Response "Fornecedor não encontrado"
// @Router /api/v1/fornecedores/{id} [get]
func (h *FornecedorHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var fornecedor models.Fornecedor
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&fornecedor).Error; err != nil {
		NotFound(c, "fornecedor não encontrado")
		return
	}

	somar := func(tabela string) (decimal.Decimal, error) {
		var linha struct{ Total decimal.Decimal }
		err := database.DB.Table(tabela).
			Select("COALESCE(SUM(valor), 0) AS total").
			Where("fornecedor_id = ? AND user_id = ?", fornecedor.ID, userID).
			Scan(&linha).Error
		return linha.Total, err
	}
	totalReceitas, err := somar("receitas")
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao calcular os totais"))
		return
	}
	totalDespesas, err := somar("despesas")
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao calcular os totais"))
		return
	}

	Success(c, gin.H{
		"fornecedor":     fornecedor,
		"total_receitas": totalReceitas,
		"total_despesas": totalDespesas,
	})
}

// Update atualiza um fornecedor
// @Summary Atualizar fornecedor
// @Description Atualiza os dados de um fornecedor do usuário
// @Tags Fornecedores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do fornecedor"
// @Param request body FornecedorRequest true "Dados do fornecedor"
// @Success 200 {object} Response{data=models.Fornecedor} "Fornecedor atualizado"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 404 {object} Response "Fornecedor não encontrado"
// @Router /api/v1/fornecedores/{id} [put]
func (h *FornecedorHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var fornecedor models.Fornecedor
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&fornecedor).Error; err != nil {
		NotFound(c, "fornecedor não encontrado")
		return
	}

	var req FornecedorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}
	req.aplicar(&fornecedor)
	if err := database.DB.Save(&fornecedor).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao atualizar o fornecedor"))
		return
	}
	SuccessWithMessage(c, "fornecedor atualizado", fornecedor)
}

// Delete desativa um fornecedor
// @Summary Excluir fornecedor
// @Description Desativa o fornecedor; os lançamentos históricos permanecem vinculados
// @Tags Fornecedores
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do fornecedor"
// @Success 200 {object} Response "Fornecedor desativado"
// @Failure 404 {object} Response "Fornecedor não encontrado"
// @Router /api/v1/fornecedores/{id} [delete]
func (h *FornecedorHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var fornecedor models.Fornecedor
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&fornecedor).Error; err != nil {
		NotFound(c, "fornecedor não encontrado")
		return
	}
	if err := database.DB.Model(&fornecedor).Update("ativo", false).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao desativar o fornecedor"))
		return
	}
	SuccessWithMessage(c, "fornecedor desativado", nil)
}
