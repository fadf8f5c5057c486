package api

import (
	"errors"
	"strconv"

	"contabil/config"
	"contabil/database"
	"contabil/middleware"
	"contabil/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EmpresaHandler cuida do perfil da empresa, das contas bancarias e das
// declaracoes anuais.
type EmpresaHandler struct{}

// NewEmpresaHandler cria o handler da empresa.
func NewEmpresaHandler() *EmpresaHandler {
	return &EmpresaHandler{}
}

// PerfilRequest e o corpo de atualizacao do perfil da empresa.
type PerfilRequest struct {
	Cnpj          string `json:"cnpj" binding:"omitempty,max=18"`
	RazaoSocial   string `json:"razao_social" binding:"omitempty,max=255"`
	NomeFantasia  string `json:"nome_fantasia" binding:"omitempty,max=255"`
	RamoAtividade string `json:"ramo_atividade" binding:"omitempty,max=255"`
	Logradouro    string `json:"logradouro" binding:"omitempty,max=255"`
	Numero        string `json:"numero" binding:"omitempty,max=30"`
	Complemento   string `json:"complemento" binding:"omitempty,max=100"`
	Bairro        string `json:"bairro" binding:"omitempty,max=100"`
	Municipio     string `json:"municipio" binding:"omitempty,max=100"`
	UF            string `json:"uf" binding:"omitempty,len=2"`
	CEP           string `json:"cep" binding:"omitempty,max=9"`
}

// ContaRequest e o corpo de criacao/edicao de conta bancaria.
type ContaRequest struct {
	NomeBanco     string `json:"nome_banco" binding:"required,max=100" example:"Banco do Brasil"`
	CodigoBanco   string `json:"codigo_banco" binding:"omitempty,max=10" example:"001"`
	Agencia       string `json:"agencia" binding:"omitempty,max=10" example:"1234"`
	ContaCorrente string `json:"conta_corrente" binding:"omitempty,max=20" example:"56789-0"`
	Preferencial  bool   `json:"preferencial"`
}

// GetPerfil devolve o perfil da empresa
// @Summary Perfil da empresa
// @Description Devolve o perfil da empresa, criando um registro vazio no primeiro acesso
// @Tags Empresa
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.PerfilEmpresa} "Perfil"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/empresa [get]
func (h *EmpresaHandler) GetPerfil(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	perfil, err := models.GetOrCreatePerfil(database.DB, userID)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao carregar o perfil"))
		return
	}
	if err := database.DB.Preload("Contas").First(perfil, perfil.ID).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao carregar o perfil"))
		return
	}
	Success(c, perfil)
}

// UpdatePerfil atualiza o perfil da empresa
// @Summary Atualizar perfil da empresa
// @Description Atualiza os dados cadastrais da empresa
// @Tags Empresa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PerfilRequest true "Dados da empresa"
// @Success 200 {object} Response{data=models.PerfilEmpresa} "Perfil atualizado"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/empresa [put]
func (h *EmpresaHandler) UpdatePerfil(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req PerfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}

	perfil, err := models.GetOrCreatePerfil(database.DB, userID)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao carregar o perfil"))
		return
	}

	perfil.Cnpj = req.Cnpj
	perfil.RazaoSocial = req.RazaoSocial
	perfil.NomeFantasia = req.NomeFantasia
	perfil.RamoAtividade = req.RamoAtividade
	perfil.Logradouro = req.Logradouro
	perfil.Numero = req.Numero
	perfil.Complemento = req.Complemento
	perfil.Bairro = req.Bairro
	perfil.Municipio = req.Municipio
	perfil.UF = req.UF
	perfil.CEP = req.CEP

	if err := database.DB.Save(perfil).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao atualizar o perfil"))
		return
	}
	SuccessWithMessage(c, "perfil atualizado", perfil)
}

// ListContas lista as contas bancarias
// @Summary Listar contas bancárias
// @Description Lista as contas bancárias da empresa, preferencial primeiro
// @Tags Empresa
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.ContaBancaria} "Contas"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/empresa/contas [get]
func (h *EmpresaHandler) ListContas(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	perfil, err := models.GetOrCreatePerfil(database.DB, userID)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao carregar o perfil"))
		return
	}

	var contas []models.ContaBancaria
	if err := database.DB.Where("perfil_empresa_id = ?", perfil.ID).
		Order("preferencial DESC, nome_banco").
		Find(&contas).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao listar as contas"))
		return
	}
	Success(c, contas)
}

// CreateConta cria uma conta bancaria
// @Summary Criar conta bancária
// @Description Cadastra uma conta bancária da empresa
// @Tags Empresa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ContaRequest true "Dados da conta"
// @Success 200 {object} Response{data=models.ContaBancaria} "Conta criada"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/empresa/contas [post]
func (h *EmpresaHandler) CreateConta(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ContaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}

	perfil, err := models.GetOrCreatePerfil(database.DB, userID)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao carregar o perfil"))
		return
	}

	conta := models.ContaBancaria{
		PerfilEmpresaID: perfil.ID,
		NomeBanco:       req.NomeBanco,
		CodigoBanco:     req.CodigoBanco,
		Agencia:         req.Agencia,
		ContaCorrente:   req.ContaCorrente,
	}
	if err := database.DB.Create(&conta).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao criar a conta"))
		return
	}
	if req.Preferencial {
		if err := models.SetPreferencial(database.DB, perfil.ID, conta.ID); err != nil {
			InternalError(c, config.SafeErrorMessage(err, "falha ao marcar a conta preferencial"))
			return
		}
		conta.Preferencial = true
	}
	SuccessWithMessage(c, "conta criada", conta)
}

// buscarConta carrega uma conta do perfil do usuario.
func buscarConta(c *gin.Context, userID uint) (*models.PerfilEmpresa, *models.ContaBancaria, bool) {
	perfil, err := models.GetOrCreatePerfil(database.DB, userID)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao carregar o perfil"))
		return nil, nil, false
	}
	var conta models.ContaBancaria
	if err := database.DB.Where("id = ? AND perfil_empresa_id = ?", c.Param("id"), perfil.ID).
		First(&conta).Error; err != nil {
		NotFound(c, "conta não encontrada")
		return nil, nil, false
	}
	return perfil, &conta, true
}

// UpdateConta atualiza uma conta bancaria
// @Summary Atualizar conta bancária
// @Description Atualiza os dados de uma conta bancária da empresa
// @Tags Empresa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da conta"
// @Param request body ContaRequest true "Dados da conta"
// @Success 200 {object} Response{data=models.ContaBancaria} "Conta atualizada"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 404 {object} Response "Conta não encontrada"
// @Router /api/v1/empresa/contas/{id} [put]
func (h *EmpresaHandler) UpdateConta(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	perfil, conta, ok := buscarConta(c, userID)
	if !ok {
		return
	}

	var req ContaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}

	conta.NomeBanco = req.NomeBanco
	conta.CodigoBanco = req.CodigoBanco
	conta.Agencia = req.Agencia
	conta.ContaCorrente = req.ContaCorrente
	if err := database.DB.Save(conta).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao atualizar a conta"))
		return
	}
	if req.Preferencial && !conta.Preferencial {
		if err := models.SetPreferencial(database.DB, perfil.ID, conta.ID); err != nil {
			InternalError(c, config.SafeErrorMessage(err, "falha ao marcar a conta preferencial"))
			return
		}
		conta.Preferencial = true
	}
	SuccessWithMessage(c, "conta atualizada", conta)
}

// DeleteConta remove uma conta bancaria
// @Summary Excluir conta bancária
// @Description Remove uma conta bancária da empresa
// @Tags Empresa
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da conta"
// @Success 200 {object} Response "Conta excluída"
// @Failure 404 {object} Response "Conta não encontrada"
// @Router /api/v1/empresa/contas/{id} [delete]
func (h *EmpresaHandler) DeleteConta(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	_, conta, ok := buscarConta(c, userID)
	if !ok {
		return
	}
	if err := database.DB.Delete(conta).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao excluir a conta"))
		return
	}
	SuccessWithMessage(c, "conta excluída", nil)
}

// SetContaPreferencial marca a conta preferencial
// @Summary Marcar conta preferencial
// @Description Marca a conta como preferencial da empresa, desmarcando as demais
// @Tags Empresa
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da conta"
// @Success 200 {object} Response "Conta preferencial definida"
// @Failure 404 {object} Response "Conta não encontrada"
// @Router /api/v1/empresa/contas/{id}/preferencial [post]
func (h *EmpresaHandler) SetContaPreferencial(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	perfil, err := models.GetOrCreatePerfil(database.DB, userID)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao carregar o perfil"))
		return
	}

	contaID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "id inválido")
		return
	}

	if err := models.SetPreferencial(database.DB, perfil.ID, uint(contaID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "conta não encontrada")
			return
		}
		InternalError(c, config.SafeErrorMessage(err, "falha ao marcar a conta preferencial"))
		return
	}
	SuccessWithMessage(c, "conta preferencial definida", nil)
}

// ListDeclaracoes lista as declaracoes confirmadas
// @Summary Listar declarações anuais
// @Description Lista as confirmações de declaração anual da empresa
// @Tags Empresa
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.DeclaracaoAnual} "Declarações"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/empresa/declaracoes [get]
func (h *EmpresaHandler) ListDeclaracoes(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	perfil, err := models.GetOrCreatePerfil(database.DB, userID)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao carregar o perfil"))
		return
	}

	var declaracoes []models.DeclaracaoAnual
	if err := database.DB.Where("perfil_empresa_id = ?", perfil.ID).
		Order("ano DESC").
		Find(&declaracoes).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao listar as declarações"))
		return
	}
	Success(c, declaracoes)
}

// ConfirmarDeclaracao confirma a declaracao de um ano
// @Summary Confirmar declaração anual
// @Description Registra a confirmação da declaração do ano; confirmar de novo é no-op
// @Tags Empresa
// @Produce json
// @Security BearerAuth
// @Param ano path int true "Ano da declaração"
// @Success 200 {object} Response{data=models.DeclaracaoAnual} "Declaração confirmada"
// @Failure 400 {object} Response "Ano inválido"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/empresa/declaracoes/{ano} [post]
func (h *EmpresaHandler) ConfirmarDeclaracao(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	ano, err := strconv.Atoi(c.Param("ano"))
	if err != nil || ano < 2000 || ano > 2100 {
		BadRequest(c, "ano inválido")
		return
	}

	perfil, err := models.GetOrCreatePerfil(database.DB, userID)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao carregar o perfil"))
		return
	}

	decl, err := models.ConfirmarDeclaracao(database.DB, perfil.ID, ano)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao confirmar a declaração"))
		return
	}
	SuccessWithMessage(c, "declaração confirmada", decl)
}
