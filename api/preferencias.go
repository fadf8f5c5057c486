package api

import (
	"contabil/config"
	"contabil/database"
	"contabil/middleware"
	"contabil/models"

	"github.com/gin-gonic/gin"
)

// PreferenciasHandler cuida das preferencias do usuario.
type PreferenciasHandler struct{}

// NewPreferenciasHandler cria o handler de preferencias.
func NewPreferenciasHandler() *PreferenciasHandler {
	return &PreferenciasHandler{}
}

// PreferenciasRequest e o corpo de atualizacao das preferencias.
type PreferenciasRequest struct {
	TemaEscuro               *bool `json:"tema_escuro"`
	ItensPorPagina           *int  `json:"itens_por_pagina" binding:"omitempty,min=5,max=100"`
	AlertasAtivos            *bool `json:"alertas_ativos"`
	AlertaPercentualDespesas *int  `json:"alerta_percentual_despesas" binding:"omitempty,min=1,max=100"`
}

// Get devolve as preferencias
// @Summary Preferências do usuário
// @Description Devolve as preferências, criando o registro padrão no primeiro acesso
// @Tags Preferências
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.PreferenciaUsuario} "Preferências"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/preferencias [get]
func (h *PreferenciasHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	prefs, err := models.GetOrCreatePreferencias(database.DB, userID)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao carregar as preferências"))
		return
	}
	Success(c, prefs)
}

// Update atualiza as preferencias
// @Summary Atualizar preferências
// @Description Atualiza as preferências enviadas; campos omitidos não mudam
// @Tags Preferências
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PreferenciasRequest true "Preferências"
// @Success 200 {object} Response{data=models.PreferenciaUsuario} "Preferências atualizadas"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/preferencias [put]
func (h *PreferenciasHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req PreferenciasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}

	prefs, err := models.GetOrCreatePreferencias(database.DB, userID)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao carregar as preferências"))
		return
	}

	if req.TemaEscuro != nil {
		prefs.TemaEscuro = *req.TemaEscuro
	}
	if req.ItensPorPagina != nil {
		prefs.ItensPorPagina = *req.ItensPorPagina
	}
	if req.AlertasAtivos != nil {
		prefs.AlertasAtivos = *req.AlertasAtivos
	}
	if req.AlertaPercentualDespesas != nil {
		prefs.AlertaPercentualDespesas = *req.AlertaPercentualDespesas
	}

	if err := database.DB.Save(prefs).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao salvar as preferências"))
		return
	}
	SuccessWithMessage(c, "preferências atualizadas", prefs)
}

// ToggleTema alterna o tema escuro
// @Summary Alternar tema
// @Description Inverte a preferência de tema escuro
// @Tags Preferências
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.PreferenciaUsuario} "Tema alternado"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/preferencias/tema [post]
func (h *PreferenciasHandler) ToggleTema(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	prefs, err := models.GetOrCreatePreferencias(database.DB, userID)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao carregar as preferências"))
		return
	}

	prefs.TemaEscuro = !prefs.TemaEscuro
	if err := database.DB.Save(prefs).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao salvar as preferências"))
		return
	}
	SuccessWithMessage(c, "tema alternado", prefs)
}
