package api

import (
	"strconv"
	"time"

	"contabil/config"
	"contabil/database"
	"contabil/middleware"
	"contabil/models"
	"contabil/report"

	"github.com/gin-gonic/gin"
)

// RelatorioHandler cuida dos relatorios agregados e do dashboard.
type RelatorioHandler struct{}

// NewRelatorioHandler cria o handler de relatorios.
func NewRelatorioHandler() *RelatorioHandler {
	return &RelatorioHandler{}
}

// filtroDeQuery monta o filtro comum dos relatorios e exportacoes.
// Datas malformadas sao tratadas como filtro ausente, a requisicao
// nunca falha por causa delas.
func filtroDeQuery(c *gin.Context, userID uint) report.Filtro {
	filtro := report.Filtro{UserID: userID}
	if t, err := parseData(c.Query("data_inicio")); err == nil {
		filtro.DataInicio = &t
	}
	if t, err := parseData(c.Query("data_fim")); err == nil {
		filtro.DataFim = &t
	}
	if tipo := c.Query("tipo"); tipo == models.TipoReceita || tipo == models.TipoDespesa {
		filtro.Tipo = tipo
	}
	if id, err := strconv.ParseUint(c.Query("categoria"), 10, 64); err == nil {
		cid := uint(id)
		filtro.CategoriaID = &cid
	}
	if id, err := strconv.ParseUint(c.Query("fornecedor"), 10, 64); err == nil {
		fid := uint(id)
		filtro.FornecedorID = &fid
	}
	return filtro
}

// Summary resume um periodo arbitrario
// @Summary Resumo do período
// @Description Totais de receitas, despesas e balanço do período filtrado
// @Tags Relatórios
// @Produce json
// @Security BearerAuth
// @Param data_inicio query string false "Data inicial (2024-01-01)"
// @Param data_fim query string false "Data final (2024-12-31)"
// @Param tipo query string false "R ou D"
// @Param categoria query int false "Filtro por categoria"
// @Param fornecedor query int false "Filtro por fornecedor"
// @Success 200 {object} Response "Resumo"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/relatorios/resumo [get]
func (h *RelatorioHandler) Summary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	filtro := filtroDeQuery(c, userID)

	resumo, err := report.Resumir(database.DB, filtro)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao calcular o resumo"))
		return
	}
	Success(c, resumo)
}

// Monthly resume um mes especifico
// @Summary Relatório mensal
// @Description Totais e quebra por categoria de um mês
// @Tags Relatórios
// @Produce json
// @Security BearerAuth
// @Param mes query int true "Mês (1-12)"
// @Param ano query int true "Ano"
// @Success 200 {object} Response "Relatório do mês"
// @Failure 400 {object} Response "Mês ou ano inválido"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/relatorios/mensal [get]
func (h *RelatorioHandler) Monthly(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	mes, errMes := strconv.Atoi(c.Query("mes"))
	ano, errAno := strconv.Atoi(c.Query("ano"))
	if errMes != nil || errAno != nil || mes < 1 || mes > 12 || ano < 2000 || ano > 2100 {
		BadRequest(c, "informe mes (1-12) e ano válidos")
		return
	}

	inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 1, -1)
	filtro := report.Filtro{UserID: userID, DataInicio: &inicio, DataFim: &fim}

	resumo, err := report.Resumir(database.DB, filtro)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao calcular o relatório"))
		return
	}
	receitasCat, err := report.PorCategoria(database.DB, filtro, models.TipoReceita)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao calcular o relatório"))
		return
	}
	despesasCat, err := report.PorCategoria(database.DB, filtro, models.TipoDespesa)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao calcular o relatório"))
		return
	}

	Success(c, gin.H{
		"rotulo":                 report.RotuloMes(ano, mes),
		"resumo":                 resumo,
		"receitas_por_categoria": receitasCat,
		"despesas_por_categoria": despesasCat,
	})
}

// Annual devolve a serie dos 12 meses de um ano
// @Summary Relatório anual
// @Description Série mensal de janeiro a dezembro do ano informado
// @Tags Relatórios
// @Produce json
// @Security BearerAuth
// @Param ano query int true "Ano"
// @Success 200 {object} Response "Série anual"
// @Failure 400 {object} Response "Ano inválido"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/relatorios/anual [get]
func (h *RelatorioHandler) Annual(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	ano, err := strconv.Atoi(c.Query("ano"))
	if err != nil || ano < 2000 || ano > 2100 {
		BadRequest(c, "informe um ano válido")
		return
	}

	// Ancorada em dezembro, a serie de 12 meses cobre o ano inteiro.
	ref := time.Date(ano, time.December, 15, 0, 0, 0, 0, time.UTC)
	serie, err := report.SerieMensal(database.DB, userID, ref, 12)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao calcular a série"))
		return
	}

	inicio := time.Date(ano, time.January, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(ano, time.December, 31, 0, 0, 0, 0, time.UTC)
	resumo, err := report.Resumir(database.DB, report.Filtro{UserID: userID, DataInicio: &inicio, DataFim: &fim})
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao calcular a série"))
		return
	}

	Success(c, gin.H{"ano": ano, "serie": serie, "resumo": resumo})
}

// Cashflow lista o fluxo de caixa de um intervalo obrigatorio
// @Summary Fluxo de caixa
// @Description Lançamentos e totais do intervalo; data inicial e final são obrigatórias
// @Tags Relatórios
// @Produce json
// @Security BearerAuth
// @Param data_inicio query string true "Data inicial (2024-01-01)"
// @Param data_fim query string true "Data final (2024-12-31)"
// @Success 200 {object} Response "Fluxo de caixa"
// @Failure 400 {object} Response "Intervalo obrigatório ausente ou inválido"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/relatorios/fluxo-caixa [get]
func (h *RelatorioHandler) Cashflow(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	inicio, errInicio := parseData(c.Query("data_inicio"))
	fim, errFim := parseData(c.Query("data_fim"))
	if errInicio != nil || errFim != nil {
		BadRequest(c, "informe data_inicio e data_fim no formato 2006-01-02")
		return
	}

	filtro := report.Filtro{UserID: userID, DataInicio: &inicio, DataFim: &fim}
	resumo, err := report.Resumir(database.DB, filtro)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao calcular o fluxo de caixa"))
		return
	}
	lancamentos, err := report.Lancamentos(database.DB, filtro)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao calcular o fluxo de caixa"))
		return
	}

	Success(c, gin.H{"resumo": resumo, "lancamentos": lancamentos})
}

// Dashboard monta o painel principal
// @Summary Dashboard
// @Description Painel com os agregados do mês, do ano, série de 6 meses, top despesas e alertas
// @Tags Relatórios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=report.Dashboard} "Dashboard"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/relatorios/dashboard [get]
func (h *RelatorioHandler) Dashboard(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	dash, err := report.MontarDashboard(database.DB, userID, time.Now())
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao montar o dashboard"))
		return
	}
	Success(c, dash)
}
