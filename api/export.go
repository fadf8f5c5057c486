package api

import (
	"fmt"
	"net/http"
	"time"

	"contabil/config"
	"contabil/database"
	"contabil/middleware"
	"contabil/models"
	"contabil/report"

	"github.com/gin-gonic/gin"
)

// ExportHandler gera os arquivos de exportacao (CSV, Excel e PDF).
type ExportHandler struct{}

// NewExportHandler cria o handler de exportacao.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

func anexo(c *gin.Context, contentType, filename string) {
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
}

// CSV exporta os lancamentos em CSV
// @Summary Exportar CSV
// @Description Exporta os lançamentos filtrados em CSV separado por ponto e vírgula
// @Tags Exportação
// @Produce text/csv
// @Security BearerAuth
// @Param data_inicio query string false "Data inicial (2024-01-01)"
// @Param data_fim query string false "Data final (2024-12-31)"
// @Param tipo query string false "R ou D"
// @Param categoria query int false "Filtro por categoria"
// @Param fornecedor query int false "Filtro por fornecedor"
// @Success 200 {string} string "Arquivo CSV"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	filtro := filtroDeQuery(c, userID)

	lancamentos, err := report.Lancamentos(database.DB, filtro)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao exportar o CSV"))
		return
	}

	anexo(c, "text/csv; charset=utf-8",
		fmt.Sprintf("relatorio_contabil_%s.csv", time.Now().Format("20060102_150405")))
	if err := report.GerarCSV(c.Writer, lancamentos); err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao exportar o CSV"))
	}
}

// Excel exporta os lancamentos em planilha
// @Summary Exportar Excel
// @Description Exporta os lançamentos filtrados em planilha formatada com resumo
// @Tags Exportação
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param data_inicio query string false "Data inicial (2024-01-01)"
// @Param data_fim query string false "Data final (2024-12-31)"
// @Param tipo query string false "R ou D"
// @Param categoria query int false "Filtro por categoria"
// @Param fornecedor query int false "Filtro por fornecedor"
// @Success 200 {string} string "Arquivo Excel"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) Excel(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	filtro := filtroDeQuery(c, userID)

	lancamentos, err := report.Lancamentos(database.DB, filtro)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao exportar a planilha"))
		return
	}
	resumo, err := report.Resumir(database.DB, filtro)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao exportar a planilha"))
		return
	}

	f, err := report.GerarExcel(lancamentos, resumo)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao exportar a planilha"))
		return
	}
	defer f.Close()

	anexo(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		fmt.Sprintf("lancamentos_%s.xlsx", time.Now().Format("20060102_150405")))
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao exportar a planilha"))
	}
}

// PDF exporta o relatorio paginado
// @Summary Exportar PDF
// @Description Exporta o relatório financeiro paginado em paisagem
// @Tags Exportação
// @Produce application/pdf
// @Security BearerAuth
// @Param data_inicio query string false "Data inicial (2024-01-01)"
// @Param data_fim query string false "Data final (2024-12-31)"
// @Param tipo query string false "R ou D"
// @Param categoria query int false "Filtro por categoria"
// @Param fornecedor query int false "Filtro por fornecedor"
// @Success 200 {string} string "Arquivo PDF"
// @Failure 401 {object} Response "Não autorizado"
// @Router /api/v1/export/pdf [get]
func (h *ExportHandler) PDF(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	filtro := filtroDeQuery(c, userID)

	lancamentos, err := report.Lancamentos(database.DB, filtro)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao exportar o PDF"))
		return
	}
	resumo, err := report.Resumir(database.DB, filtro)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao exportar o PDF"))
		return
	}

	perfil, err := models.GetOrCreatePerfil(database.DB, userID)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao exportar o PDF"))
		return
	}
	var contas []models.ContaBancaria
	if err := database.DB.Where("perfil_empresa_id = ?", perfil.ID).
		Order("preferencial DESC, nome_banco").
		Find(&contas).Error; err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao exportar o PDF"))
		return
	}

	anexo(c, "application/pdf",
		fmt.Sprintf("relatorio_%s.pdf", time.Now().Format("20060102_150405")))
	c.Status(http.StatusOK)

	dados := report.DadosPDF{
		Lancamentos: lancamentos,
		Resumo:      resumo,
		Perfil:      perfil,
		Contas:      contas,
		DataInicio:  filtro.DataInicio,
		DataFim:     filtro.DataFim,
		GeradoEm:    time.Now(),
	}
	if err := report.GerarPDF(c.Writer, dados); err != nil {
		InternalError(c, config.SafeErrorMessage(err, "falha ao exportar o PDF"))
	}
}
