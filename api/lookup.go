package api

import (
	"errors"
	"log"

	"contabil/config"
	"contabil/service"

	"github.com/gin-gonic/gin"
)

// LookupHandler consulta dados cadastrais em servicos externos.
type LookupHandler struct {
	cnpj *service.CNPJClient
}

// NewLookupHandler cria o handler de consultas externas.
func NewLookupHandler(cfg *config.Config) *LookupHandler {
	return &LookupHandler{cnpj: service.NewCNPJClient(cfg)}
}

// CNPJ consulta um CNPJ na BrasilAPI
// @Summary Consultar CNPJ
// @Description Busca os dados cadastrais do CNPJ no registro nacional (uma única tentativa)
// @Tags Consultas
// @Produce json
// @Security BearerAuth
// @Param cnpj path string true "CNPJ, com ou sem máscara"
// @Success 200 {object} Response{data=service.DadosCNPJ} "Dados do CNPJ"
// @Failure 400 {object} Response "CNPJ malformado"
// @Failure 502 {object} Response "Falha na consulta externa"
// @Router /api/v1/lookup/cnpj/{cnpj} [get]
func (h *LookupHandler) CNPJ(c *gin.Context) {
	dados, err := h.cnpj.Consultar(c.Param("cnpj"))
	if err != nil {
		if errors.Is(err, service.ErrConsultaCNPJ) {
			log.Printf("consulta de CNPJ falhou para %q", c.Param("cnpj"))
			BadGateway(c, err.Error())
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, dados)
}
