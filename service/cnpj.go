package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"contabil/config"
)

// ErrConsultaCNPJ e o erro generico devolvido ao cliente quando a consulta
// externa falha, qualquer que seja o motivo real (rede, HTTP, payload).
var ErrConsultaCNPJ = errors.New("não foi possível consultar o CNPJ no momento")

// DadosCNPJ e o subconjunto da resposta da BrasilAPI que a aplicacao usa
// para preencher o cadastro.
type DadosCNPJ struct {
	Cnpj              string `json:"cnpj"`
	RazaoSocial       string `json:"razao_social"`
	NomeFantasia      string `json:"nome_fantasia"`
	CnaeFiscalDescr   string `json:"cnae_fiscal_descricao"`
	Logradouro        string `json:"logradouro"`
	Numero            string `json:"numero"`
	Complemento       string `json:"complemento"`
	Bairro            string `json:"bairro"`
	Municipio         string `json:"municipio"`
	UF                string `json:"uf"`
	CEP               string `json:"cep"`
	DDDTelefone1      string `json:"ddd_telefone_1"`
	SituacaoCadastral string `json:"descricao_situacao_cadastral"`
}

// CNPJClient consulta o cadastro nacional na BrasilAPI.
type CNPJClient struct {
	baseURL string
	client  *http.Client
}

// NewCNPJClient monta o cliente com a URL e o timeout da configuracao.
func NewCNPJClient(cfg *config.Config) *CNPJClient {
	return &CNPJClient{
		baseURL: strings.TrimRight(cfg.Lookup.BaseURL, "/"),
		client: &http.Client{
			Timeout: time.Duration(cfg.Lookup.TimeoutSeconds) * time.Second,
		},
	}
}

// NormalizarCNPJ descarta tudo que nao for digito.
func NormalizarCNPJ(cnpj string) string {
	var b strings.Builder
	for _, r := range cnpj {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Consultar busca os dados cadastrais do CNPJ. Uma unica tentativa, sem
// retry: falha de rede ou resposta fora do esperado viram o mesmo erro
// generico para o cliente.
func (c *CNPJClient) Consultar(cnpj string) (*DadosCNPJ, error) {
	digitos := NormalizarCNPJ(cnpj)
	if len(digitos) != 14 {
		return nil, errors.New("CNPJ deve ter 14 dígitos")
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, digitos)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, ErrConsultaCNPJ
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrConsultaCNPJ
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrConsultaCNPJ
	}

	var dados DadosCNPJ
	if err := json.Unmarshal(body, &dados); err != nil {
		return nil, ErrConsultaCNPJ
	}
	return &dados, nil
}
