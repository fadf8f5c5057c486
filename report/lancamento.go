package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lancamento e uma linha unificada de receita ou despesa, ja com os nomes
// de categoria e fornecedor resolvidos. Campos de categoria/fornecedor
// ficam vazios quando o vinculo nao existe; cada renderizador aplica o
// seu proprio placeholder.
type Lancamento struct {
	Tipo         string          `json:"tipo"` // "R" ou "D"
	Data         time.Time       `json:"data"`
	Descricao    string          `json:"descricao"`
	Valor        decimal.Decimal `json:"valor"`
	Categoria    string          `json:"categoria"`
	Fornecedor   string          `json:"fornecedor"`
	CpfCnpj      string          `json:"cpf_cnpj"`
	DataCadastro time.Time       `json:"-"`
}
