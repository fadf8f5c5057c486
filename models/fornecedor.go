package models

import "time"

// Tipos de fornecedor: pessoa fisica ou juridica.
const (
	FornecedorPF = "PF"
	FornecedorPJ = "PJ"
)

// Fornecedor representa um cliente ou fornecedor vinculado a lancamentos.
// A exclusao pela aplicacao e sempre logica (Ativo=false); a referencia a
// partir de Receita/Despesa e anulavel, entao um delete fisico no banco
// apenas desvincularia os lancamentos, sem cascata.
type Fornecedor struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	Tipo            string    `json:"tipo" gorm:"size:2;not null;default:PJ"`
	Nome            string    `json:"nome" gorm:"size:255;not null;index"`
	NomeFantasia    string    `json:"nome_fantasia" gorm:"size:255"`
	CpfCnpj         string    `json:"cpf_cnpj" gorm:"size:18"`
	Telefone        string    `json:"telefone" gorm:"size:20"`
	Email           string    `json:"email" gorm:"size:100"`
	Logradouro      string    `json:"logradouro" gorm:"size:255"`
	Numero          string    `json:"numero" gorm:"size:30"`
	Complemento     string    `json:"complemento" gorm:"size:100"`
	Bairro          string    `json:"bairro" gorm:"size:100"`
	Municipio       string    `json:"municipio" gorm:"size:100"`
	UF              string    `json:"uf" gorm:"size:2"`
	CEP             string    `json:"cep" gorm:"size:9"`
	Observacoes     string    `json:"observacoes" gorm:"type:text"`
	Ativo           bool      `json:"ativo" gorm:"default:true"`
	DataCadastro    time.Time `json:"data_cadastro" gorm:"autoCreateTime"`
	DataAtualizacao time.Time `json:"data_atualizacao" gorm:"autoUpdateTime"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName define o nome da tabela.
func (Fornecedor) TableName() string {
	return "fornecedores"
}
