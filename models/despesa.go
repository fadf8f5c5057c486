package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Despesa representa uma saida de dinheiro. Assim como Receita, Valor e
// sempre positivo; nunca se armazena valor negativo.
type Despesa struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	UserID          uint            `json:"user_id" gorm:"index;not null"`
	Descricao       string          `json:"descricao" gorm:"size:255;not null"`
	Valor           decimal.Decimal `json:"valor" gorm:"type:decimal(10,2);not null"`
	Data            time.Time       `json:"data" gorm:"type:date;not null;index"`
	CategoriaID     *uint           `json:"categoria_id" gorm:"index"`
	FornecedorID    *uint           `json:"fornecedor_id" gorm:"index"`
	Comprovante     string          `json:"comprovante" gorm:"size:255"`
	Observacoes     string          `json:"observacoes" gorm:"type:text"`
	DataCadastro    time.Time       `json:"data_cadastro" gorm:"autoCreateTime"`
	DataAtualizacao time.Time       `json:"data_atualizacao" gorm:"autoUpdateTime"`

	Categoria  *Categoria  `json:"categoria,omitempty" gorm:"foreignKey:CategoriaID"`
	Fornecedor *Fornecedor `json:"fornecedor,omitempty" gorm:"foreignKey:FornecedorID"`
	User       User        `json:"-" gorm:"foreignKey:UserID"`
}

// TableName define o nome da tabela.
func (Despesa) TableName() string {
	return "despesas"
}
