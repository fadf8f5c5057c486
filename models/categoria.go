package models

import "time"

// Tipos de categoria: receita ou despesa.
const (
	TipoReceita = "R"
	TipoDespesa = "D"
)

// Categoria classifica lancamentos. UserID nulo indica categoria padrao do
// sistema, compartilhada entre todos os usuarios. Categorias nunca sao
// removidas fisicamente pela API; apenas desativadas, para que lancamentos
// historicos continuem legiveis.
type Categoria struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"user_id" gorm:"index;uniqueIndex:idx_categoria_nome_tipo_usuario"`
	Nome      string    `json:"nome" gorm:"size:100;not null;uniqueIndex:idx_categoria_nome_tipo_usuario"`
	Tipo      string    `json:"tipo" gorm:"size:1;not null;default:D;uniqueIndex:idx_categoria_nome_tipo_usuario"`
	Cor       string    `json:"cor" gorm:"size:7;default:#6c757d"`
	Icone     string    `json:"icone" gorm:"size:50;default:bi-tag"`
	Ativo     bool      `json:"ativo" gorm:"default:true"`
	IsPadrao  bool      `json:"is_padrao" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName define o nome da tabela.
func (Categoria) TableName() string {
	return "categorias"
}

// CategoriasPadrao devolve o conjunto inicial de categorias do sistema,
// criado na primeira inicializacao do banco.
func CategoriasPadrao() []Categoria {
	return []Categoria{
		{Nome: "Vendas", Tipo: TipoReceita, Cor: "#198754", Icone: "bi-cart-check", Ativo: true, IsPadrao: true},
		{Nome: "Servicos", Tipo: TipoReceita, Cor: "#0d6efd", Icone: "bi-briefcase", Ativo: true, IsPadrao: true},
		{Nome: "Outras Receitas", Tipo: TipoReceita, Cor: "#6c757d", Icone: "bi-plus-circle", Ativo: true, IsPadrao: true},
		{Nome: "Aluguel", Tipo: TipoDespesa, Cor: "#dc3545", Icone: "bi-house", Ativo: true, IsPadrao: true},
		{Nome: "Fornecedores", Tipo: TipoDespesa, Cor: "#fd7e14", Icone: "bi-truck", Ativo: true, IsPadrao: true},
		{Nome: "Impostos", Tipo: TipoDespesa, Cor: "#6f42c1", Icone: "bi-bank", Ativo: true, IsPadrao: true},
		{Nome: "Transporte", Tipo: TipoDespesa, Cor: "#0dcaf0", Icone: "bi-bus-front", Ativo: true, IsPadrao: true},
		{Nome: "Outras Despesas", Tipo: TipoDespesa, Cor: "#6c757d", Icone: "bi-dash-circle", Ativo: true, IsPadrao: true},
	}
}
