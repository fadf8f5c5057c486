package report

import (
	"fmt"
	"sort"
	"time"

	"contabil/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Filtro delimita o conjunto de lancamentos considerado pelas consultas
// de agregacao. Filtros opcionais ausentes apenas ampliam o escopo.
type Filtro struct {
	UserID       uint
	DataInicio   *time.Time
	DataFim      *time.Time
	CategoriaID  *uint
	FornecedorID *uint
	Tipo         string // "R", "D" ou vazio para ambos
}

// intervaloInvertido indica data inicial posterior a final; o resultado e
// um conjunto vazio, nunca um erro.
func (f Filtro) intervaloInvertido() bool {
	return f.DataInicio != nil && f.DataFim != nil && f.DataInicio.After(*f.DataFim)
}

// Resumo agrega os totais de um periodo.
type Resumo struct {
	TotalReceitas decimal.Decimal `json:"total_receitas"`
	TotalDespesas decimal.Decimal `json:"total_despesas"`
	Balanco       decimal.Decimal `json:"balanco"`
	QtdReceitas   int64           `json:"qtd_receitas"`
	QtdDespesas   int64           `json:"qtd_despesas"`
}

// ResumoCategoria e uma fatia da quebra por categoria.
type ResumoCategoria struct {
	CategoriaID *uint           `json:"categoria_id"`
	Nome        string          `json:"nome"`
	Tipo        string          `json:"tipo"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Quantidade  int64           `json:"quantidade"`
}

// PontoMensal e um mes da serie historica.
type PontoMensal struct {
	Rotulo   string          `json:"rotulo"`
	Ano      int             `json:"ano"`
	Mes      int             `json:"mes"`
	Receitas decimal.Decimal `json:"receitas"`
	Despesas decimal.Decimal `json:"despesas"`
}

var nomesMeses = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// RotuloMes devolve o rotulo curto pt-BR de um mes, no estilo "Jan/2024".
func RotuloMes(ano, mes int) string {
	return fmt.Sprintf("%s/%d", nomesMeses[mes-1], ano)
}

func aplicarFiltro(q *gorm.DB, f Filtro, tabela string) *gorm.DB {
	if f.DataInicio != nil {
		q = q.Where(tabela+".data >= ?", *f.DataInicio)
	}
	if f.DataFim != nil {
		q = q.Where(tabela+".data <= ?", *f.DataFim)
	}
	if f.CategoriaID != nil {
		q = q.Where(tabela+".categoria_id = ?", *f.CategoriaID)
	}
	if f.FornecedorID != nil {
		q = q.Where(tabela+".fornecedor_id = ?", *f.FornecedorID)
	}
	return q
}

func somarTabela(db *gorm.DB, tabela string, f Filtro) (decimal.Decimal, int64, error) {
	var linha struct {
		Total decimal.Decimal
		Qtd   int64
	}
	q := db.Table(tabela).
		Select("COALESCE(SUM(valor), 0) AS total, COUNT(*) AS qtd").
		Where(tabela+".user_id = ?", f.UserID)
	q = aplicarFiltro(q, f, tabela)
	if err := q.Scan(&linha).Error; err != nil {
		return decimal.Zero, 0, err
	}
	return linha.Total, linha.Qtd, nil
}

// Resumir calcula os totais de receitas e despesas do filtro. Conjunto
// vazio devolve agregados zerados.
func Resumir(db *gorm.DB, f Filtro) (Resumo, error) {
	r := Resumo{
		TotalReceitas: decimal.Zero,
		TotalDespesas: decimal.Zero,
	}
	if f.intervaloInvertido() {
		r.Balanco = decimal.Zero
		return r, nil
	}

	if f.Tipo != models.TipoDespesa {
		total, qtd, err := somarTabela(db, "receitas", f)
		if err != nil {
			return r, err
		}
		r.TotalReceitas = total
		r.QtdReceitas = qtd
	}
	if f.Tipo != models.TipoReceita {
		total, qtd, err := somarTabela(db, "despesas", f)
		if err != nil {
			return r, err
		}
		r.TotalDespesas = total
		r.QtdDespesas = qtd
	}
	r.Balanco = r.TotalReceitas.Sub(r.TotalDespesas)
	return r, nil
}

// PorCategoria quebra o total do filtro por categoria, em ordem
// decrescente de subtotal. Lancamentos sem categoria entram no balde
// sintetico "Sem Categoria".
func PorCategoria(db *gorm.DB, f Filtro, tipo string) ([]ResumoCategoria, error) {
	if f.intervaloInvertido() {
		return []ResumoCategoria{}, nil
	}

	tabela := "receitas"
	if tipo == models.TipoDespesa {
		tabela = "despesas"
	}

	q := db.Table(tabela).
		Select("categorias.id AS categoria_id, COALESCE(categorias.nome, 'Sem Categoria') AS nome, COALESCE(SUM("+tabela+".valor), 0) AS subtotal, COUNT(*) AS quantidade").
		Joins("LEFT JOIN categorias ON categorias.id = "+tabela+".categoria_id").
		Where(tabela+".user_id = ?", f.UserID)
	q = aplicarFiltro(q, f, tabela)

	var out []ResumoCategoria
	if err := q.Group("categorias.id, categorias.nome").
		Order("subtotal DESC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Tipo = tipo
	}
	if out == nil {
		out = []ResumoCategoria{}
	}
	return out, nil
}

// SerieMensal monta a serie dos ultimos n meses ancorada na data de
// referencia, do mais antigo para o mais recente.
func SerieMensal(db *gorm.DB, userID uint, ref time.Time, n int) ([]PontoMensal, error) {
	serie := make([]PontoMensal, 0, n)
	for i := n - 1; i >= 0; i-- {
		ano, mes := ref.Year(), int(ref.Month())-i
		for mes <= 0 {
			mes += 12
			ano--
		}
		inicio, fim := limitesDoMes(ano, mes)
		f := Filtro{UserID: userID, DataInicio: &inicio, DataFim: &fim}

		receitas, _, err := somarTabela(db, "receitas", f)
		if err != nil {
			return nil, err
		}
		despesas, _, err := somarTabela(db, "despesas", f)
		if err != nil {
			return nil, err
		}
		serie = append(serie, PontoMensal{
			Rotulo:   RotuloMes(ano, mes),
			Ano:      ano,
			Mes:      mes,
			Receitas: receitas,
			Despesas: despesas,
		})
	}
	return serie, nil
}

// limitesDoMes devolve o primeiro e o ultimo dia do mes.
func limitesDoMes(ano, mes int) (time.Time, time.Time) {
	inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 1, -1)
	return inicio, fim
}

// Lancamentos carrega receitas e despesas do filtro como uma lista unica
// ordenada por data decrescente (data de cadastro como desempate).
func Lancamentos(db *gorm.DB, f Filtro) ([]Lancamento, error) {
	out := []Lancamento{}
	if f.intervaloInvertido() {
		return out, nil
	}

	if f.Tipo != models.TipoDespesa {
		var receitas []models.Receita
		q := db.Preload("Categoria").Preload("Fornecedor").
			Where("user_id = ?", f.UserID)
		q = aplicarFiltro(q, f, "receitas")
		if err := q.Find(&receitas).Error; err != nil {
			return nil, err
		}
		for _, r := range receitas {
			l := Lancamento{
				Tipo:         models.TipoReceita,
				Data:         r.Data,
				Descricao:    r.Descricao,
				Valor:        r.Valor,
				DataCadastro: r.DataCadastro,
			}
			if r.Categoria != nil {
				l.Categoria = r.Categoria.Nome
			}
			if r.Fornecedor != nil {
				l.Fornecedor = r.Fornecedor.Nome
				l.CpfCnpj = r.Fornecedor.CpfCnpj
			}
			out = append(out, l)
		}
	}

	if f.Tipo != models.TipoReceita {
		var despesas []models.Despesa
		q := db.Preload("Categoria").Preload("Fornecedor").
			Where("user_id = ?", f.UserID)
		q = aplicarFiltro(q, f, "despesas")
		if err := q.Find(&despesas).Error; err != nil {
			return nil, err
		}
		for _, d := range despesas {
			l := Lancamento{
				Tipo:         models.TipoDespesa,
				Data:         d.Data,
				Descricao:    d.Descricao,
				Valor:        d.Valor,
				DataCadastro: d.DataCadastro,
			}
			if d.Categoria != nil {
				l.Categoria = d.Categoria.Nome
			}
			if d.Fornecedor != nil {
				l.Fornecedor = d.Fornecedor.Nome
				l.CpfCnpj = d.Fornecedor.CpfCnpj
			}
			out = append(out, l)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Data.Equal(out[j].Data) {
			return out[i].Data.After(out[j].Data)
		}
		return out[i].DataCadastro.After(out[j].DataCadastro)
	})
	return out, nil
}
