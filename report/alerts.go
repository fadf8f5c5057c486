package report

import (
	"fmt"

	"contabil/models"

	"github.com/shopspring/decimal"
)

// Alerta e um aviso exibido no painel do usuario.
type Alerta struct {
	Tipo     string `json:"tipo"` // warning, danger ou info
	Icone    string `json:"icone"`
	Titulo   string `json:"titulo"`
	Mensagem string `json:"mensagem"`
}

// EntradaAlertas reune os agregados ja calculados que o avaliador
// inspeciona. O avaliador em si nao toca o banco.
type EntradaAlertas struct {
	MesAtual             Resumo
	DespesasMesAnterior  decimal.Decimal
	SemCategoria         int64
	FornecedoresInativos int64
}

var cem = decimal.NewFromInt(100)

// AvaliarAlertas aplica as cinco regras de aviso na ordem em que estao
// declaradas. Todas podem disparar ao mesmo tempo. Devolve lista vazia
// quando o usuario desativou os alertas nas preferencias.
func AvaliarAlertas(in EntradaAlertas, prefs *models.PreferenciaUsuario) []Alerta {
	alertas := []Alerta{}
	if prefs == nil || !prefs.AlertasAtivos {
		return alertas
	}

	// Regra 1: despesas acima do percentual definido. Nao dispara sem
	// receita no mes, independentemente do total de despesas.
	if in.MesAtual.TotalReceitas.IsPositive() {
		limite := decimal.NewFromInt(int64(prefs.AlertaPercentualDespesas))
		if in.MesAtual.TotalDespesas.Mul(cem).GreaterThanOrEqual(in.MesAtual.TotalReceitas.Mul(limite)) {
			percentual, _ := in.MesAtual.TotalDespesas.Mul(cem).Div(in.MesAtual.TotalReceitas).Float64()
			alertas = append(alertas, Alerta{
				Tipo:     "warning",
				Icone:    "bi-exclamation-triangle-fill",
				Titulo:   "Despesas Elevadas",
				Mensagem: fmt.Sprintf("Suas despesas estão em %.1f%% das receitas do mês (limite: %d%%).", percentual, prefs.AlertaPercentualDespesas),
			})
		}
	}

	// Regra 2: balanco negativo no mes.
	if in.MesAtual.Balanco.IsNegative() {
		alertas = append(alertas, Alerta{
			Tipo:     "danger",
			Icone:    "bi-x-circle-fill",
			Titulo:   "Balanço Negativo",
			Mensagem: "O balanço do mês está negativo em R$ " + FormatarBRL(in.MesAtual.Balanco.Abs()),
		})
	}

	// Regra 3: aumento de mais de 20% em relacao ao mes anterior.
	if in.DespesasMesAnterior.IsPositive() && in.MesAtual.TotalDespesas.IsPositive() {
		variacao, _ := in.MesAtual.TotalDespesas.Sub(in.DespesasMesAnterior).
			Mul(cem).Div(in.DespesasMesAnterior).Float64()
		if variacao > 20 {
			alertas = append(alertas, Alerta{
				Tipo:     "info",
				Icone:    "bi-graph-up-arrow",
				Titulo:   "Aumento nas Despesas",
				Mensagem: fmt.Sprintf("Suas despesas aumentaram %.1f%% em relação ao mês passado.", variacao),
			})
		}
	}

	// Regra 4: lancamentos sem categoria nos ultimos 30 dias.
	if in.SemCategoria > 0 {
		alertas = append(alertas, Alerta{
			Tipo:     "warning",
			Icone:    "bi-tag",
			Titulo:   "Lançamentos sem Categoria",
			Mensagem: fmt.Sprintf("Você tem %d lançamento(s) sem categoria nos últimos 30 dias.", in.SemCategoria),
		})
	}

	// Regra 5: fornecedores inativos com lancamentos recentes.
	if in.FornecedoresInativos > 0 {
		alertas = append(alertas, Alerta{
			Tipo:     "info",
			Icone:    "bi-person-x",
			Titulo:   "Fornecedores Inativos",
			Mensagem: fmt.Sprintf("%d fornecedor(es) inativo(s) possui(em) lançamentos recentes.", in.FornecedoresInativos),
		})
	}

	return alertas
}
