package report

import (
	"errors"
	"time"

	"contabil/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TopDespesa e uma entrada do ranking de maiores despesas do mes.
type TopDespesa struct {
	Descricao string          `json:"descricao"`
	Valor     decimal.Decimal `json:"valor"`
}

// Dashboard e o modelo de visao do painel principal.
type Dashboard struct {
	MesAtual               Resumo            `json:"mes_atual"`
	MesAnterior            Resumo            `json:"mes_anterior"`
	AnoAtual               Resumo            `json:"ano_atual"`
	FaturamentoAnoAnterior decimal.Decimal   `json:"faturamento_ano_anterior"`
	DeclaracaoPendente     bool              `json:"declaracao_pendente"`
	Serie                  []PontoMensal     `json:"serie_mensal"`
	CategoriasMes          []ResumoCategoria `json:"categorias_mes"`
	CategoriasAno          []ResumoCategoria `json:"categorias_ano"`
	TopDespesas            []TopDespesa      `json:"top_despesas"`
	Alertas                []Alerta          `json:"alertas"`
}

// MontarDashboard calcula todos os agregados do painel a partir de um
// unico instante de referencia, capturado uma vez na entrada da
// requisicao. As janelas (mes atual, mes anterior, ano, serie de 6
// meses) derivam todas desse mesmo instante.
func MontarDashboard(db *gorm.DB, userID uint, agora time.Time) (*Dashboard, error) {
	dash := &Dashboard{FaturamentoAnoAnterior: decimal.Zero}

	prefs, err := models.GetOrCreatePreferencias(db, userID)
	if err != nil {
		return nil, err
	}

	anoAtual := agora.Year()
	anoAnterior := anoAtual - 1
	mesAnteriorAno, mesAnterior := anoAtual, int(agora.Month())-1
	if mesAnterior == 0 {
		mesAnterior = 12
		mesAnteriorAno--
	}

	inicioMes, fimMes := limitesDoMes(anoAtual, int(agora.Month()))
	filtroMes := Filtro{UserID: userID, DataInicio: &inicioMes, DataFim: &fimMes}
	if dash.MesAtual, err = Resumir(db, filtroMes); err != nil {
		return nil, err
	}

	inicioMesAnt, fimMesAnt := limitesDoMes(mesAnteriorAno, mesAnterior)
	filtroMesAnt := Filtro{UserID: userID, DataInicio: &inicioMesAnt, DataFim: &fimMesAnt}
	if dash.MesAnterior, err = Resumir(db, filtroMesAnt); err != nil {
		return nil, err
	}

	inicioAno := time.Date(anoAtual, time.January, 1, 0, 0, 0, 0, time.UTC)
	fimAno := time.Date(anoAtual, time.December, 31, 0, 0, 0, 0, time.UTC)
	filtroAno := Filtro{UserID: userID, DataInicio: &inicioAno, DataFim: &fimAno}
	if dash.AnoAtual, err = Resumir(db, filtroAno); err != nil {
		return nil, err
	}

	inicioAnoAnt := time.Date(anoAnterior, time.January, 1, 0, 0, 0, 0, time.UTC)
	fimAnoAnt := time.Date(anoAnterior, time.December, 31, 0, 0, 0, 0, time.UTC)
	faturamentoAnt, _, err := somarTabela(db, "receitas", Filtro{UserID: userID, DataInicio: &inicioAnoAnt, DataFim: &fimAnoAnt})
	if err != nil {
		return nil, err
	}
	dash.FaturamentoAnoAnterior = faturamentoAnt

	// Declaracao pendente: o ano anterior teve faturamento, ja terminou e
	// o perfil existe mas nao confirmou a declaracao daquele ano. Sem
	// perfil cadastrado nao ha o que cobrar.
	if faturamentoAnt.IsPositive() {
		var perfil models.PerfilEmpresa
		err := db.Where("user_id = ?", userID).First(&perfil).Error
		switch {
		case err == nil:
			var qtd int64
			if err := db.Model(&models.DeclaracaoAnual{}).
				Where("perfil_empresa_id = ? AND ano = ?", perfil.ID, anoAnterior).
				Count(&qtd).Error; err != nil {
				return nil, err
			}
			dash.DeclaracaoPendente = qtd == 0
		case errors.Is(err, gorm.ErrRecordNotFound):
			dash.DeclaracaoPendente = false
		default:
			return nil, err
		}
	}

	if dash.Serie, err = SerieMensal(db, userID, agora, 6); err != nil {
		return nil, err
	}
	if dash.CategoriasMes, err = PorCategoria(db, filtroMes, models.TipoDespesa); err != nil {
		return nil, err
	}
	if dash.CategoriasAno, err = PorCategoria(db, filtroAno, models.TipoDespesa); err != nil {
		return nil, err
	}

	var maiores []models.Despesa
	if err := db.Where("user_id = ? AND data >= ? AND data <= ?", userID, inicioMes, fimMes).
		Order("valor DESC").Limit(5).Find(&maiores).Error; err != nil {
		return nil, err
	}
	dash.TopDespesas = make([]TopDespesa, 0, len(maiores))
	for _, d := range maiores {
		rotulo := d.Descricao
		if r := []rune(rotulo); len(r) > 30 {
			rotulo = string(r[:30])
		}
		dash.TopDespesas = append(dash.TopDespesas, TopDespesa{Descricao: rotulo, Valor: d.Valor})
	}

	entrada := EntradaAlertas{
		MesAtual:            dash.MesAtual,
		DespesasMesAnterior: dash.MesAnterior.TotalDespesas,
	}
	corte30 := agora.AddDate(0, 0, -30)
	if entrada.SemCategoria, err = contarSemCategoria(db, userID, corte30); err != nil {
		return nil, err
	}
	if entrada.FornecedoresInativos, err = contarFornecedoresInativos(db, userID, corte30); err != nil {
		return nil, err
	}
	dash.Alertas = AvaliarAlertas(entrada, prefs)

	return dash, nil
}

// contarSemCategoria soma receitas e despesas sem categoria desde a data
// de corte.
func contarSemCategoria(db *gorm.DB, userID uint, corte time.Time) (int64, error) {
	var receitas, despesas int64
	if err := db.Model(&models.Receita{}).
		Where("user_id = ? AND data >= ? AND categoria_id IS NULL", userID, corte).
		Count(&receitas).Error; err != nil {
		return 0, err
	}
	if err := db.Model(&models.Despesa{}).
		Where("user_id = ? AND data >= ? AND categoria_id IS NULL", userID, corte).
		Count(&despesas).Error; err != nil {
		return 0, err
	}
	return receitas + despesas, nil
}

// contarFornecedoresInativos conta fornecedores desativados que ainda
// aparecem em lancamentos desde a data de corte.
func contarFornecedoresInativos(db *gorm.DB, userID uint, corte time.Time) (int64, error) {
	var qtd int64
	err := db.Raw(`SELECT COUNT(*) FROM fornecedores f
		WHERE f.user_id = ? AND f.ativo = false
		AND (EXISTS (SELECT 1 FROM receitas r WHERE r.fornecedor_id = f.id AND r.data >= ?)
		  OR EXISTS (SELECT 1 FROM despesas d WHERE d.fornecedor_id = f.id AND d.data >= ?))`,
		userID, corte, corte).Scan(&qtd).Error
	if err != nil {
		return 0, err
	}
	return qtd, nil
}
