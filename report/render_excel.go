package report

import (
	"contabil/models"

	"github.com/xuri/excelize/v2"
)

const abaLancamentos = "Lançamentos"

const (
	corCabecalho = "4472C4"
	corReceita   = "198754"
	corDespesa   = "DC3545"
	corZebra     = "F2F2F2"
)

// GerarExcel monta a planilha de lancamentos: cabecalho estilizado,
// corpo zebrado com valores em moeda (despesas negativas em vermelho,
// receitas em verde) e tres linhas de resumo ao final.
func GerarExcel(lancs []Lancamento, resumo Resumo) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", abaLancamentos); err != nil {
		return nil, err
	}

	bordas := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	moeda := "R$ #,##0.00"

	estiloCabecalho, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{corCabecalho}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    bordas,
	})
	if err != nil {
		return nil, err
	}

	novoEstiloLinha := func(corFonte string, zebra bool, valorMoeda bool) (int, error) {
		st := &excelize.Style{Border: bordas}
		if zebra {
			st.Fill = excelize.Fill{Type: "pattern", Color: []string{corZebra}, Pattern: 1}
		}
		if valorMoeda {
			st.CustomNumFmt = &moeda
			st.Font = &excelize.Font{Bold: true, Color: corFonte}
		}
		return f.NewStyle(st)
	}

	// Quatro combinacoes de celula de texto/valor x linha par/impar.
	estiloTexto, err := novoEstiloLinha("", false, false)
	if err != nil {
		return nil, err
	}
	estiloTextoZebra, err := novoEstiloLinha("", true, false)
	if err != nil {
		return nil, err
	}
	estilosValor := map[string]int{}
	for _, cor := range []string{corReceita, corDespesa} {
		id, err := novoEstiloLinha(cor, false, true)
		if err != nil {
			return nil, err
		}
		estilosValor[cor] = id
		idZebra, err := novoEstiloLinha(cor, true, true)
		if err != nil {
			return nil, err
		}
		estilosValor[cor+"z"] = idZebra
	}

	cabecalhos := []string{"Data", "Tipo", "Descrição", "Categoria", "Fornecedor", "CPF/CNPJ", "Valor"}
	for col, h := range cabecalhos {
		celula, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(abaLancamentos, celula, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(abaLancamentos, celula, celula, estiloCabecalho); err != nil {
			return nil, err
		}
	}

	linha := 2
	for i, l := range lancs {
		tipo, cor := "Receita", corReceita
		valor := l.Valor.InexactFloat64()
		if l.Tipo == models.TipoDespesa {
			tipo, cor = "Despesa", corDespesa
			valor = -valor
		}
		categoria := l.Categoria
		if categoria == "" {
			categoria = "-"
		}
		fornecedor := l.Fornecedor
		if fornecedor == "" {
			fornecedor = "-"
		}
		cpfCnpj := l.CpfCnpj
		if cpfCnpj == "" {
			cpfCnpj = "-"
		}

		valores := []interface{}{FormatarData(l.Data), tipo, l.Descricao, categoria, fornecedor, cpfCnpj, valor}
		zebra := i%2 == 1
		for col, v := range valores {
			celula, _ := excelize.CoordinatesToCellName(col+1, linha)
			if err := f.SetCellValue(abaLancamentos, celula, v); err != nil {
				return nil, err
			}
			estilo := estiloTexto
			if zebra {
				estilo = estiloTextoZebra
			}
			if col == 6 {
				chave := cor
				if zebra {
					chave += "z"
				}
				estilo = estilosValor[chave]
			}
			if err := f.SetCellStyle(abaLancamentos, celula, celula, estilo); err != nil {
				return nil, err
			}
		}
		linha++
	}

	// Resumo: total de receitas, total de despesas (negativo) e balanco
	// com cor definida pelo sinal.
	linha++
	estiloRotuloReceita, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: corReceita}})
	estiloRotuloDespesa, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: corDespesa}})
	estiloValorReceita, _ := f.NewStyle(&excelize.Style{CustomNumFmt: &moeda, Font: &excelize.Font{Bold: true, Color: corReceita}})
	estiloValorDespesa, _ := f.NewStyle(&excelize.Style{CustomNumFmt: &moeda, Font: &excelize.Font{Bold: true, Color: corDespesa}})

	escreverResumo := func(rotulo string, valor float64, estiloRotulo, estiloValor int) error {
		celulaRotulo, _ := excelize.CoordinatesToCellName(6, linha)
		celulaValor, _ := excelize.CoordinatesToCellName(7, linha)
		if err := f.SetCellValue(abaLancamentos, celulaRotulo, rotulo); err != nil {
			return err
		}
		if err := f.SetCellStyle(abaLancamentos, celulaRotulo, celulaRotulo, estiloRotulo); err != nil {
			return err
		}
		if err := f.SetCellValue(abaLancamentos, celulaValor, valor); err != nil {
			return err
		}
		if err := f.SetCellStyle(abaLancamentos, celulaValor, celulaValor, estiloValor); err != nil {
			return err
		}
		linha++
		return nil
	}

	if err := escreverResumo("Total Receitas:", resumo.TotalReceitas.InexactFloat64(), estiloRotuloReceita, estiloValorReceita); err != nil {
		return nil, err
	}
	if err := escreverResumo("Total Despesas:", -resumo.TotalDespesas.InexactFloat64(), estiloRotuloDespesa, estiloValorDespesa); err != nil {
		return nil, err
	}

	corBalanco := corReceita
	if resumo.Balanco.IsNegative() {
		corBalanco = corDespesa
	}
	estiloRotuloBalanco, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	estiloValorBalanco, _ := f.NewStyle(&excelize.Style{CustomNumFmt: &moeda, Font: &excelize.Font{Bold: true, Size: 12, Color: corBalanco}})
	if err := escreverResumo("BALANÇO:", resumo.Balanco.InexactFloat64(), estiloRotuloBalanco, estiloValorBalanco); err != nil {
		return nil, err
	}

	larguras := []float64{12, 10, 40, 25, 35, 20, 15}
	for i, w := range larguras {
		coluna, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(abaLancamentos, coluna, coluna, w); err != nil {
			return nil, err
		}
	}

	return f, nil
}
