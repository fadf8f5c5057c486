package report

import (
	"fmt"
	"io"
	"time"

	"contabil/models"

	"github.com/jung-kurt/gofpdf"
)

// Geometria do relatorio em paisagem A4 (milimetros).
const (
	pdfLargura   = 297.0
	pdfAltura    = 210.0
	pdfMargem    = 15.0
	linhasPorPag = 24
	alturaLinha  = 5.0
	alturaCabTab = 6.0
)

// DadosPDF reune tudo que o relatorio paginado imprime.
type DadosPDF struct {
	Lancamentos []Lancamento
	Resumo      Resumo
	Perfil      *models.PerfilEmpresa
	Contas      []models.ContaBancaria // preferencial primeiro
	DataInicio  *time.Time
	DataFim     *time.Time
	GeradoEm    time.Time
}

// paginar fatia total linhas em paginas de ate porPagina, devolvendo o
// numero de linhas de cada pagina. Total zero devolve fatia vazia.
func paginar(total, porPagina int) []int {
	if total <= 0 || porPagina <= 0 {
		return []int{}
	}
	paginas := make([]int, 0, (total+porPagina-1)/porPagina)
	for restante := total; restante > 0; restante -= porPagina {
		n := porPagina
		if restante < porPagina {
			n = restante
		}
		paginas = append(paginas, n)
	}
	return paginas
}

// truncar corta o texto no limite de caracteres com reticencias curtas.
func truncar(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + ".."
}

// rotuloPeriodo monta a descricao do intervalo filtrado.
func rotuloPeriodo(inicio, fim *time.Time) string {
	switch {
	case inicio != nil && fim != nil:
		return FormatarData(*inicio) + " a " + FormatarData(*fim)
	case inicio != nil:
		return "Desde " + FormatarData(*inicio)
	case fim != nil:
		return "Até " + FormatarData(*fim)
	default:
		return "Todos os registros"
	}
}

// GerarPDF desenha o relatorio financeiro paginado: cabecalho repetido
// com titulo, empresa, periodo e numero da pagina; rodape com data de
// emissao; resumo e contas bancarias somente na primeira pagina; tabela
// com 24 linhas de dados por pagina.
func GerarPDF(w io.Writer, d DadosPDF) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	verde := [3]int{0, 153, 0}
	vermelho := [3]int{204, 0, 0}

	larguras := []float64{22, 45, 65, 38, 30}
	alinhamentos := []string{"C", "L", "L", "C", "R"}
	colunas := []string{"Data", "Categoria", "Fornecedor", "CNPJ/CPF", "Valor"}

	cabecalho := func(pag int) float64 {
		y := 10.0
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(pdfMargem, y, tr("RELATÓRIO FINANCEIRO"))
		pag_ := fmt.Sprintf("Pág. %d", pag)
		pdf.Text(pdfLargura-pdfMargem-pdf.GetStringWidth(tr(pag_)), y, tr(pag_))
		y += 4

		pdf.SetFont("Helvetica", "", 7)
		info := "Empresa"
		if d.Perfil != nil && d.Perfil.RazaoSocial != "" {
			info = d.Perfil.RazaoSocial
		}
		if d.Perfil != nil && d.Perfil.Cnpj != "" {
			info += " - CNPJ: " + d.Perfil.Cnpj
		}
		pdf.Text(pdfMargem, y, tr(info))
		periodo := tr(rotuloPeriodo(d.DataInicio, d.DataFim))
		pdf.Text(pdfLargura-pdfMargem-pdf.GetStringWidth(periodo), y, periodo)
		y += 3

		pdf.SetDrawColor(128, 128, 128)
		pdf.Line(pdfMargem, y, pdfLargura-pdfMargem, y)
		return y + 3
	}

	rodape := func() {
		pdf.SetFont("Helvetica", "", 6)
		pdf.SetTextColor(0, 0, 0)
		txt := tr("Emitido: " + d.GeradoEm.Format("02/01/2006 15:04") + " | ELC Contábil")
		pdf.Text((pdfLargura-pdf.GetStringWidth(txt))/2, pdfAltura-7, txt)
	}

	cabecalhoTabela := func(y float64) float64 {
		pdf.SetFont("Helvetica", "B", 7)
		pdf.SetFillColor(77, 77, 77)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetDrawColor(128, 128, 128)
		pdf.SetXY(pdfMargem, y)
		for i, c := range colunas {
			pdf.CellFormat(larguras[i], alturaCabTab, tr(c), "1", 0, "C", true, 0, "")
		}
		return y + alturaCabTab
	}

	linhaTabela := func(y float64, l Lancamento, zebra bool) float64 {
		categoria := "-"
		if l.Categoria != "" {
			categoria = truncar(l.Categoria, 23)
		}
		fornecedor := "-"
		if l.Fornecedor != "" {
			fornecedor = truncar(l.Fornecedor, 33)
		}
		cpfCnpj := l.CpfCnpj
		if cpfCnpj == "" {
			cpfCnpj = "-"
		}
		prefixo, cor := "+ ", verde
		if l.Tipo == models.TipoDespesa {
			prefixo, cor = "- ", vermelho
		}
		valores := []string{
			FormatarData(l.Data),
			categoria,
			fornecedor,
			cpfCnpj,
			prefixo + "R$ " + FormatarBRL(l.Valor),
		}

		pdf.SetFont("Helvetica", "", 6)
		if zebra {
			pdf.SetFillColor(242, 242, 242)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetXY(pdfMargem, y)
		for i, v := range valores {
			if i == len(valores)-1 {
				pdf.SetTextColor(cor[0], cor[1], cor[2])
			} else {
				pdf.SetTextColor(0, 0, 0)
			}
			pdf.CellFormat(larguras[i], alturaLinha, tr(v), "1", 0, alinhamentos[i], true, 0, "")
		}
		pdf.SetTextColor(0, 0, 0)
		return y + alturaLinha
	}

	resumoPrimeiraPagina := func(y float64) float64 {
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(verde[0], verde[1], verde[2])
		pdf.Text(pdfMargem, y, tr("Receitas: R$ "+FormatarBRL(d.Resumo.TotalReceitas)))
		pdf.SetTextColor(vermelho[0], vermelho[1], vermelho[2])
		pdf.Text(pdfMargem+50, y, tr("Despesas: R$ "+FormatarBRL(d.Resumo.TotalDespesas)))
		if d.Resumo.Balanco.IsNegative() {
			pdf.SetTextColor(vermelho[0], vermelho[1], vermelho[2])
		} else {
			pdf.SetTextColor(verde[0], verde[1], verde[2])
		}
		pdf.Text(pdfMargem+100, y, tr("Balanço: R$ "+FormatarBRL(d.Resumo.Balanco)))
		pdf.SetTextColor(0, 0, 0)
		y += 6

		if len(d.Contas) > 0 {
			pdf.SetFont("Helvetica", "", 6)
			for i, conta := range d.Contas {
				if i >= 2 {
					break
				}
				pdf.Text(pdfMargem, y, tr(fmt.Sprintf("• %s Ag:%s CC:%s", conta.NomeBanco, conta.Agencia, conta.ContaCorrente)))
				y += 2.5
			}
			y += 2
		}

		pdf.SetFont("Helvetica", "B", 7)
		pdf.Text(pdfMargem, y, tr(fmt.Sprintf("Lançamentos: %d", len(d.Lancamentos))))
		return y + 3.5
	}

	// O numero de paginas e conhecido antes do desenho; cada cabecalho
	// ja sai com o "Pág. N" definitivo.
	paginas := paginar(len(d.Lancamentos), linhasPorPag)

	pdf.AddPage()
	y := cabecalho(1)
	y = resumoPrimeiraPagina(y)

	offset := 0
	for i, qtd := range paginas {
		if i > 0 {
			rodape()
			pdf.AddPage()
			y = cabecalho(i + 1)
		}
		y = cabecalhoTabela(y)
		for j := 0; j < qtd; j++ {
			y = linhaTabela(y, d.Lancamentos[offset+j], j%2 == 1)
		}
		offset += qtd
	}
	rodape()

	return pdf.Output(w)
}
