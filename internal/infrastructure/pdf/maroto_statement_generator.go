// Package pdf implementa la exportación del estado de resultados mensual.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Inmobiliaria + "Income Statement" + período         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INGRESOS: ventas, fee de servicio, intereses, otros         │
//	│  TABLA: inmuebles vendidos (título | precio | fecha)         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GASTOS: nómina, comisiones por agente, costos, fijos        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESULTADO NETO                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/application/ports"
)

// Verificar en tiempo de compilación que cumple el puerto.
var _ ports.StatementGenerator = (*MarotoStatementGenerator)(nil)

const companyName = "RIDGE PARK Real Estate"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 78, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLoss    = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa ports.StatementGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// RenderIncomeStatement genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) RenderIncomeStatement(report *dto.FinancialReportDTO, periodLabel string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Income Statement", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(periodLabel))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Ingresos
	m.AddRows(sectionTitleRow("INCOME"))
	m.AddRows(amountRow("Sales revenue", report.Income.SalesRevenue, false))
	m.AddRows(amountRow("Service revenue (3% brokerage fee)", report.Income.ServiceRevenue, false))
	m.AddRows(amountRow("Interest income", report.Income.InterestIncome, false))
	m.AddRows(amountRow("Other income", report.Income.OtherIncome, false))
	m.AddRows(amountRow("Total income", report.Income.TotalIncome, true))

	if len(report.Income.Details.SoldProducts) > 0 {
		m.AddRows(subTitleRow("Properties sold"))
		for _, r := range soldPropertyRows(report.Income.Details.SoldProducts) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Gastos
	m.AddRows(sectionTitleRow("EXPENSES"))
	m.AddRows(amountRow("Salaries and wages", report.Expenses.SalariesWages, false))
	for _, c := range report.Expenses.Details.Commissions {
		m.AddRows(detailRow(
			fmt.Sprintf("Commission — %s (%d pts)", c.Name, c.Points),
			c.Amount,
		))
	}
	m.AddRows(amountRow("Property transaction costs", report.Expenses.PropertyTransactionCosts, false))
	for _, pc := range report.Expenses.Details.PropertyCosts {
		m.AddRows(detailRow(pc.Title+" ("+pc.Breakdown+")", pc.Cost))
	}
	m.AddRows(amountRow("Rent", report.Expenses.Rent, false))
	m.AddRows(amountRow("Utilities", report.Expenses.Utilities, false))
	m.AddRows(amountRow("Supplies and raw materials", report.Expenses.SuppliesRawMaterials, false))
	m.AddRows(amountRow("Marketing and advertising", report.Expenses.MarketingAdvertising, false))
	m.AddRows(amountRow("Insurance", report.Expenses.Insurance, false))
	m.AddRows(amountRow("Maintenance and repairs", report.Expenses.MaintenanceRepairs, false))
	m.AddRows(amountRow("Depreciation", report.Expenses.Depreciation, false))
	m.AddRows(amountRow("Taxes", report.Expenses.Taxes, false))
	m.AddRows(amountRow("Miscellaneous", report.Expenses.MiscellaneousExpenses, false))
	m.AddRows(amountRow("Total expenses", report.Expenses.TotalExpenses, true))

	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(netResultRow(report.NetProfitLoss))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la inmobiliaria (izq) y título + período (der).
func headerRow(periodLabel string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("INCOME STATEMENT", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodLabel, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	))
}

func subTitleRow(title string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1, Left: 2,
		}),
	))
}

// amountRow: concepto a la izquierda, monto a la derecha; bold marca totales.
func amountRow(label string, amount decimal.Decimal, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{
			Style: style, Size: 9, Top: 1, Left: 2,
		})),
		col.New(4).Add(text.New("$"+formatMoney(amount.StringFixed(0)), props.Text{
			Style: style, Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// detailRow: línea de desglose indentada, en gris.
func detailRow(label string, amount decimal.Decimal) core.Row {
	return row.New(5).Add(
		col.New(8).Add(text.New(label, props.Text{
			Size: 8, Top: 0.5, Left: 6, Color: colorGray,
		})),
		col.New(4).Add(text.New("$"+formatMoney(amount.StringFixed(0)), props.Text{
			Size: 8, Align: align.Right, Top: 0.5, Right: 1, Color: colorGray,
		})),
	)
}

// soldPropertyRows: una fila por inmueble vendido (título | fecha | precio).
func soldPropertyRows(sold []dto.SoldProductDTO) []core.Row {
	result := make([]core.Row, 0, len(sold))
	for _, s := range sold {
		result = append(result, row.New(5).Add(
			col.New(6).Add(text.New(s.Title, props.Text{
				Size: 8, Top: 0.5, Left: 6, Color: colorGray,
			})),
			col.New(2).Add(text.New(s.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Center, Top: 0.5, Color: colorGray,
			})),
			col.New(4).Add(text.New("$"+formatMoney(s.Price.StringFixed(0)), props.Text{
				Size: 8, Align: align.Right, Top: 0.5, Right: 1, Color: colorGray,
			})),
		))
	}
	return result
}

// netResultRow: resultado neto, en rojo si hay pérdida.
func netResultRow(net decimal.Decimal) core.Row {
	color := colorPrimary
	label := "NET PROFIT"
	if net.IsNegative() {
		color = colorLoss
		label = "NET LOSS"
	}
	return row.New(10).Add(
		col.New(8).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: color, Top: 2, Left: 2,
		})),
		col.New(4).Add(text.New("$"+formatMoney(net.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: color, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta comas de miles en un string numérico sin decimales.
// Ej: "25000" → "25,000", "8500000" → "8,500,000". Respeta el signo.
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i, c := range []byte(s) {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, c)
		}
		s = string(buf)
	}
	if neg {
		return "-" + s
	}
	return s
}
