package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Libro manual ──────────────────────────────────────────────────────────────

// FinancialConfigDTO el libro manual completo. En la petición de actualización
// cada rubro usa LedgerAmount (coacción a 0 de entradas no numéricas); en la
// respuesta los valores salen como decimales normales.
type FinancialConfigDTO struct {
	InterestIncome decimal.Decimal `json:"interestIncome"`
	OtherIncome    decimal.Decimal `json:"otherIncome"`
	Rent           decimal.Decimal `json:"rent"`
	Utilities      decimal.Decimal `json:"utilities"`
	Supplies       decimal.Decimal `json:"supplies"`
	Marketing      decimal.Decimal `json:"marketing"`
	Insurance      decimal.Decimal `json:"insurance"`
	Maintenance    decimal.Decimal `json:"maintenance"`
	Misc           decimal.Decimal `json:"misc"`
	BaseSalaries   decimal.Decimal `json:"baseSalaries"`
	Depreciation   decimal.Decimal `json:"depreciation"`
	Taxes          decimal.Decimal `json:"taxes"`
}

// UpdateFinancialConfigRequest reemplazo completo del libro manual.
type UpdateFinancialConfigRequest struct {
	InterestIncome LedgerAmount `json:"interestIncome"`
	OtherIncome    LedgerAmount `json:"otherIncome"`
	Rent           LedgerAmount `json:"rent"`
	Utilities      LedgerAmount `json:"utilities"`
	Supplies       LedgerAmount `json:"supplies"`
	Marketing      LedgerAmount `json:"marketing"`
	Insurance      LedgerAmount `json:"insurance"`
	Maintenance    LedgerAmount `json:"maintenance"`
	Misc           LedgerAmount `json:"misc"`
	BaseSalaries   LedgerAmount `json:"baseSalaries"`
	Depreciation   LedgerAmount `json:"depreciation"`
	Taxes          LedgerAmount `json:"taxes"`
}

// ── Estadísticas del dashboard ────────────────────────────────────────────────

// StatsDTO contadores del dashboard para el período consultado.
type StatsDTO struct {
	TotalSales     decimal.Decimal `json:"totalSales"`     // precios de inmuebles de tratos cerrados en el período
	ActiveListings int             `json:"activeListings"` // inmuebles visibles al corte, disponibles o con cupo
	TotalCustomers int             `json:"totalCustomers"` // clientes creados dentro del período
	TotalAgents    int             `json:"totalAgents"`    // agentes visibles al corte
}

// ── Estado de resultados ──────────────────────────────────────────────────────

// SoldProductDTO venta individual dentro del período.
type SoldProductDTO struct {
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Date  time.Time       `json:"date"` // UpdatedAt del cliente que cerró
}

// CommissionLineDTO comisión del período por agente.
type CommissionLineDTO struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Points int             `json:"points"`
}

// PropertyCostDTO costos de transacción de un inmueble vendido.
type PropertyCostDTO struct {
	Title     string          `json:"title"`
	Cost      decimal.Decimal `json:"cost"`
	Breakdown string          `json:"breakdown"` // ej: "VAT: 25000, Other: 5000"
}

// IncomeDetailsDTO desglose del ingreso.
type IncomeDetailsDTO struct {
	SoldProducts []SoldProductDTO `json:"soldProducts"`
}

// IncomeDTO sección de ingresos del estado de resultados.
type IncomeDTO struct {
	SalesRevenue   decimal.Decimal  `json:"salesRevenue"`
	ServiceRevenue decimal.Decimal  `json:"serviceRevenue"` // 3% fijo sobre ventas intermediadas
	InterestIncome decimal.Decimal  `json:"interestIncome"`
	OtherIncome    decimal.Decimal  `json:"otherIncome"`
	TotalIncome    decimal.Decimal  `json:"totalIncome"`
	Details        IncomeDetailsDTO `json:"details"`
}

// ExpenseDetailsDTO desglose del gasto.
type ExpenseDetailsDTO struct {
	BaseSalaries  decimal.Decimal     `json:"baseSalaries"`
	Commissions   []CommissionLineDTO `json:"commissions"`
	PropertyCosts []PropertyCostDTO   `json:"propertyCosts"`
}

// ExpensesDTO sección de gastos del estado de resultados.
type ExpensesDTO struct {
	Rent                     decimal.Decimal   `json:"rent"`
	SalariesWages            decimal.Decimal   `json:"salariesWages"` // nómina fija + comisiones
	Utilities                decimal.Decimal   `json:"utilities"`
	SuppliesRawMaterials     decimal.Decimal   `json:"suppliesRawMaterials"`
	Depreciation             decimal.Decimal   `json:"depreciation"`
	Taxes                    decimal.Decimal   `json:"taxes"`
	Insurance                decimal.Decimal   `json:"insurance"`
	MarketingAdvertising     decimal.Decimal   `json:"marketingAdvertising"`
	MaintenanceRepairs       decimal.Decimal   `json:"maintenanceRepairs"`
	MiscellaneousExpenses    decimal.Decimal   `json:"miscellaneousExpenses"`
	PropertyTransactionCosts decimal.Decimal   `json:"propertyTransactionCosts"`
	TotalExpenses            decimal.Decimal   `json:"totalExpenses"`
	Details                  ExpenseDetailsDTO `json:"details"`
}

// FinancialReportDTO estado de resultados completo del período.
type FinancialReportDTO struct {
	Income        IncomeDTO       `json:"income"`
	Expenses      ExpensesDTO     `json:"expenses"`
	NetProfitLoss decimal.Decimal `json:"netProfitLoss"`
}

// ── Ventana de mes contable ───────────────────────────────────────────────────

// MonthWindowDTO límites del mes contable (calendario UTC+6) para un instante.
type MonthWindowDTO struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Label     string    `json:"label"`     // ej: "August 2026"
	IsCurrent bool      `json:"isCurrent"` // mismo año/mes que ahora en UTC+6
}

// NarrativeResponse análisis narrativo del reporte generado por el LLM.
type NarrativeResponse struct {
	Narrative string `json:"narrative"`
}
