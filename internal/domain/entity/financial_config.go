package entity

import "github.com/shopspring/decimal"

// FinancialConfig es el libro manual de ingresos y gastos no derivables de las
// transacciones. Singleton a nivel de proceso, sin historial: cada actualización
// reemplaza el registro completo.
type FinancialConfig struct {
	// Ingresos manuales
	InterestIncome decimal.Decimal
	OtherIncome    decimal.Decimal

	// Gastos manuales
	Rent         decimal.Decimal
	Utilities    decimal.Decimal
	Supplies     decimal.Decimal
	Marketing    decimal.Decimal
	Insurance    decimal.Decimal
	Maintenance  decimal.Decimal
	Misc         decimal.Decimal
	BaseSalaries decimal.Decimal // nómina fija; las comisiones de agentes se calculan aparte
	Depreciation decimal.Decimal
	Taxes        decimal.Decimal
}

// ZeroFinancialConfig devuelve el libro con todos los rubros en 0.
// Es también lo que ve un período anterior a la existencia del negocio.
func ZeroFinancialConfig() FinancialConfig {
	return FinancialConfig{
		InterestIncome: decimal.Zero,
		OtherIncome:    decimal.Zero,
		Rent:           decimal.Zero,
		Utilities:      decimal.Zero,
		Supplies:       decimal.Zero,
		Marketing:      decimal.Zero,
		Insurance:      decimal.Zero,
		Maintenance:    decimal.Zero,
		Misc:           decimal.Zero,
		BaseSalaries:   decimal.Zero,
		Depreciation:   decimal.Zero,
		Taxes:          decimal.Zero,
	}
}
