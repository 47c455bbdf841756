package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/domain/commission"
	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

// serviceFeeRate comisión de servicio fija sobre ventas intermediadas (3%).
var serviceFeeRate = decimal.NewFromFloat(0.03)

// ReportUseCase sintetiza el estado de resultados de un período: ingresos por
// ventas cerradas más los rubros manuales, contra comisiones, costos de
// transacción y gastos fijos.
type ReportUseCase struct {
	agentRepo    repository.AgentRepository
	customerRepo repository.CustomerRepository
	propertyRepo repository.PropertyRepository
	configRepo   repository.FinancialConfigRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	agentRepo repository.AgentRepository,
	customerRepo repository.CustomerRepository,
	propertyRepo repository.PropertyRepository,
	configRepo repository.FinancialConfigRepository,
) *ReportUseCase {
	return &ReportUseCase{
		agentRepo:    agentRepo,
		customerRepo: customerRepo,
		propertyRepo: propertyRepo,
		configRepo:   configRepo,
	}
}

// GetReport arma el estado de resultados de [start, end].
//
// Regla de arranque: si ningún agente existía al corte y no hubo ventas, el
// negocio aún no existía para ese mes y se devuelve el reporte en ceros en
// lugar de filtrar cifras manuales fantasma.
func (uc *ReportUseCase) GetReport(ctx context.Context, start, end time.Time) (*dto.FinancialReportDTO, error) {
	agents, err := uc.agentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	properties, err := uc.propertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}

	closed := closedInRange(customers, start, end)

	salesRevenue := decimal.Zero
	soldProducts := make([]dto.SoldProductDTO, 0, len(closed))
	propertyCosts := make([]dto.PropertyCostDTO, 0, len(closed))
	transactionCosts := decimal.Zero
	for _, c := range closed {
		p, ok := byID[c.PropertyID]
		if !ok {
			continue
		}
		salesRevenue = salesRevenue.Add(p.Price)
		soldProducts = append(soldProducts, dto.SoldProductDTO{
			Title: p.Title,
			Price: p.Price,
			Date:  c.UpdatedAt,
		})
		cost := p.TransactionCost()
		transactionCosts = transactionCosts.Add(cost)
		propertyCosts = append(propertyCosts, dto.PropertyCostDTO{
			Title:     p.Title,
			Cost:      cost,
			Breakdown: fmt.Sprintf("VAT: %s, Other: %s", p.VATTax.String(), p.OtherCost.String()),
		})
	}

	visible := visibleAgents(agents, end)
	if len(visible) == 0 && salesRevenue.IsZero() {
		return zeroReport(), nil
	}

	cfg, err := uc.ledgerAt(ctx, agents, end)
	if err != nil {
		return nil, err
	}

	serviceRevenue := salesRevenue.Mul(serviceFeeRate)
	totalIncome := salesRevenue.Add(serviceRevenue).Add(cfg.InterestIncome).Add(cfg.OtherIncome)

	totalCommissions, payouts := commission.Payouts(visible, closed)
	commissionLines := make([]dto.CommissionLineDTO, 0, len(payouts))
	for _, pay := range payouts {
		commissionLines = append(commissionLines, dto.CommissionLineDTO{
			Name:   pay.Name,
			Amount: pay.Amount,
			Points: pay.Points,
		})
	}
	totalSalaries := cfg.BaseSalaries.Add(totalCommissions)

	totalExpenses := cfg.Rent.
		Add(totalSalaries).
		Add(cfg.Utilities).
		Add(cfg.Supplies).
		Add(cfg.Depreciation).
		Add(cfg.Taxes).
		Add(cfg.Insurance).
		Add(cfg.Marketing).
		Add(cfg.Maintenance).
		Add(cfg.Misc).
		Add(transactionCosts)

	return &dto.FinancialReportDTO{
		Income: dto.IncomeDTO{
			SalesRevenue:   salesRevenue,
			ServiceRevenue: serviceRevenue,
			InterestIncome: cfg.InterestIncome,
			OtherIncome:    cfg.OtherIncome,
			TotalIncome:    totalIncome,
			Details:        dto.IncomeDetailsDTO{SoldProducts: soldProducts},
		},
		Expenses: dto.ExpensesDTO{
			Rent:                     cfg.Rent,
			SalariesWages:            totalSalaries,
			Utilities:                cfg.Utilities,
			SuppliesRawMaterials:     cfg.Supplies,
			Depreciation:             cfg.Depreciation,
			Taxes:                    cfg.Taxes,
			Insurance:                cfg.Insurance,
			MarketingAdvertising:     cfg.Marketing,
			MaintenanceRepairs:       cfg.Maintenance,
			MiscellaneousExpenses:    cfg.Misc,
			PropertyTransactionCosts: transactionCosts,
			TotalExpenses:            totalExpenses,
			Details: dto.ExpenseDetailsDTO{
				BaseSalaries:  cfg.BaseSalaries,
				Commissions:   commissionLines,
				PropertyCosts: propertyCosts,
			},
		},
		NetProfitLoss: totalIncome.Sub(totalExpenses),
	}, nil
}

// ledgerAt resuelve el libro manual al corte end con la misma regla que el
// caso de uso del libro: si end es anterior a la creación del agente más
// antiguo, el libro se lee en ceros. Un cierre cuyo agente fue borrado o nació
// después del corte produce reporte, pero sin rubros manuales de ese mes.
func (uc *ReportUseCase) ledgerAt(ctx context.Context, agents []*entity.Agent, end time.Time) (entity.FinancialConfig, error) {
	if !end.IsZero() && end.Before(earliestCreation(agents)) {
		return entity.ZeroFinancialConfig(), nil
	}
	return uc.configRepo.Get(ctx)
}

// zeroReport devuelve la forma completa del reporte con todos los montos en
// cero y los desgloses vacíos (no nil, para serializar como []).
func zeroReport() *dto.FinancialReportDTO {
	z := decimal.Zero
	return &dto.FinancialReportDTO{
		Income: dto.IncomeDTO{
			SalesRevenue:   z,
			ServiceRevenue: z,
			InterestIncome: z,
			OtherIncome:    z,
			TotalIncome:    z,
			Details:        dto.IncomeDetailsDTO{SoldProducts: []dto.SoldProductDTO{}},
		},
		Expenses: dto.ExpensesDTO{
			Rent:                     z,
			SalariesWages:            z,
			Utilities:                z,
			SuppliesRawMaterials:     z,
			Depreciation:             z,
			Taxes:                    z,
			Insurance:                z,
			MarketingAdvertising:     z,
			MaintenanceRepairs:       z,
			MiscellaneousExpenses:    z,
			PropertyTransactionCosts: z,
			TotalExpenses:            z,
			Details: dto.ExpenseDetailsDTO{
				BaseSalaries:  z,
				Commissions:   []dto.CommissionLineDTO{},
				PropertyCosts: []dto.PropertyCostDTO{},
			},
		},
		NetProfitLoss: z,
	}
}
