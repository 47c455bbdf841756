// Package reporting contiene los casos de uso financieros: libro manual,
// estadísticas del dashboard, estado de resultados, narrativa y PDF.
package reporting

import (
	"context"
	"time"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/period"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

// FinancialConfigUseCase gestiona el libro manual singleton.
type FinancialConfigUseCase struct {
	configRepo repository.FinancialConfigRepository
	agentRepo  repository.AgentRepository
}

// NewFinancialConfigUseCase construye el caso de uso.
func NewFinancialConfigUseCase(configRepo repository.FinancialConfigRepository, agentRepo repository.AgentRepository) *FinancialConfigUseCase {
	return &FinancialConfigUseCase{configRepo: configRepo, agentRepo: agentRepo}
}

// Get devuelve el libro manual vigente. Si el corte end es anterior a la
// creación del agente más antiguo, el negocio "no existía" en ese mes y se
// devuelve el libro en ceros: las cifras manuales no tienen historial y no
// deben filtrarse hacia meses previos a toda actividad.
func (uc *FinancialConfigUseCase) Get(ctx context.Context, end time.Time) (*dto.FinancialConfigDTO, error) {
	if !end.IsZero() {
		agents, err := uc.agentRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		if end.Before(earliestCreation(agents)) {
			zero := entity.ZeroFinancialConfig()
			return toConfigDTO(zero), nil
		}
	}
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return toConfigDTO(cfg), nil
}

// Update reemplaza el libro manual completo (sin merge por campo).
func (uc *FinancialConfigUseCase) Update(ctx context.Context, in dto.UpdateFinancialConfigRequest) (*dto.FinancialConfigDTO, error) {
	cfg := entity.FinancialConfig{
		InterestIncome: in.InterestIncome.Decimal,
		OtherIncome:    in.OtherIncome.Decimal,
		Rent:           in.Rent.Decimal,
		Utilities:      in.Utilities.Decimal,
		Supplies:       in.Supplies.Decimal,
		Marketing:      in.Marketing.Decimal,
		Insurance:      in.Insurance.Decimal,
		Maintenance:    in.Maintenance.Decimal,
		Misc:           in.Misc.Decimal,
		BaseSalaries:   in.BaseSalaries.Decimal,
		Depreciation:   in.Depreciation.Decimal,
		Taxes:          in.Taxes.Decimal,
	}
	if err := uc.configRepo.Replace(ctx, cfg); err != nil {
		return nil, err
	}
	return toConfigDTO(cfg), nil
}

// earliestCreation devuelve el CreatedAt más antiguo entre los agentes; sin
// agentes devuelve el instante actual, de modo que cualquier corte histórico
// resulte anterior a la existencia del negocio.
func earliestCreation(agents []*entity.Agent) time.Time {
	if len(agents) == 0 {
		return time.Now().UTC()
	}
	earliest := agents[0].CreatedAt
	for _, a := range agents[1:] {
		if a.CreatedAt.Before(earliest) {
			earliest = a.CreatedAt
		}
	}
	return earliest
}

func toConfigDTO(cfg entity.FinancialConfig) *dto.FinancialConfigDTO {
	return &dto.FinancialConfigDTO{
		InterestIncome: cfg.InterestIncome,
		OtherIncome:    cfg.OtherIncome,
		Rent:           cfg.Rent,
		Utilities:      cfg.Utilities,
		Supplies:       cfg.Supplies,
		Marketing:      cfg.Marketing,
		Insurance:      cfg.Insurance,
		Maintenance:    cfg.Maintenance,
		Misc:           cfg.Misc,
		BaseSalaries:   cfg.BaseSalaries,
		Depreciation:   cfg.Depreciation,
		Taxes:          cfg.Taxes,
	}
}

// visibleAgents filtra agentes ya existentes al corte end.
func visibleAgents(agents []*entity.Agent, end time.Time) []*entity.Agent {
	out := make([]*entity.Agent, 0, len(agents))
	for _, a := range agents {
		if period.ExistedBy(a.CreatedAt, end) {
			out = append(out, a)
		}
	}
	return out
}

// closedInRange filtra clientes Closed cuyo UpdatedAt cae en [start, end].
func closedInRange(customers []*entity.Customer, start, end time.Time) []*entity.Customer {
	out := make([]*entity.Customer, 0)
	for _, c := range customers {
		if c.IsClosed() && period.InRange(c.UpdatedAt, start, end) {
			out = append(out, c)
		}
	}
	return out
}
