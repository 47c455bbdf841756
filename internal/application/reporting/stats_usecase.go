package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/period"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

// StatsUseCase agrega los contadores del dashboard para un período.
type StatsUseCase struct {
	agentRepo    repository.AgentRepository
	customerRepo repository.CustomerRepository
	propertyRepo repository.PropertyRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(agentRepo repository.AgentRepository, customerRepo repository.CustomerRepository, propertyRepo repository.PropertyRepository) *StatsUseCase {
	return &StatsUseCase{agentRepo: agentRepo, customerRepo: customerRepo, propertyRepo: propertyRepo}
}

// GetStats calcula las métricas del período:
//
//   - totalSales: suma de precios de inmuebles ligados a tratos cerrados en el rango
//   - activeListings: inmuebles visibles al corte, Available o con cupo
//   - totalCustomers: clientes creados dentro del rango
//   - totalAgents: agentes visibles al corte
func (uc *StatsUseCase) GetStats(ctx context.Context, start, end time.Time) (*dto.StatsDTO, error) {
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

	totalSales := decimal.Zero
	for _, c := range closedInRange(customers, start, end) {
		if p, ok := byID[c.PropertyID]; ok {
			totalSales = totalSales.Add(p.Price)
		}
	}

	activeListings := 0
	for _, p := range properties {
		if !period.ExistedBy(p.CreatedAt, end) {
			continue
		}
		if p.Status == entity.PropertyStatusAvailable || p.Quantity > 0 {
			activeListings++
		}
	}

	totalCustomers := 0
	for _, c := range customers {
		if period.InRange(c.CreatedAt, start, end) {
			totalCustomers++
		}
	}

	return &dto.StatsDTO{
		TotalSales:     totalSales,
		ActiveListings: activeListings,
		TotalCustomers: totalCustomers,
		TotalAgents:    len(visibleAgents(agents, end)),
	}, nil
}
