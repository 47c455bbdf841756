package memstore

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/period"
)

// SeedDemo carga el juego de datos de demostración: dos agentes, tres clientes
// y tres inmuebles creados en los últimos días, con el libro manual en ceros.
// Las fechas son recientes a propósito: al retroceder un mes en los reportes
// no debe existir nada todavía.
func SeedDemo(ctx context.Context, s *Store) error {
	now := time.Now()
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash de password demo: %w", err)
	}

	monthStart, monthEnd := period.MonthBounds(now)

	agents := []*entity.Agent{
		{
			ID:             "agent-1",
			Name:           "James Bond",
			Email:          "agent@bond.com",
			Role:           entity.RoleAgent,
			PasswordHash:   string(hash),
			Active:         true,
			Points:         120,
			CommissionRate: decimal.NewFromInt(500),
			SalesCount:     12,
			Targets: []entity.TargetRecord{
				{StartDate: monthStart, EndDate: monthEnd, Target: 20},
			},
			CreatedAt: daysAgo(2),
		},
		{
			ID:             "agent-2",
			Name:           "Sarah Connor",
			Email:          "agent@sarah.com",
			Role:           entity.RoleAgent,
			PasswordHash:   string(hash),
			Active:         true,
			Points:         80,
			CommissionRate: decimal.NewFromInt(450),
			SalesCount:     8,
			Targets: []entity.TargetRecord{
				{StartDate: monthStart, EndDate: monthEnd, Target: 12},
			},
			CreatedAt: daysAgo(1),
		},
	}

	customers := []*entity.Customer{
		{
			ID: "cust-1", Name: "Alice Wonderland", Email: "alice@example.com",
			Phone: "555-0101", Status: entity.CustomerStatusNegotiation,
			Budget: decimal.NewFromInt(450000), AgentID: "agent-1",
			CreatedAt: daysAgo(3), UpdatedAt: daysAgo(1),
		},
		{
			ID: "cust-2", Name: "Bob Builder", Email: "bob@example.com",
			Phone: "555-0102", Status: entity.CustomerStatusLead,
			Budget: decimal.NewFromInt(300000), AgentID: "agent-2",
			CreatedAt: daysAgo(2), UpdatedAt: daysAgo(2),
		},
		{
			ID: "cust-3", Name: "Charlie Bucket", Email: "charlie@example.com",
			Phone: "555-0103", Status: entity.CustomerStatusClosed,
			Budget: decimal.NewFromInt(1200000), AgentID: "agent-1",
			CreatedAt: daysAgo(4), UpdatedAt: now,
		},
	}

	properties := []*entity.Property{
		{
			ID: "prod-1", Title: "Sunset Villa", Address: "123 Ocean Dr",
			Price: decimal.NewFromInt(12000000), Type: entity.PropertyTypeHouse,
			Status: entity.PropertyStatusAvailable, Quantity: 1, AgentID: "agent-1",
			VATTax: decimal.NewFromInt(50000), OtherCost: decimal.NewFromInt(10000),
			CreatedAt: daysAgo(3),
		},
		{
			ID: "prod-2", Title: "Downtown Loft", Address: "456 Main St",
			Price: decimal.NewFromInt(8500000), Type: entity.PropertyTypeApartment,
			Status: entity.PropertyStatusPending, Quantity: 5, AgentID: "agent-2",
			VATTax: decimal.NewFromInt(25000), OtherCost: decimal.NewFromInt(5000),
			CreatedAt: daysAgo(2),
		},
		{
			ID: "prod-3", Title: "Lakeside Cabin", Address: "789 Lakeview Rd",
			Price: decimal.NewFromInt(15000000), Type: entity.PropertyTypeHouse,
			Status: entity.PropertyStatusSold, Quantity: 0, AgentID: "agent-1",
			VATTax: decimal.NewFromInt(75000), OtherCost: decimal.NewFromInt(15000),
			CreatedAt: daysAgo(4),
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.agents = append(s.agents, agents...)
	s.customers = append(s.customers, customers...)
	s.properties = append(s.properties, properties...)
	return nil
}
