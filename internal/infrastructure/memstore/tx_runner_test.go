package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func seedTxStore(t *testing.T) *Store {
	t.Helper()
	store := New()
	ctx := context.Background()

	require.NoError(t, NewAgentRepository(store).Create(ctx, &entity.Agent{
		ID:             "a1",
		Name:           "Laura Gómez",
		Email:          "laura@ridgepark.com",
		Role:           entity.RoleAgent,
		Active:         true,
		Points:         10,
		CommissionRate: decimal.NewFromInt(500),
		SalesCount:     1,
		CreatedAt:      time.Now(),
	}))
	require.NoError(t, NewPropertyRepository(store).Create(ctx, &entity.Property{
		ID:        "p1",
		Title:     "Sunset Villa",
		Status:    entity.PropertyStatusAvailable,
		Quantity:  2,
		Price:     decimal.NewFromInt(8500000),
		CreatedAt: time.Now(),
	}))
	require.NoError(t, NewCustomerRepository(store).Create(ctx, &entity.Customer{
		ID:        "c1",
		Name:      "Cliente Uno",
		Status:    entity.CustomerStatusNegotiation,
		CreatedAt: time.Now(),
	}))
	return store
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Si fn devuelve error, ninguna de las mutaciones intermedias sobrevive.
func TestTxRunner_ErrorRestauraLasTresColecciones(t *testing.T) {
	store := seedTxStore(t)
	ctx := context.Background()
	boom := errors.New("fallo a mitad de camino")

	err := NewTxRunner(store).Run(ctx, func(
		agents repository.AgentRepository,
		customers repository.CustomerRepository,
		properties repository.PropertyRepository,
	) error {
		a, _ := agents.GetByID(ctx, "a1")
		a.Points += 10
		a.SalesCount++
		require.NoError(t, agents.Update(ctx, a))

		p, _ := properties.GetByID(ctx, "p1")
		p.Quantity--
		require.NoError(t, properties.Update(ctx, p))

		c, _ := customers.GetByID(ctx, "c1")
		c.Status = entity.CustomerStatusClosed
		require.NoError(t, customers.Update(ctx, c))

		return boom
	})
	require.ErrorIs(t, err, boom, "Run debe propagar el error de fn")

	a, err := NewAgentRepository(store).GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 10, a.Points, "los puntos vuelven al valor previo")
	assert.Equal(t, 1, a.SalesCount)

	p, err := NewPropertyRepository(store).GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Quantity, "el inventario vuelve al valor previo")

	c, err := NewCustomerRepository(store).GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerStatusNegotiation, c.Status, "el cliente no queda cerrado")
}

// Si fn termina sin error, todas las mutaciones quedan visibles.
func TestTxRunner_ExitoConfirmaLasMutaciones(t *testing.T) {
	store := seedTxStore(t)
	ctx := context.Background()

	err := NewTxRunner(store).Run(ctx, func(
		agents repository.AgentRepository,
		customers repository.CustomerRepository,
		properties repository.PropertyRepository,
	) error {
		a, _ := agents.GetByID(ctx, "a1")
		a.Points += 10
		require.NoError(t, agents.Update(ctx, a))

		p, _ := properties.GetByID(ctx, "p1")
		p.Quantity--
		require.NoError(t, properties.Update(ctx, p))
		return nil
	})
	require.NoError(t, err)

	a, err := NewAgentRepository(store).GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 20, a.Points)

	p, err := NewPropertyRepository(store).GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Quantity)
}

// Los repos de la transacción devuelven copias: mutar el resultado de un Get
// sin llamar Update no toca el almacén.
func TestTxRunner_LosGetDevuelvenCopias(t *testing.T) {
	store := seedTxStore(t)
	ctx := context.Background()

	err := NewTxRunner(store).Run(ctx, func(
		agents repository.AgentRepository,
		_ repository.CustomerRepository,
		_ repository.PropertyRepository,
	) error {
		a, _ := agents.GetByID(ctx, "a1")
		a.Points = 9999 // sin Update: no debe persistir
		return nil
	})
	require.NoError(t, err)

	a, err := NewAgentRepository(store).GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 10, a.Points)
}

// Un contexto ya cancelado corta antes de tomar el lock.
func TestTxRunner_ContextoCanceladoNoEjecuta(t *testing.T) {
	store := New(WithLatency(5 * time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewTxRunner(store).Run(ctx, func(
		_ repository.AgentRepository,
		_ repository.CustomerRepository,
		_ repository.PropertyRepository,
	) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called, "fn no debe ejecutarse con contexto cancelado")
}
