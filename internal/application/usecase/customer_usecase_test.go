package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/application/usecase"
	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/infrastructure/memstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type customerFixture struct {
	agents *memstore.AgentRepository
	custs  *memstore.CustomerRepository
	props  *memstore.PropertyRepository
	uc     *usecase.CustomerUseCase
}

func newCustomerFixture(t *testing.T) *customerFixture {
	t.Helper()
	store := memstore.New()
	f := &customerFixture{
		agents: memstore.NewAgentRepository(store),
		custs:  memstore.NewCustomerRepository(store),
		props:  memstore.NewPropertyRepository(store),
	}
	f.uc = usecase.NewCustomerUseCase(f.custs, memstore.NewTxRunner(store))
	return f
}

func (f *customerFixture) seed(t *testing.T, propQty int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.agents.Create(ctx, &entity.Agent{
		ID:             "a1",
		Name:           "James",
		Email:          "james@ridgepark.test",
		Role:           entity.RoleAgent,
		Active:         true,
		CommissionRate: decimal.NewFromInt(500),
		CreatedAt:      time.Now().Add(-72 * time.Hour),
	}))
	require.NoError(t, f.props.Create(ctx, &entity.Property{
		ID:        "p1",
		Title:     "Sunset Villa",
		Price:     decimal.NewFromInt(12_000_000),
		Status:    entity.PropertyStatusAvailable,
		Quantity:  propQty,
		CreatedAt: time.Now().Add(-72 * time.Hour),
	}))
	require.NoError(t, f.custs.Create(ctx, &entity.Customer{
		ID:        "c1",
		Name:      "Alice",
		Status:    entity.CustomerStatusNegotiation,
		AgentID:   "a1",
		CreatedAt: time.Now().Add(-48 * time.Hour),
		UpdatedAt: time.Now().Add(-48 * time.Hour),
	}))
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Efecto colateral del cierre
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_CierreOtorgaPuntosYDescuentaInventario(t *testing.T) {
	f := newCustomerFixture(t)
	ctx := context.Background()
	f.seed(t, 2)

	out, err := f.uc.Update(ctx, "c1", dto.UpdateCustomerRequest{
		Status:     strPtr(entity.CustomerStatusClosed),
		PropertyID: strPtr("p1"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.CustomerStatusClosed, out.Status)

	agent, err := f.agents.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 10, agent.Points)
	assert.Equal(t, 1, agent.SalesCount)

	prop, err := f.props.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, prop.Quantity)
	assert.Equal(t, entity.PropertyStatusAvailable, prop.Status, "con cupo restante el inmueble sigue disponible")
}

func TestUpdate_UltimaUnidadMarcaSold(t *testing.T) {
	f := newCustomerFixture(t)
	ctx := context.Background()
	f.seed(t, 1)

	_, err := f.uc.Update(ctx, "c1", dto.UpdateCustomerRequest{
		Status:     strPtr(entity.CustomerStatusClosed),
		PropertyID: strPtr("p1"),
	})
	require.NoError(t, err)

	prop, err := f.props.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, prop.Quantity)
	assert.Equal(t, entity.PropertyStatusSold, prop.Status)
}

func TestUpdate_ReGuardarClosedNoVuelveAOtorgar(t *testing.T) {
	f := newCustomerFixture(t)
	ctx := context.Background()
	f.seed(t, 5)

	_, err := f.uc.Update(ctx, "c1", dto.UpdateCustomerRequest{
		Status:     strPtr(entity.CustomerStatusClosed),
		PropertyID: strPtr("p1"),
	})
	require.NoError(t, err)

	// Segundo update manteniendo Closed: sin transición, sin premio.
	_, err = f.uc.Update(ctx, "c1", dto.UpdateCustomerRequest{
		Status:     strPtr(entity.CustomerStatusClosed),
		PropertyID: strPtr("p1"),
	})
	require.NoError(t, err)

	agent, err := f.agents.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 10, agent.Points, "los puntos se otorgan una sola vez por transición")
	assert.Equal(t, 1, agent.SalesCount)

	prop, err := f.props.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 4, prop.Quantity, "el inventario solo se descuenta al transicionar")
}

func TestUpdate_SalirDeClosedNoRevierte(t *testing.T) {
	f := newCustomerFixture(t)
	ctx := context.Background()
	f.seed(t, 2)

	_, err := f.uc.Update(ctx, "c1", dto.UpdateCustomerRequest{
		Status:     strPtr(entity.CustomerStatusClosed),
		PropertyID: strPtr("p1"),
	})
	require.NoError(t, err)

	_, err = f.uc.Update(ctx, "c1", dto.UpdateCustomerRequest{
		Status: strPtr(entity.CustomerStatusNegotiation),
	})
	require.NoError(t, err)

	agent, err := f.agents.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 10, agent.Points, "reabrir el trato no descuenta puntos")
	assert.Equal(t, 1, agent.SalesCount)

	prop, err := f.props.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, prop.Quantity, "el inventario no se repone")

	// Y volver a cerrar vuelve a premiar: es una nueva transición.
	_, err = f.uc.Update(ctx, "c1", dto.UpdateCustomerRequest{
		Status:     strPtr(entity.CustomerStatusClosed),
		PropertyID: strPtr("p1"),
	})
	require.NoError(t, err)
	agent, err = f.agents.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 20, agent.Points)
	assert.Equal(t, 2, agent.SalesCount)
}

func TestUpdate_CierreSinPropertyIDNoTocaInventario(t *testing.T) {
	f := newCustomerFixture(t)
	ctx := context.Background()
	f.seed(t, 3)

	_, err := f.uc.Update(ctx, "c1", dto.UpdateCustomerRequest{
		Status: strPtr(entity.CustomerStatusClosed),
	})
	require.NoError(t, err)

	prop, err := f.props.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, prop.Quantity, "sin propertyId en el update no se descuenta inventario")

	agent, err := f.agents.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 10, agent.Points, "los puntos sí se otorgan")
}

// ──────────────────────────────────────────────────────────────────────────────
// Semántica de id inexistente y listado
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_IdInexistenteEsNoOp(t *testing.T) {
	f := newCustomerFixture(t)
	f.seed(t, 1)

	out, err := f.uc.Update(context.Background(), "no-existe", dto.UpdateCustomerRequest{
		Status: strPtr(entity.CustomerStatusClosed),
	})
	assert.NoError(t, err, "actualizar un id inexistente nunca es error")
	assert.Nil(t, out)
}

func TestDelete_IdInexistenteEsNoOp(t *testing.T) {
	f := newCustomerFixture(t)
	assert.NoError(t, f.uc.Delete(context.Background(), "no-existe"))
}

func TestList_OrdenPorActividadDescendente(t *testing.T) {
	f := newCustomerFixture(t)
	ctx := context.Background()
	base := time.Now().Add(-24 * time.Hour)

	for i, id := range []string{"c1", "c2", "c3"} {
		require.NoError(t, f.custs.Create(ctx, &entity.Customer{
			ID:        id,
			Name:      "Cliente " + id,
			Status:    entity.CustomerStatusLead,
			CreatedAt: base,
			UpdatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	out, err := f.uc.List(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "c3", out[0].ID)
	assert.Equal(t, "c1", out[2].ID)
}

func TestList_SoloEndFiltraPorVisibilidad(t *testing.T) {
	f := newCustomerFixture(t)
	ctx := context.Background()
	cutoff := time.Now().Add(-24 * time.Hour)

	require.NoError(t, f.custs.Create(ctx, &entity.Customer{
		ID: "viejo", Name: "Viejo", Status: entity.CustomerStatusLead,
		CreatedAt: cutoff.Add(-time.Hour), UpdatedAt: cutoff.Add(-time.Hour),
	}))
	require.NoError(t, f.custs.Create(ctx, &entity.Customer{
		ID: "nuevo", Name: "Nuevo", Status: entity.CustomerStatusLead,
		CreatedAt: cutoff.Add(time.Hour), UpdatedAt: cutoff.Add(time.Hour),
	}))

	out, err := f.uc.List(ctx, time.Time{}, cutoff)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "viejo", out[0].ID)
}

func TestCreate_EstadoPorDefectoLead(t *testing.T) {
	f := newCustomerFixture(t)

	out, err := f.uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerStatusLead, out.Status)
	assert.NotEmpty(t, out.ID)
	assert.False(t, out.CreatedAt.IsZero())
}
