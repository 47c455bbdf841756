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
	"github.com/ridgepark/estate-crm/internal/domain"
	"github.com/ridgepark/estate-crm/internal/infrastructure/memstore"
)

func newAgentUC(t *testing.T) (*usecase.AgentUseCase, *memstore.AgentRepository) {
	t.Helper()
	store := memstore.New()
	repo := memstore.NewAgentRepository(store)
	return usecase.NewAgentUseCase(repo), repo
}

func TestCreateAgent_ValoresPorDefecto(t *testing.T) {
	uc, _ := newAgentUC(t)

	out, err := uc.Create(context.Background(), dto.CreateAgentRequest{
		Name:  "James",
		Email: "james@ridgepark.test",
	})
	require.NoError(t, err)
	assert.True(t, out.CommissionRate.Equal(decimal.NewFromInt(100)), "tarifa por defecto 100")
	assert.Zero(t, out.Points)
	assert.Zero(t, out.SalesCount)
	assert.True(t, out.Active)
	assert.Empty(t, out.Targets)
}

func TestCreateAgent_EmailDuplicado(t *testing.T) {
	uc, _ := newAgentUC(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateAgentRequest{Name: "James", Email: "james@ridgepark.test"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateAgentRequest{Name: "Otro", Email: "james@ridgepark.test"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUpsertTarget_MismoRangoSobrescribe(t *testing.T) {
	uc, _ := newAgentUC(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateAgentRequest{Name: "James", Email: "james@ridgepark.test"})
	require.NoError(t, err)

	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.August, 31, 23, 59, 59, 0, time.UTC)

	_, err = uc.UpsertTarget(ctx, created.ID, dto.TargetRequest{StartDate: start, EndDate: end, Target: 5})
	require.NoError(t, err)

	out, err := uc.UpsertTarget(ctx, created.ID, dto.TargetRequest{StartDate: start, EndDate: end, Target: 8})
	require.NoError(t, err)

	require.Len(t, out.Targets, 1, "la pareja (startDate, endDate) es clave única")
	assert.Equal(t, 8, out.Targets[0].Target)
}

func TestUpsertTarget_RangoDistintoAgrega(t *testing.T) {
	uc, _ := newAgentUC(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateAgentRequest{Name: "James", Email: "james@ridgepark.test"})
	require.NoError(t, err)

	aug1 := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	aug31 := time.Date(2026, time.August, 31, 23, 59, 59, 0, time.UTC)
	sep1 := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	sep30 := time.Date(2026, time.September, 30, 23, 59, 59, 0, time.UTC)

	_, err = uc.UpsertTarget(ctx, created.ID, dto.TargetRequest{StartDate: aug1, EndDate: aug31, Target: 5})
	require.NoError(t, err)
	out, err := uc.UpsertTarget(ctx, created.ID, dto.TargetRequest{StartDate: sep1, EndDate: sep30, Target: 3})
	require.NoError(t, err)

	assert.Len(t, out.Targets, 2)
}

func TestRemoveTarget_PorRangoExacto(t *testing.T) {
	uc, _ := newAgentUC(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateAgentRequest{Name: "James", Email: "james@ridgepark.test"})
	require.NoError(t, err)

	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.August, 31, 23, 59, 59, 0, time.UTC)
	_, err = uc.UpsertTarget(ctx, created.ID, dto.TargetRequest{StartDate: start, EndDate: end, Target: 5})
	require.NoError(t, err)

	// Un rango que no coincide exactamente no borra nada.
	out, err := uc.RemoveTarget(ctx, created.ID, start, end.Add(time.Second))
	require.NoError(t, err)
	assert.Len(t, out.Targets, 1)

	out, err = uc.RemoveTarget(ctx, created.ID, start, end)
	require.NoError(t, err)
	assert.Empty(t, out.Targets)
}

func TestToggleStatus_Invierte(t *testing.T) {
	uc, _ := newAgentUC(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateAgentRequest{Name: "James", Email: "james@ridgepark.test"})
	require.NoError(t, err)

	out, err := uc.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, out.Active)

	out, err = uc.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, out.Active)
}

func TestAgentMutaciones_IdInexistenteDevuelvenNil(t *testing.T) {
	uc, _ := newAgentUC(t)
	ctx := context.Background()

	out, err := uc.UpdateCommission(ctx, "no-existe", decimal.NewFromInt(900))
	assert.NoError(t, err)
	assert.Nil(t, out)

	out, err = uc.ToggleStatus(ctx, "no-existe")
	assert.NoError(t, err)
	assert.Nil(t, out)

	assert.NoError(t, uc.ResetPassword(ctx, "no-existe", "nueva-clave"))
	assert.NoError(t, uc.Delete(ctx, "no-existe"))
}

func TestListAgents_VisibilidadAlCorte(t *testing.T) {
	uc, _ := newAgentUC(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateAgentRequest{Name: "James", Email: "james@ridgepark.test"})
	require.NoError(t, err)

	out, err := uc.List(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, out, "un corte previo a la creación no lo incluye")

	out, err = uc.List(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, created.ID, out[0].ID)
}
