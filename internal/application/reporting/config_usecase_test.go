package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/application/reporting"
	"github.com/ridgepark/estate-crm/internal/domain/entity"
)

func newConfigFixture(t *testing.T) (*reportFixture, *reporting.FinancialConfigUseCase) {
	t.Helper()
	f := newReportFixture(t)
	return f, reporting.NewFinancialConfigUseCase(f.config, f.agents)
}

func ledger(n int64) dto.LedgerAmount {
	return dto.LedgerAmount{Decimal: decimal.NewFromInt(n)}
}

func TestConfigUpdate_ReemplazoCompleto(t *testing.T) {
	f, configUC := newConfigFixture(t)
	ctx := context.Background()

	require.NoError(t, f.config.Replace(ctx, entity.FinancialConfig{
		Rent:  decimal.NewFromInt(40_000),
		Taxes: decimal.NewFromInt(9_000),
	}))

	// La actualización no hace merge: los rubros ausentes quedan en 0.
	out, err := configUC.Update(ctx, dto.UpdateFinancialConfigRequest{
		Rent: ledger(55_000),
	})
	require.NoError(t, err)

	assert.True(t, out.Rent.Equal(decimal.NewFromInt(55_000)))
	assert.True(t, out.Taxes.IsZero(), "el reemplazo es total, no por campo")

	stored, err := f.config.Get(ctx)
	require.NoError(t, err)
	assert.True(t, stored.Taxes.IsZero())
}

func TestConfigGet_CortePrevioAlPrimerAgenteDevuelveCeros(t *testing.T) {
	f, configUC := newConfigFixture(t)
	ctx := context.Background()

	require.NoError(t, f.config.Replace(ctx, entity.FinancialConfig{
		Rent: decimal.NewFromInt(40_000),
	}))
	f.seedAgent(t, "a1", 500, midPeriod)

	out, err := configUC.Get(ctx, midPeriod.Add(-time.Hour))
	require.NoError(t, err)
	assert.True(t, out.Rent.IsZero(), "el libro manual no existe antes del primer agente")

	out, err = configUC.Get(ctx, midPeriod.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, out.Rent.Equal(decimal.NewFromInt(40_000)))
}

func TestConfigGet_SinAgentesCualquierCorteDevuelveCeros(t *testing.T) {
	f, configUC := newConfigFixture(t)
	ctx := context.Background()

	require.NoError(t, f.config.Replace(ctx, entity.FinancialConfig{
		Rent: decimal.NewFromInt(40_000),
	}))

	out, err := configUC.Get(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.True(t, out.Rent.IsZero())
}

func TestConfigGet_SinCorteDevuelveElVigente(t *testing.T) {
	f, configUC := newConfigFixture(t)
	ctx := context.Background()

	require.NoError(t, f.config.Replace(ctx, entity.FinancialConfig{
		Misc: decimal.NewFromInt(1_234),
	}))

	out, err := configUC.Get(ctx, time.Time{})
	require.NoError(t, err)
	assert.True(t, out.Misc.Equal(decimal.NewFromInt(1_234)), "sin corte no aplica la regla de arranque")
}
