package commission_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgepark/estate-crm/internal/domain/commission"
	"github.com/ridgepark/estate-crm/internal/domain/entity"
)

func closedFor(agentID string, n int) []*entity.Customer {
	out := make([]*entity.Customer, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &entity.Customer{Status: entity.CustomerStatusClosed, AgentID: agentID})
	}
	return out
}

func TestPayouts_PuntosYMontoPorTratoCerrado(t *testing.T) {
	agent := &entity.Agent{ID: "a1", Name: "James", CommissionRate: decimal.NewFromInt(500)}

	total, payouts := commission.Payouts([]*entity.Agent{agent}, closedFor("a1", 3))

	require.Len(t, payouts, 1)
	assert.Equal(t, 30, payouts[0].Points, "3 tratos × 10 puntos")
	assert.True(t, payouts[0].Amount.Equal(decimal.NewFromInt(1500)), "3 tratos × tarifa 500")
	assert.True(t, total.Equal(decimal.NewFromInt(1500)))
}

func TestPayouts_AgenteSinTratosApareceEnCero(t *testing.T) {
	agents := []*entity.Agent{
		{ID: "a1", Name: "James", CommissionRate: decimal.NewFromInt(500)},
		{ID: "a2", Name: "Sarah", CommissionRate: decimal.NewFromInt(450)},
	}

	total, payouts := commission.Payouts(agents, closedFor("a1", 1))

	require.Len(t, payouts, 2)
	assert.True(t, payouts[1].Amount.IsZero(), "agente sin cierres debe aparecer con monto 0")
	assert.Equal(t, 0, payouts[1].Points)
	assert.True(t, total.Equal(decimal.NewFromInt(500)))
}

func TestPayouts_UsaLaTarifaVigente(t *testing.T) {
	// La tarifa usada es la actual del agente: si cambió después del cierre, el
	// recálculo histórico usa la nueva.
	agent := &entity.Agent{ID: "a1", Name: "James", CommissionRate: decimal.NewFromInt(500)}
	closed := closedFor("a1", 2)

	agent.CommissionRate = decimal.NewFromInt(800)
	total, _ := commission.Payouts([]*entity.Agent{agent}, closed)

	assert.True(t, total.Equal(decimal.NewFromInt(1600)))
}

func TestPayouts_TratosDeAgenteAjenoNoSuman(t *testing.T) {
	agent := &entity.Agent{ID: "a1", Name: "James", CommissionRate: decimal.NewFromInt(500)}

	total, payouts := commission.Payouts([]*entity.Agent{agent}, closedFor("otro", 4))

	require.Len(t, payouts, 1)
	assert.True(t, total.IsZero())
}
