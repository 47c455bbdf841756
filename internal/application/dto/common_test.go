package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgepark/estate-crm/internal/application/dto"
)

// El libro manual debe ser siempre renderizable: cualquier entrada no numérica
// se coacciona a 0 en lugar de rechazar la petición completa.
func TestLedgerAmount_CoaccionDeEntradasNoNumericas(t *testing.T) {
	cases := []struct {
		name string
		json string
		want decimal.Decimal
	}{
		{"numero", `{"rent": 40000}`, decimal.NewFromInt(40_000)},
		{"decimal", `{"rent": 1250.75}`, decimal.NewFromFloat(1250.75)},
		{"string numerico", `{"rent": "25000"}`, decimal.NewFromInt(25_000)},
		{"string vacio", `{"rent": ""}`, decimal.Zero},
		{"texto", `{"rent": "no aplica"}`, decimal.Zero},
		{"null", `{"rent": null}`, decimal.Zero},
		{"ausente", `{}`, decimal.Zero},
		{"negativo", `{"rent": -500}`, decimal.NewFromInt(-500)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var in dto.UpdateFinancialConfigRequest
			require.NoError(t, json.Unmarshal([]byte(tc.json), &in),
				"la deserialización nunca debe fallar por un rubro no numérico")
			assert.True(t, in.Rent.Decimal.Equal(tc.want),
				"esperado %s, obtenido %s", tc.want, in.Rent.Decimal)
		})
	}
}
