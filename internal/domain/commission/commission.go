// Package commission convierte tratos cerrados en puntos y comisiones
// monetarias (servicio de dominio, sin estado).
package commission

import (
	"github.com/shopspring/decimal"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
)

// PointsPerSale puntos otorgados por cada trato cerrado.
const PointsPerSale = 10

// Payout comisión de un agente para un período.
type Payout struct {
	AgentID string
	Name    string
	Points  int
	Amount  decimal.Decimal
}

// Payouts calcula la comisión del período por agente:
//
//	puntos = tratosCerrados × 10
//	monto  = (puntos / 10) × CommissionRate
//
// closed debe venir ya filtrado a los clientes Closed cuyo UpdatedAt cae en el
// período; agents a los agentes visibles al corte. La tarifa usada es la
// CommissionRate vigente del agente, no la vigente al cerrar el trato: si un
// administrador la cambia después, los reportes históricos cambian con ella
// (comportamiento acordado con el negocio, pendiente de revisión).
func Payouts(agents []*entity.Agent, closed []*entity.Customer) (total decimal.Decimal, payouts []Payout) {
	total = decimal.Zero
	payouts = make([]Payout, 0, len(agents))
	for _, agent := range agents {
		count := 0
		for _, c := range closed {
			if c.AgentID == agent.ID {
				count++
			}
		}
		points := count * PointsPerSale
		amount := agent.CommissionRate.Mul(decimal.NewFromInt(int64(count)))
		total = total.Add(amount)
		payouts = append(payouts, Payout{
			AgentID: agent.ID,
			Name:    agent.Name,
			Points:  points,
			Amount:  amount,
		})
	}
	return total, payouts
}
