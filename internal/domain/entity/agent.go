package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para usuarios del sistema.
const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

// TargetRecord meta de ventas de un agente para un rango de fechas.
// La pareja (StartDate, EndDate) es la clave: nunca hay dos registros con el
// mismo rango exacto (upsert sobre esa clave compuesta).
type TargetRecord struct {
	StartDate time.Time
	EndDate   time.Time
	Target    int
}

// Agent representa un agente inmobiliario. Points y SalesCount son acumulados
// de por vida, alimentados por el cierre de tratos; CommissionRate es el monto
// en moneda que paga cada 10 puntos.
type Agent struct {
	ID             string
	Name           string
	Email          string
	Role           string // siempre "agent"; el admin no vive en el almacén
	PasswordHash   string // bcrypt, nunca en claro tras persistir
	Active         bool
	Points         int
	CommissionRate decimal.Decimal
	SalesCount     int
	Targets        []TargetRecord
	CreatedAt      time.Time
}

// TargetIndex devuelve la posición del target con exactamente ese rango, o -1.
func (a *Agent) TargetIndex(start, end time.Time) int {
	for i, t := range a.Targets {
		if t.StartDate.Equal(start) && t.EndDate.Equal(end) {
			return i
		}
	}
	return -1
}
