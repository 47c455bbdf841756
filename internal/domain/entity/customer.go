package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del embudo de ventas. La progresión Lead → Negotiation → Closed es
// convención del negocio, no una máquina de estados dura.
const (
	CustomerStatusLead        = "Lead"
	CustomerStatusNegotiation = "Negotiation"
	CustomerStatusClosed      = "Closed"
)

// Customer representa un cliente del CRM. AgentID y PropertyID son referencias
// débiles (solo identificadores, resueltos por lookup al leer). PropertyID solo
// tiene significado cuando el cliente está Closed.
//
// UpdatedAt es la marca que determina la pertenencia a un período para la
// agregación de tratos cerrados — no CreatedAt.
type Customer struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Budget     decimal.Decimal
	Status     string
	AgentID    string
	PropertyID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsClosed indica si el cliente representa un trato cerrado.
func (c *Customer) IsClosed() bool { return c.Status == CustomerStatusClosed }
