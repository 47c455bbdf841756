package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un inmueble listado.
const (
	PropertyStatusAvailable = "Available"
	PropertyStatusPending   = "Pending"
	PropertyStatusSold      = "Sold"
)

// Tipos de inmueble aceptados.
const (
	PropertyTypeHouse     = "House"
	PropertyTypeApartment = "Apartment"
	PropertyTypeCondo     = "Condo"
	PropertyTypeLand      = "Land"
)

// Property representa un inmueble del inventario. Quantity es el cupo
// disponible (unidades idénticas de un mismo listado); VATTax y OtherCost son
// los costos por transacción que se cargan al estado de resultados cuando una
// unidad se vende.
//
// Invariante: Quantity == 0 ⇒ Status == Sold. Si Quantity vuelve a subir por
// edición manual estando Sold, el estado regresa a Available.
type Property struct {
	ID        string
	Title     string
	Address   string
	Price     decimal.Decimal
	Type      string
	Status    string
	Quantity  int
	AgentID   string
	Images    []string
	VATTax    decimal.Decimal
	OtherCost decimal.Decimal
	CreatedAt time.Time
}

// TransactionCost es el costo total por unidad vendida (IVA + otros).
func (p *Property) TransactionCost() decimal.Decimal {
	return p.VATTax.Add(p.OtherCost)
}
