package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePropertyRequest datos para listar un inmueble.
type CreatePropertyRequest struct {
	Title     string          `json:"title"`
	Address   string          `json:"address"`
	Price     decimal.Decimal `json:"price"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	Quantity  *int            `json:"quantity"` // nil = 1 unidad
	AgentID   string          `json:"agentId"`
	Images    []string        `json:"images"`
	VATTax    decimal.Decimal `json:"vatTax"`
	OtherCost decimal.Decimal `json:"otherCost"`
}

// UpdatePropertyRequest merge parcial. Si Quantity viene presente se aplica el
// invariante cantidad⇄estado (0 fuerza Sold; >0 estando Sold regresa a Available).
type UpdatePropertyRequest struct {
	Title     *string          `json:"title"`
	Address   *string          `json:"address"`
	Price     *decimal.Decimal `json:"price"`
	Type      *string          `json:"type"`
	Status    *string          `json:"status"`
	Quantity  *int             `json:"quantity"`
	AgentID   *string          `json:"agentId"`
	Images    []string         `json:"images"`
	VATTax    *decimal.Decimal `json:"vatTax"`
	OtherCost *decimal.Decimal `json:"otherCost"`
}

// PropertyResponse inmueble del inventario.
type PropertyResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Address   string          `json:"address"`
	Price     decimal.Decimal `json:"price"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	Quantity  int             `json:"quantity"`
	AgentID   string          `json:"agentId,omitempty"`
	Images    []string        `json:"images"`
	VATTax    decimal.Decimal `json:"vatTax"`
	OtherCost decimal.Decimal `json:"otherCost"`
	CreatedAt time.Time       `json:"createdAt"`
}
