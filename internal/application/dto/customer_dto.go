package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest datos para dar de alta un cliente.
type CreateCustomerRequest struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Budget     decimal.Decimal `json:"budget"`
	Status     string          `json:"status"`
	AgentID    string          `json:"agentId"`
	PropertyID string          `json:"propertyId"`
}

// UpdateCustomerRequest merge parcial; solo los campos presentes se aplican.
// Un cambio de Status hacia Closed dispara los efectos de comisión e inventario.
type UpdateCustomerRequest struct {
	Name       *string          `json:"name"`
	Email      *string          `json:"email"`
	Phone      *string          `json:"phone"`
	Budget     *decimal.Decimal `json:"budget"`
	Status     *string          `json:"status"`
	AgentID    *string          `json:"agentId"`
	PropertyID *string          `json:"propertyId"`
}

// CustomerResponse cliente del CRM.
type CustomerResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Budget     decimal.Decimal `json:"budget"`
	Status     string          `json:"status"`
	AgentID    string          `json:"agentId,omitempty"`
	PropertyID string          `json:"propertyId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
