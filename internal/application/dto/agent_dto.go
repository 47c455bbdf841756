package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAgentRequest datos para dar de alta un agente.
type CreateAgentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // opcional; si falta se usa la clave demo
}

// UpdateCommissionRequest cambio de tarifa de comisión (moneda por 10 puntos).
type UpdateCommissionRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// TargetRequest upsert de meta por rango exacto (startDate, endDate).
type TargetRequest struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Target    int       `json:"target"`
}

// RemoveTargetRequest baja de meta por su clave compuesta.
type RemoveTargetRequest struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// ResetPasswordRequest nueva contraseña para el agente.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// TargetDTO meta de ventas de un rango.
type TargetDTO struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Target    int       `json:"target"`
}

// AgentResponse agente sin credenciales.
type AgentResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           string          `json:"role"`
	Active         bool            `json:"active"`
	Points         int             `json:"points"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
	SalesCount     int             `json:"salesCount"`
	Targets        []TargetDTO     `json:"targets"`
	CreatedAt      time.Time       `json:"createdAt"`
}
