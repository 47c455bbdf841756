package dto

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LedgerAmount decimal con deserialización tolerante para el libro manual:
// acepta número JSON, string numérico, string vacío o null. Cualquier valor no
// numérico se coacciona a 0 en lugar de rechazarse, para que el libro sea
// siempre renderizable.
type LedgerAmount struct {
	decimal.Decimal
}

// UnmarshalJSON implementa la coacción a 0 de entradas no numéricas.
func (a *LedgerAmount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(data), `"`)))
	if s == "" || s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}
