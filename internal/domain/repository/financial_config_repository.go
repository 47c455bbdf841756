package repository

import (
	"context"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
)

// FinancialConfigRepository define el puerto para el libro manual singleton.
// No hay historial: Replace sustituye el registro completo.
type FinancialConfigRepository interface {
	Get(ctx context.Context) (entity.FinancialConfig, error)
	Replace(ctx context.Context, cfg entity.FinancialConfig) error
}
