package usecase

import (
	"context"

	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una unidad atómica.
// El efecto de cerrar un trato (puntos + inventario + merge) debe comprometerse
// o revertirse completo; la implementación vive en infrastructure/memstore.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		agentRepo repository.AgentRepository,
		customerRepo repository.CustomerRepository,
		propertyRepo repository.PropertyRepository,
	) error) error
}
