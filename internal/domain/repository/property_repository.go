package repository

import (
	"context"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
)

// PropertyRepository define el puerto de persistencia para Property.
type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	List(ctx context.Context) ([]*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id string) error
}
