package repository

import (
	"context"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
)

// AgentRepository define el puerto de persistencia para Agent (DIP).
// Las lecturas de un id inexistente devuelven (nil, nil), nunca error.
type AgentRepository interface {
	Create(ctx context.Context, agent *entity.Agent) error
	GetByID(ctx context.Context, id string) (*entity.Agent, error)
	GetByEmail(ctx context.Context, email string) (*entity.Agent, error)
	List(ctx context.Context) ([]*entity.Agent, error)
	Update(ctx context.Context, agent *entity.Agent) error
	Delete(ctx context.Context, id string) error
}
