package repository

import (
	"context"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
)

// MessageRepository define el puerto de persistencia para Message (chat).
type MessageRepository interface {
	Create(ctx context.Context, msg *entity.Message) error
	GetByID(ctx context.Context, id string) (*entity.Message, error)
	// ListByParticipant devuelve los mensajes donde el usuario es emisor o
	// receptor, en orden cronológico ascendente.
	ListByParticipant(ctx context.Context, userID string) ([]*entity.Message, error)
	Update(ctx context.Context, msg *entity.Message) error
	Delete(ctx context.Context, id string) error
}
