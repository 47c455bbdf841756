package memstore

import (
	"context"
	"sort"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

var _ repository.MessageRepository = (*MessageRepository)(nil)

// MessageRepository implementa repository.MessageRepository sobre el Store.
type MessageRepository struct {
	s *Store
}

// NewMessageRepository construye el repositorio.
func NewMessageRepository(s *Store) *MessageRepository {
	return &MessageRepository{s: s}
}

// Create agrega el mensaje al almacén.
func (r *MessageRepository) Create(ctx context.Context, msg *entity.Message) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.messages = append(r.s.messages, cloneMessage(msg))
	return nil
}

// GetByID devuelve el mensaje o (nil, nil) si no existe.
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*entity.Message, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.messages {
		if m.ID == id {
			return cloneMessage(m), nil
		}
	}
	return nil, nil
}

// ListByParticipant devuelve los mensajes del usuario en orden cronológico.
func (r *MessageRepository) ListByParticipant(ctx context.Context, userID string) ([]*entity.Message, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Message, 0)
	for _, m := range r.s.messages {
		if m.FromID == userID || m.ToID == userID {
			out = append(out, cloneMessage(m))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

// Update reemplaza el mensaje con el mismo ID. Sobre un ID inexistente es no-op.
func (r *MessageRepository) Update(ctx context.Context, msg *entity.Message) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, m := range r.s.messages {
		if m.ID == msg.ID {
			r.s.messages[i] = cloneMessage(msg)
			return nil
		}
	}
	return nil
}

// Delete elimina el mensaje. Sobre un ID inexistente es no-op.
func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.s.messages[:0]
	for _, m := range r.s.messages {
		if m.ID != id {
			out = append(out, m)
		}
	}
	r.s.messages = out
	return nil
}
