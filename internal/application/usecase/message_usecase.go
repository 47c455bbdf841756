package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/domain"
	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

// MessageUseCase CRUD del chat interno. Colección paralela: no participa en
// estadísticas ni reportes.
type MessageUseCase struct {
	repo repository.MessageRepository
}

// NewMessageUseCase construye el caso de uso.
func NewMessageUseCase(repo repository.MessageRepository) *MessageUseCase {
	return &MessageUseCase{repo: repo}
}

// ListByUser devuelve la conversación completa del usuario, cronológica.
func (uc *MessageUseCase) ListByUser(ctx context.Context, userID string) ([]dto.MessageResponse, error) {
	msgs, err := uc.repo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, *toMessageResponse(m))
	}
	return out, nil
}

// Send crea un mensaje nuevo, no leído.
func (uc *MessageUseCase) Send(ctx context.Context, fromID string, in dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if in.ToID == "" || (in.Text == "" && len(in.Images) == 0) {
		return nil, domain.ErrInvalidInput
	}
	msg := &entity.Message{
		ID:        uuid.New().String(),
		FromID:    fromID,
		ToID:      in.ToID,
		Text:      in.Text,
		Images:    in.Images,
		Timestamp: time.Now(),
		Read:      false,
		Edited:    false,
	}
	if err := uc.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return toMessageResponse(msg), nil
}

// Edit cambia el texto y marca el mensaje como editado. Solo el emisor puede.
func (uc *MessageUseCase) Edit(ctx context.Context, id, requesterID, text string) (*dto.MessageResponse, error) {
	msg, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, nil
	}
	if msg.FromID != requesterID {
		return nil, domain.ErrForbidden
	}
	msg.Text = text
	msg.Edited = true
	if err := uc.repo.Update(ctx, msg); err != nil {
		return nil, err
	}
	return toMessageResponse(msg), nil
}

// Delete elimina el mensaje.
func (uc *MessageUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// MarkRead marca como leídos los mensajes del lote dirigidos al usuario.
func (uc *MessageUseCase) MarkRead(ctx context.Context, userID string, ids []string) error {
	for _, id := range ids {
		msg, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if msg == nil || msg.ToID != userID || msg.Read {
			continue
		}
		msg.Read = true
		if err := uc.repo.Update(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

func toMessageResponse(m *entity.Message) *dto.MessageResponse {
	if m == nil {
		return nil
	}
	images := m.Images
	if images == nil {
		images = []string{}
	}
	return &dto.MessageResponse{
		ID:        m.ID,
		FromID:    m.FromID,
		ToID:      m.ToID,
		Text:      m.Text,
		Images:    images,
		Timestamp: m.Timestamp,
		Read:      m.Read,
		Edited:    m.Edited,
	}
}
