package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/domain"
	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/period"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

// PropertyUseCase casos de uso CRUD para inmuebles. Update es el único punto
// de edición manual de Quantity y aplica el invariante cantidad⇄estado.
type PropertyUseCase struct {
	repo repository.PropertyRepository
}

// NewPropertyUseCase construye el caso de uso.
func NewPropertyUseCase(repo repository.PropertyRepository) *PropertyUseCase {
	return &PropertyUseCase{repo: repo}
}

// List devuelve los inmuebles visibles al corte `end`, por creación descendente.
func (uc *PropertyUseCase) List(ctx context.Context, end time.Time) ([]dto.PropertyResponse, error) {
	properties, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Property, 0, len(properties))
	for _, p := range properties {
		if period.ExistedBy(p.CreatedAt, end) {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	out := make([]dto.PropertyResponse, 0, len(filtered))
	for _, p := range filtered {
		out = append(out, *toPropertyResponse(p))
	}
	return out, nil
}

// Create lista un inmueble nuevo; sin cantidad explícita se asume 1 unidad.
func (uc *PropertyUseCase) Create(ctx context.Context, in dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.PropertyStatusAvailable
	}
	if quantity == 0 {
		status = entity.PropertyStatusSold
	}
	property := &entity.Property{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Address:   in.Address,
		Price:     in.Price,
		Type:      in.Type,
		Status:    status,
		Quantity:  quantity,
		AgentID:   in.AgentID,
		Images:    in.Images,
		VATTax:    in.VATTax,
		OtherCost: in.OtherCost,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, property); err != nil {
		return nil, err
	}
	return toPropertyResponse(property), nil
}

// Update aplica un merge parcial. Cuando la petición trae Quantity:
// cupo 0 fuerza Sold; cupo > 0 estando Sold regresa a Available. Un estado
// fijado explícitamente en la misma petición (p. ej. Pending) se respeta salvo
// por la regla de cupo 0. Sobre un id inexistente devuelve (nil, nil).
func (uc *PropertyUseCase) Update(ctx context.Context, id string, in dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	property, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, nil
	}
	if in.Title != nil {
		property.Title = *in.Title
	}
	if in.Address != nil {
		property.Address = *in.Address
	}
	if in.Price != nil {
		property.Price = *in.Price
	}
	if in.Type != nil {
		property.Type = *in.Type
	}
	if in.Status != nil {
		property.Status = *in.Status
	}
	if in.AgentID != nil {
		property.AgentID = *in.AgentID
	}
	if in.Images != nil {
		property.Images = in.Images
	}
	if in.VATTax != nil {
		property.VATTax = *in.VATTax
	}
	if in.OtherCost != nil {
		property.OtherCost = *in.OtherCost
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		property.Quantity = *in.Quantity
		if property.Quantity == 0 {
			property.Status = entity.PropertyStatusSold
		} else if property.Status == entity.PropertyStatusSold {
			property.Status = entity.PropertyStatusAvailable
		}
	}
	if err := uc.repo.Update(ctx, property); err != nil {
		return nil, err
	}
	return toPropertyResponse(property), nil
}

// Delete elimina el inmueble; sus ventas desaparecen de todos los reportes.
func (uc *PropertyUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toPropertyResponse(p *entity.Property) *dto.PropertyResponse {
	if p == nil {
		return nil
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return &dto.PropertyResponse{
		ID:        p.ID,
		Title:     p.Title,
		Address:   p.Address,
		Price:     p.Price,
		Type:      p.Type,
		Status:    p.Status,
		Quantity:  p.Quantity,
		AgentID:   p.AgentID,
		Images:    images,
		VATTax:    p.VATTax,
		OtherCost: p.OtherCost,
		CreatedAt: p.CreatedAt,
	}
}
