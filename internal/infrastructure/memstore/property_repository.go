package memstore

import (
	"context"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

var _ repository.PropertyRepository = (*PropertyRepository)(nil)

// PropertyRepository implementa repository.PropertyRepository sobre el Store.
type PropertyRepository struct {
	s *Store
}

// NewPropertyRepository construye el repositorio.
func NewPropertyRepository(s *Store) *PropertyRepository {
	return &PropertyRepository{s: s}
}

// Create agrega el inmueble al almacén.
func (r *PropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.properties = append(r.s.properties, cloneProperty(property))
	return nil
}

// GetByID devuelve el inmueble o (nil, nil) si no existe.
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneProperty(findProperty(r.s.properties, id)), nil
}

// List devuelve todos los inmuebles en orden de inserción.
func (r *PropertyRepository) List(ctx context.Context) ([]*entity.Property, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Property, 0, len(r.s.properties))
	for _, p := range r.s.properties {
		out = append(out, cloneProperty(p))
	}
	return out, nil
}

// Update reemplaza el inmueble con el mismo ID. Sobre un ID inexistente es no-op.
func (r *PropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.properties {
		if p.ID == property.ID {
			r.s.properties[i] = cloneProperty(property)
			return nil
		}
	}
	return nil
}

// Delete elimina el inmueble. Sobre un ID inexistente es no-op.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.s.properties[:0]
	for _, p := range r.s.properties {
		if p.ID != id {
			out = append(out, p)
		}
	}
	r.s.properties = out
	return nil
}

func findProperty(properties []*entity.Property, id string) *entity.Property {
	for _, p := range properties {
		if p.ID == id {
			return p
		}
	}
	return nil
}
