package memstore

import (
	"context"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository implementa repository.CustomerRepository sobre el Store.
type CustomerRepository struct {
	s *Store
}

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository(s *Store) *CustomerRepository {
	return &CustomerRepository{s: s}
}

// Create agrega el cliente al almacén.
func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers = append(r.s.customers, cloneCustomer(customer))
	return nil
}

// GetByID devuelve el cliente o (nil, nil) si no existe.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneCustomer(findCustomer(r.s.customers, id)), nil
}

// List devuelve todos los clientes en orden de inserción.
func (r *CustomerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		out = append(out, cloneCustomer(c))
	}
	return out, nil
}

// Update reemplaza el cliente con el mismo ID. Sobre un ID inexistente es no-op.
func (r *CustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.customers {
		if c.ID == customer.ID {
			r.s.customers[i] = cloneCustomer(customer)
			return nil
		}
	}
	return nil
}

// Delete elimina el cliente. Sobre un ID inexistente es no-op.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.s.customers[:0]
	for _, c := range r.s.customers {
		if c.ID != id {
			out = append(out, c)
		}
	}
	r.s.customers = out
	return nil
}

func findCustomer(customers []*entity.Customer, id string) *entity.Customer {
	for _, c := range customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}
