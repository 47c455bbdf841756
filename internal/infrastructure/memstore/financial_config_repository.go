package memstore

import (
	"context"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

var _ repository.FinancialConfigRepository = (*FinancialConfigRepository)(nil)

// FinancialConfigRepository implementa el puerto del libro manual singleton.
type FinancialConfigRepository struct {
	s *Store
}

// NewFinancialConfigRepository construye el repositorio.
func NewFinancialConfigRepository(s *Store) *FinancialConfigRepository {
	return &FinancialConfigRepository{s: s}
}

// Get devuelve el libro manual vigente.
func (r *FinancialConfigRepository) Get(ctx context.Context) (entity.FinancialConfig, error) {
	if err := r.s.delay(ctx); err != nil {
		return entity.FinancialConfig{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.financial, nil
}

// Replace sustituye el libro completo (sin auditoría por rubro).
func (r *FinancialConfigRepository) Replace(ctx context.Context, cfg entity.FinancialConfig) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.financial = cfg
	return nil
}
