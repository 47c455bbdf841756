// Package memstore implementa los repositorios del dominio sobre un almacén
// en memoria inyectable. Modela la frontera del servicio real: latencia
// simulada opcional y un TxRunner que agrupa mutaciones multi-entidad bajo un
// único escritor.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
)

// Store es el almacén en memoria compartido por todos los repositorios.
// Se construye explícitamente y se pasa a los llamadores (nada de singletons);
// cada test crea el suyo con New().
type Store struct {
	mu      sync.RWMutex
	latency time.Duration

	agents     []*entity.Agent
	customers  []*entity.Customer
	properties []*entity.Property
	messages   []*entity.Message
	financial  entity.FinancialConfig
}

// Option configura el Store al construirlo.
type Option func(*Store)

// WithLatency activa una latencia simulada por operación (cancelable por ctx).
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// New construye un Store vacío con el libro manual en ceros.
func New(opts ...Option) *Store {
	s := &Store{financial: entity.ZeroFinancialConfig()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// delay simula la latencia de red de la frontera de servicio.
func (s *Store) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.latency):
		return nil
	}
}

// ── Copias defensivas ─────────────────────────────────────────────────────────
// El almacén conserva la única versión mutable de cada entidad; todo lo que
// entra o sale se copia, incluidos los slices internos.

func cloneAgent(a *entity.Agent) *entity.Agent {
	if a == nil {
		return nil
	}
	cp := *a
	cp.Targets = append([]entity.TargetRecord(nil), a.Targets...)
	return &cp
}

func cloneCustomer(c *entity.Customer) *entity.Customer {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func cloneProperty(p *entity.Property) *entity.Property {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Images = append([]string(nil), p.Images...)
	return &cp
}

func cloneMessage(m *entity.Message) *entity.Message {
	if m == nil {
		return nil
	}
	cp := *m
	cp.Images = append([]string(nil), m.Images...)
	return &cp
}
