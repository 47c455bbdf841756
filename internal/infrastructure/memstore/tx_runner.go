package memstore

import (
	"context"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

// TxRunner ejecuta callbacks multi-entidad como una unidad atómica.
//
// El efecto colateral de cerrar un trato (puntos al agente, decremento de
// inventario, merge del cliente) toca tres colecciones; si se ejecutara con los
// repositorios normales, un fallo intermedio dejaría comisión otorgada sin
// inventario descontado o viceversa. Run toma el lock de escritura una sola
// vez, entrega repos sin lock propio atados a esa sección crítica y, si fn
// devuelve error, restaura el estado previo completo (rollback).
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn bajo el lock de escritura con Commit implícito o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	agentRepo repository.AgentRepository,
	customerRepo repository.CustomerRepository,
	propertyRepo repository.PropertyRepository,
) error) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snapAgents := snapshotAgents(r.s.agents)
	snapCustomers := snapshotCustomers(r.s.customers)
	snapProperties := snapshotProperties(r.s.properties)

	err := fn(&txAgentRepo{s: r.s}, &txCustomerRepo{s: r.s}, &txPropertyRepo{s: r.s})
	if err != nil {
		r.s.agents = snapAgents
		r.s.customers = snapCustomers
		r.s.properties = snapProperties
		return err
	}
	return nil
}

func snapshotAgents(in []*entity.Agent) []*entity.Agent {
	out := make([]*entity.Agent, 0, len(in))
	for _, a := range in {
		out = append(out, cloneAgent(a))
	}
	return out
}

func snapshotCustomers(in []*entity.Customer) []*entity.Customer {
	out := make([]*entity.Customer, 0, len(in))
	for _, c := range in {
		out = append(out, cloneCustomer(c))
	}
	return out
}

func snapshotProperties(in []*entity.Property) []*entity.Property {
	out := make([]*entity.Property, 0, len(in))
	for _, p := range in {
		out = append(out, cloneProperty(p))
	}
	return out
}

// ── Repos atados a la transacción ─────────────────────────────────────────────
// Operan sin lock ni latencia: Run ya sostiene el lock de escritura.

type txAgentRepo struct{ s *Store }

func (r *txAgentRepo) Create(_ context.Context, a *entity.Agent) error {
	r.s.agents = append(r.s.agents, cloneAgent(a))
	return nil
}

func (r *txAgentRepo) GetByID(_ context.Context, id string) (*entity.Agent, error) {
	return cloneAgent(findAgent(r.s.agents, id)), nil
}

func (r *txAgentRepo) GetByEmail(_ context.Context, email string) (*entity.Agent, error) {
	for _, a := range r.s.agents {
		if a.Email == email {
			return cloneAgent(a), nil
		}
	}
	return nil, nil
}

func (r *txAgentRepo) List(_ context.Context) ([]*entity.Agent, error) {
	return snapshotAgents(r.s.agents), nil
}

func (r *txAgentRepo) Update(_ context.Context, agent *entity.Agent) error {
	for i, a := range r.s.agents {
		if a.ID == agent.ID {
			r.s.agents[i] = cloneAgent(agent)
			return nil
		}
	}
	return nil
}

func (r *txAgentRepo) Delete(_ context.Context, id string) error {
	r.s.agents = deleteAgent(r.s.agents, id)
	return nil
}

type txCustomerRepo struct{ s *Store }

func (r *txCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.customers = append(r.s.customers, cloneCustomer(c))
	return nil
}

func (r *txCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return cloneCustomer(findCustomer(r.s.customers, id)), nil
}

func (r *txCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	return snapshotCustomers(r.s.customers), nil
}

func (r *txCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	for i, c := range r.s.customers {
		if c.ID == customer.ID {
			r.s.customers[i] = cloneCustomer(customer)
			return nil
		}
	}
	return nil
}

func (r *txCustomerRepo) Delete(_ context.Context, id string) error {
	out := r.s.customers[:0]
	for _, c := range r.s.customers {
		if c.ID != id {
			out = append(out, c)
		}
	}
	r.s.customers = out
	return nil
}

type txPropertyRepo struct{ s *Store }

func (r *txPropertyRepo) Create(_ context.Context, p *entity.Property) error {
	r.s.properties = append(r.s.properties, cloneProperty(p))
	return nil
}

func (r *txPropertyRepo) GetByID(_ context.Context, id string) (*entity.Property, error) {
	return cloneProperty(findProperty(r.s.properties, id)), nil
}

func (r *txPropertyRepo) List(_ context.Context) ([]*entity.Property, error) {
	return snapshotProperties(r.s.properties), nil
}

func (r *txPropertyRepo) Update(_ context.Context, property *entity.Property) error {
	for i, p := range r.s.properties {
		if p.ID == property.ID {
			r.s.properties[i] = cloneProperty(property)
			return nil
		}
	}
	return nil
}

func (r *txPropertyRepo) Delete(_ context.Context, id string) error {
	out := r.s.properties[:0]
	for _, p := range r.s.properties {
		if p.ID != id {
			out = append(out, p)
		}
	}
	r.s.properties = out
	return nil
}
