package memstore

import (
	"context"

	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

var _ repository.AgentRepository = (*AgentRepository)(nil)

// AgentRepository implementa repository.AgentRepository sobre el Store.
type AgentRepository struct {
	s *Store
}

// NewAgentRepository construye el repositorio.
func NewAgentRepository(s *Store) *AgentRepository {
	return &AgentRepository{s: s}
}

// Create agrega el agente al almacén.
func (r *AgentRepository) Create(ctx context.Context, agent *entity.Agent) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.agents = append(r.s.agents, cloneAgent(agent))
	return nil
}

// GetByID devuelve el agente o (nil, nil) si no existe.
func (r *AgentRepository) GetByID(ctx context.Context, id string) (*entity.Agent, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAgent(findAgent(r.s.agents, id)), nil
}

// GetByEmail devuelve el agente con ese email o (nil, nil).
func (r *AgentRepository) GetByEmail(ctx context.Context, email string) (*entity.Agent, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.agents {
		if a.Email == email {
			return cloneAgent(a), nil
		}
	}
	return nil, nil
}

// List devuelve todos los agentes en orden de inserción.
func (r *AgentRepository) List(ctx context.Context) ([]*entity.Agent, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Agent, 0, len(r.s.agents))
	for _, a := range r.s.agents {
		out = append(out, cloneAgent(a))
	}
	return out, nil
}

// Update reemplaza el agente con el mismo ID. Sobre un ID inexistente es no-op.
func (r *AgentRepository) Update(ctx context.Context, agent *entity.Agent) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, a := range r.s.agents {
		if a.ID == agent.ID {
			r.s.agents[i] = cloneAgent(agent)
			return nil
		}
	}
	return nil
}

// Delete elimina el agente. Irreversible: desaparece también de los reportes
// históricos. Sobre un ID inexistente es no-op.
func (r *AgentRepository) Delete(ctx context.Context, id string) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.agents = deleteAgent(r.s.agents, id)
	return nil
}

func findAgent(agents []*entity.Agent, id string) *entity.Agent {
	for _, a := range agents {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func deleteAgent(agents []*entity.Agent, id string) []*entity.Agent {
	out := agents[:0]
	for _, a := range agents {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
