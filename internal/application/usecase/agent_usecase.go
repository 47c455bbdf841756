package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/domain"
	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/period"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

// Tarifa de comisión por defecto para agentes nuevos (moneda por 10 puntos).
var defaultCommissionRate = decimal.NewFromInt(100)

const demoPassword = "123456"

// AgentUseCase casos de uso CRUD y de gestión para agentes.
type AgentUseCase struct {
	repo repository.AgentRepository
}

// NewAgentUseCase construye el caso de uso.
func NewAgentUseCase(repo repository.AgentRepository) *AgentUseCase {
	return &AgentUseCase{repo: repo}
}

// List devuelve los agentes que ya existían al corte `end` (cero = todos).
func (uc *AgentUseCase) List(ctx context.Context, end time.Time) ([]dto.AgentResponse, error) {
	agents, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AgentResponse, 0, len(agents))
	for _, a := range agents {
		if period.ExistedBy(a.CreatedAt, end) {
			out = append(out, *toAgentResponse(a))
		}
	}
	return out, nil
}

// Create da de alta un agente: tarifa 100, cero puntos, activo, sin metas.
func (uc *AgentUseCase) Create(ctx context.Context, in dto.CreateAgentRequest) (*dto.AgentResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	password := in.Password
	if password == "" {
		password = demoPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	agent := &entity.Agent{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Email:          in.Email,
		Role:           entity.RoleAgent,
		PasswordHash:   string(hash),
		Active:         true,
		Points:         0,
		CommissionRate: defaultCommissionRate,
		SalesCount:     0,
		Targets:        []entity.TargetRecord{},
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(ctx, agent); err != nil {
		return nil, err
	}
	return toAgentResponse(agent), nil
}

// UpdateCommission cambia la tarifa vigente del agente. Los reportes históricos
// se recalculan con la tarifa nueva (comportamiento acordado, ver DESIGN.md).
func (uc *AgentUseCase) UpdateCommission(ctx context.Context, id string, rate decimal.Decimal) (*dto.AgentResponse, error) {
	agent, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, nil
	}
	agent.CommissionRate = rate
	if err := uc.repo.Update(ctx, agent); err != nil {
		return nil, err
	}
	return toAgentResponse(agent), nil
}

// UpsertTarget inserta o sobrescribe la meta con exactamente ese rango
// (startDate, endDate): la lista nunca tiene dos entradas con la misma pareja.
func (uc *AgentUseCase) UpsertTarget(ctx context.Context, id string, in dto.TargetRequest) (*dto.AgentResponse, error) {
	agent, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, nil
	}
	if i := agent.TargetIndex(in.StartDate, in.EndDate); i >= 0 {
		agent.Targets[i].Target = in.Target
	} else {
		agent.Targets = append(agent.Targets, entity.TargetRecord{
			StartDate: in.StartDate,
			EndDate:   in.EndDate,
			Target:    in.Target,
		})
	}
	if err := uc.repo.Update(ctx, agent); err != nil {
		return nil, err
	}
	return toAgentResponse(agent), nil
}

// RemoveTarget elimina la meta con exactamente ese rango.
func (uc *AgentUseCase) RemoveTarget(ctx context.Context, id string, start, end time.Time) (*dto.AgentResponse, error) {
	agent, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, nil
	}
	if i := agent.TargetIndex(start, end); i >= 0 {
		agent.Targets = append(agent.Targets[:i], agent.Targets[i+1:]...)
	}
	if err := uc.repo.Update(ctx, agent); err != nil {
		return nil, err
	}
	return toAgentResponse(agent), nil
}

// ResetPassword fija una nueva contraseña (bcrypt) para el agente.
func (uc *AgentUseCase) ResetPassword(ctx context.Context, id, password string) error {
	if password == "" {
		return domain.ErrInvalidInput
	}
	agent, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if agent == nil {
		return nil // no-op sobre id inexistente
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	agent.PasswordHash = string(hash)
	return uc.repo.Update(ctx, agent)
}

// ToggleStatus invierte el flag Active. Un agente inactivo no puede ingresar.
func (uc *AgentUseCase) ToggleStatus(ctx context.Context, id string) (*dto.AgentResponse, error) {
	agent, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, nil
	}
	agent.Active = !agent.Active
	if err := uc.repo.Update(ctx, agent); err != nil {
		return nil, err
	}
	return toAgentResponse(agent), nil
}

// Delete elimina el agente. Irreversible y sin conciencia de período: el agente
// desaparece también de los reportes históricos.
func (uc *AgentUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toAgentResponse(a *entity.Agent) *dto.AgentResponse {
	if a == nil {
		return nil
	}
	targets := make([]dto.TargetDTO, 0, len(a.Targets))
	for _, t := range a.Targets {
		targets = append(targets, dto.TargetDTO{
			StartDate: t.StartDate,
			EndDate:   t.EndDate,
			Target:    t.Target,
		})
	}
	return &dto.AgentResponse{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		Role:           a.Role,
		Active:         a.Active,
		Points:         a.Points,
		CommissionRate: a.CommissionRate,
		SalesCount:     a.SalesCount,
		Targets:        targets,
		CreatedAt:      a.CreatedAt,
	}
}
