package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/domain"
	"github.com/ridgepark/estate-crm/internal/domain/commission"
	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/period"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes. Update concentra el efecto
// colateral de cerrar un trato, por eso necesita el TxRunner además del repo.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	tx   TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, tx TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, tx: tx}
}

// List filtra por rango de creación si vienen ambos límites; si solo viene
// `end`, por visibilidad al corte. Ordena por UpdatedAt descendente.
func (uc *CustomerUseCase) List(ctx context.Context, start, end time.Time) ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Customer, 0, len(customers))
	for _, c := range customers {
		switch {
		case !start.IsZero() && !end.IsZero():
			if period.InRange(c.CreatedAt, start, end) {
				filtered = append(filtered, c)
			}
		case !end.IsZero():
			if period.ExistedBy(c.CreatedAt, end) {
				filtered = append(filtered, c)
			}
		default:
			filtered = append(filtered, c)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})
	out := make([]dto.CustomerResponse, 0, len(filtered))
	for _, c := range filtered {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Create da de alta un cliente; el estado por defecto es Lead.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.CustomerStatusLead
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Budget:     in.Budget,
		Status:     status,
		AgentID:    in.AgentID,
		PropertyID: in.PropertyID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update aplica un merge parcial y, si el estado transiciona a Closed desde
// cualquier otro, ejecuta el efecto de cierre en la misma unidad atómica:
//
//   - el agente dueño recibe +10 puntos y +1 venta, exactamente una vez por
//     transición (re-guardar un cliente ya Closed no vuelve a otorgar);
//   - si la actualización trae PropertyID, el inmueble pierde una unidad y a
//     cupo 0 pasa a Sold.
//
// Salir de Closed no revierte nada de lo anterior (asimetría acordada con el
// negocio). Sobre un id inexistente devuelve (nil, nil).
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	var updated *entity.Customer
	err := uc.tx.Run(ctx, func(
		agentRepo repository.AgentRepository,
		customerRepo repository.CustomerRepository,
		propertyRepo repository.PropertyRepository,
	) error {
		customer, err := customerRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if customer == nil {
			return nil
		}

		oldStatus := customer.Status
		newStatus := oldStatus
		if in.Status != nil {
			newStatus = *in.Status
		}
		closing := newStatus == entity.CustomerStatusClosed && oldStatus != entity.CustomerStatusClosed

		if closing && customer.AgentID != "" {
			agent, err := agentRepo.GetByID(ctx, customer.AgentID)
			if err != nil {
				return err
			}
			if agent != nil {
				agent.Points += commission.PointsPerSale
				agent.SalesCount++
				if err := agentRepo.Update(ctx, agent); err != nil {
					return err
				}
			}
		}

		if closing && in.PropertyID != nil && *in.PropertyID != "" {
			property, err := propertyRepo.GetByID(ctx, *in.PropertyID)
			if err != nil {
				return err
			}
			if property != nil {
				if property.Quantity > 0 {
					property.Quantity--
				}
				if property.Quantity == 0 {
					property.Status = entity.PropertyStatusSold
				}
				if err := propertyRepo.Update(ctx, property); err != nil {
					return err
				}
			}
		}

		applyCustomerPatch(customer, in)
		customer.Status = newStatus
		customer.UpdatedAt = time.Now()
		if err := customerRepo.Update(ctx, customer); err != nil {
			return err
		}
		updated = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(updated), nil
}

// Delete elimina el cliente; sus tratos desaparecen de todos los reportes.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func applyCustomerPatch(c *entity.Customer, in dto.UpdateCustomerRequest) {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Budget != nil {
		c.Budget = *in.Budget
	}
	if in.AgentID != nil {
		c.AgentID = *in.AgentID
	}
	if in.PropertyID != nil {
		c.PropertyID = *in.PropertyID
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Budget:     c.Budget,
		Status:     c.Status,
		AgentID:    c.AgentID,
		PropertyID: c.PropertyID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
