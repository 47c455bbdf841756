package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/ridgepark/estate-crm/internal/application/dto"
	"github.com/ridgepark/estate-crm/internal/domain"
	"github.com/ridgepark/estate-crm/internal/domain/entity"
	"github.com/ridgepark/estate-crm/internal/domain/repository"
	"github.com/ridgepark/estate-crm/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminAccount el administrador del sistema. No vive en el almacén: se define
// por configuración y se inyecta aquí con la contraseña ya hasheada.
type AdminAccount struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
}

// AuthUseCase casos de uso de autenticación: login de admin y agentes.
type AuthUseCase struct {
	agentRepo repository.AgentRepository
	admin     AdminAccount
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(agentRepo repository.AgentRepository, admin AdminAccount, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{agentRepo: agentRepo, admin: admin, jwtCfg: jwtCfg}
}

// Login verifica credenciales contra el admin configurado o contra los agentes
// del almacén (solo activos), genera JWT y retorna token + identidad.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	if in.Email == uc.admin.Email {
		if err := bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(in.Password)); err != nil {
			return nil, domain.ErrUnauthorized
		}
		return uc.issue(dto.UserResponse{
			ID:    uc.admin.ID,
			Email: uc.admin.Email,
			Name:  uc.admin.Name,
			Role:  entity.RoleAdmin,
		})
	}

	agent, err := uc.agentRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.ErrUnauthorized
	}
	if !agent.Active {
		return nil, domain.ErrAgentInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(dto.UserResponse{
		ID:    agent.ID,
		Email: agent.Email,
		Name:  agent.Name,
		Role:  entity.RoleAgent,
	})
}

// Me resuelve la identidad detrás de un token ya validado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	if userID == uc.admin.ID {
		return &dto.UserResponse{
			ID:    uc.admin.ID,
			Email: uc.admin.Email,
			Name:  uc.admin.Name,
			Role:  entity.RoleAdmin,
		}, nil
	}
	agent, err := uc.agentRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, nil
	}
	return &dto.UserResponse{
		ID:    agent.ID,
		Email: agent.Email,
		Name:  agent.Name,
		Role:  entity.RoleAgent,
	}, nil
}

func (uc *AuthUseCase) issue(user dto.UserResponse) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: user}, nil
}
