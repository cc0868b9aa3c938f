package auth

import (
	"github.com/invorya/ims-backend/internal/application/dto"
	"github.com/invorya/ims-backend/internal/application/usecase"
	"github.com/invorya/ims-backend/internal/domain"
	"github.com/invorya/ims-backend/internal/domain/entity"
	"github.com/invorya/ims-backend/internal/domain/repository"
	"github.com/invorya/ims-backend/pkg/jwt"
	"github.com/invorya/ims-backend/pkg/passhash"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login contra los usuarios
// sembrados en el almacén. La verificación recomputa el mismo esquema
// sha256+salt fija con el que se sembró el password_hash (ver pkg/passhash).
type AuthUseCase struct {
	store  repository.Store
	audit  *usecase.AuditUseCase
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store repository.Store, audit *usecase.AuditUseCase, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{store: store, audit: audit, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Registra una entrada "LOGIN" en auditoría por cada login exitoso.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.store.GetUserByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !passhash.Verify(user.PasswordHash, in.Password) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.audit.LogAction(user.Username, entity.ActionLogin, "User logged in"); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
