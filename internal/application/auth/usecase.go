package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/brandops/allocation-api/internal/application/dto"
	"github.com/brandops/allocation-api/internal/domain"
	"github.com/brandops/allocation-api/internal/domain/entity"
	"github.com/brandops/allocation-api/internal/domain/repository"
	"github.com/brandops/allocation-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: valida rol, hashea password con bcrypt y persiste.
// Devuelve ErrUsernameTaken si el username ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Role {
	case entity.RoleCompany, entity.RoleAdmin:
	case entity.RoleFactory:
		if in.FactoryAccount == "" {
			return nil, domain.ErrInvalidInput // factory requiere identidad de fábrica
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByUsername(in.Username)
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Username
	}
	accountType := in.AccountType
	if in.Role == entity.RoleCompany && accountType == "" {
		accountType = entity.AccountTypeNormal
	}
	user := &entity.User{
		ID:             uuid.New().String(),
		Username:       in.Username,
		PasswordHash:   string(hash),
		Name:           name,
		Role:           in.Role,
		FactoryAccount: in.FactoryAccount,
		AccountType:    accountType,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.TokenInput{
		UserID:         user.ID,
		Username:       user.Username,
		Role:           user.Role,
		FactoryAccount: user.FactoryAccount,
		AccountType:    user.AccountType,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Name:           u.Name,
		Role:           u.Role,
		FactoryAccount: u.FactoryAccount,
		AccountType:    u.AccountType,
		Status:         u.Status,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
