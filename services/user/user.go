package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lojinha/config"
	userRepo "lojinha/database/repository/user"
	"lojinha/models"
	"lojinha/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("Usuário não encontrado")
	// ErrInvalidCredentials is returned for a failed login attempt.
	ErrInvalidCredentials = errors.New("Login ou senha inválida.")
)

// CreateUserInput carries the fields accepted on create and update.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned on a successful login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService defines business logic for user operations.
type UserService interface {
	// CreateUser validates input, enforces email uniqueness and persists
	// a new user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error)
	// Authenticate verifies credentials, issues a JWT and caches its hash.
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	// Logout revokes the user's cached token.
	Logout(ctx context.Context, userID uint) error
	// GetUserByID retrieves a user by its unique ID.
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	// ListUsers retrieves one page of users plus the total count.
	ListUsers(ctx context.Context, page, perPage int) ([]models.User, int64, error)
	// UpdateUser updates an existing user's profile.
	UpdateUser(ctx context.Context, id uint, in CreateUserInput) (*models.User, error)
	// DeleteUser removes a user record.
	DeleteUser(ctx context.Context, id uint) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo       userRepo.UserRepository
	TokenCache utils.TokenCache
}

func validateInput(in CreateUserInput, requirePassword bool) utils.FieldErrors {
	fe := utils.FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		fe.Add("name", "O nome é obrigatório.")
	}
	if strings.TrimSpace(in.Email) == "" {
		fe.Add("email", "O e-mail é obrigatório.")
	} else if !strings.Contains(in.Email, "@") {
		fe.Add("email", "O e-mail deve ser um endereço válido.")
	}
	if requirePassword && in.Password == "" {
		fe.Add("password", "A senha é obrigatória.")
	}
	if in.Password != "" && len(in.Password) < 6 {
		fe.Add("password", "A senha deve ter no mínimo 6 caracteres.")
	}
	return fe
}

func (s *DefaultUserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	fe := validateInput(in, true)
	if fe.HasErrors() {
		return nil, fe
	}

	// Check for an existing user with the same email.
	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("falha ao criar usuário: %w", err)
	}
	if existing != nil {
		fe.Add("email", "Este e-mail já está em uso.")
		return nil, fe
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("falha ao criar usuário: %w", err)
	}

	usr := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Login lookup failed", zap.Error(err))
		return nil, fmt.Errorf("falha ao autenticar: %w", err)
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	ttl := time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
	token, err := utils.GenerateToken(strconv.FormatUint(uint64(usr.ID), 10), usr.Email, ttl)
	if err != nil {
		utils.GetLogger().Error("Token generation failed", zap.Error(err))
		return nil, fmt.Errorf("falha ao autenticar: %w", err)
	}

	// Store the token hash so the auth middleware can validate and
	// revoke it without a database round trip.
	if s.TokenCache != nil {
		key := strconv.FormatUint(uint64(usr.ID), 10)
		if err := s.TokenCache.SaveTokenHash(ctx, key, utils.HashToken(token)); err != nil {
			utils.GetLogger().Warn("Failed to cache token hash", zap.Error(err))
		}
	}

	return &AuthResponse{Token: token, User: usr}, nil
}

func (s *DefaultUserService) Logout(ctx context.Context, userID uint) error {
	if s.TokenCache == nil {
		return nil
	}
	return s.TokenCache.DeleteTokenHash(ctx, strconv.FormatUint(uint64(userID), 10))
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	usr, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

func (s *DefaultUserService) ListUsers(ctx context.Context, page, perPage int) ([]models.User, int64, error) {
	return s.Repo.List(ctx, page, perPage)
}

func (s *DefaultUserService) UpdateUser(ctx context.Context, id uint, in CreateUserInput) (*models.User, error) {
	fe := validateInput(in, false)
	if fe.HasErrors() {
		return nil, fe
	}

	usr, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}

	if in.Email != usr.Email {
		existing, err := s.Repo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			fe.Add("email", "Este e-mail já está em uso.")
			return nil, fe
		}
	}

	usr.Name = in.Name
	usr.Email = in.Email
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("falha ao atualizar usuário: %w", err)
		}
		usr.PasswordHash = string(hashed)
	}

	if err := s.Repo.Update(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

func (s *DefaultUserService) DeleteUser(ctx context.Context, id uint) error {
	usr, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if usr == nil {
		return ErrUserNotFound
	}
	return s.Repo.Delete(ctx, id)
}
