package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"admin-console/internal/domain"
	"admin-console/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("rate limited")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidAdmin       = errors.New("invalid admin data")
)

// AuthService coordina login, logout y alta de operadores.
type AuthService struct {
	logger  *zap.Logger
	admins  repository.AdminRepository
	jwt     *JWTService
	limiter LoginRateLimiter
}

func NewAuthService(logger *zap.Logger, admins repository.AdminRepository, jwt *JWTService, limiter LoginRateLimiter) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limiter == nil {
		limiter = NewLoginRateLimiter(10*time.Minute, 5)
	}
	return &AuthService{
		logger:  logger,
		admins:  admins,
		jwt:     jwt,
		limiter: limiter,
	}
}

func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	if s.admins == nil || s.jwt == nil {
		return domain.LoginResult{}, errors.New("auth service not configured")
	}

	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return domain.LoginResult{}, ErrInvalidCredentials
	}
	if !s.limiter.Allow(username) {
		return domain.LoginResult{}, ErrRateLimited
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.LoginResult{}, ErrInvalidCredentials
		}
		return domain.LoginResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(creds.Password)); err != nil {
		return domain.LoginResult{}, ErrInvalidCredentials
	}

	result, err := s.jwt.Issue(admin)
	if err != nil {
		return domain.LoginResult{}, err
	}
	s.logger.Info("admin logged in", zap.String("admin_id", admin.ID))
	return result, nil
}

func (s *AuthService) Logout(claims Claims) error {
	if s.jwt == nil {
		return errors.New("auth service not configured")
	}
	return s.jwt.Revoke(claims)
}

// Me carga el operador de las claims.
func (s *AuthService) Me(ctx context.Context, claims Claims) (domain.Admin, error) {
	admin, err := s.admins.GetByID(ctx, claims.AdminID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Admin{}, ErrAdminNotFound
	}
	return admin, err
}

// CreateAdmin da de alta un operador con la contrasena hasheada con bcrypt.
func (s *AuthService) CreateAdmin(ctx context.Context, username, displayName, password string) (domain.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < 8 {
		return domain.Admin{}, ErrInvalidAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Admin{}, err
	}

	admin := domain.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return domain.Admin{}, err
	}
	return admin, nil
}
