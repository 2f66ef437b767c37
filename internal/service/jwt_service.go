package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"admin-console/internal/domain"
)

// JWTService emite y valida los tokens de sesion de la consola.
type JWTService struct {
	secret    []byte
	accessTTL time.Duration
	issuer    string
	revoked   RevocationStore
}

type Claims struct {
	AdminID     string `json:"uid"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	jwt.RegisteredClaims
}

var (
	ErrJWTInvalid = errors.New("jwt invalid")
	ErrJWTExpired = errors.New("jwt expired")
	ErrJWTRevoked = errors.New("jwt revoked")
)

func NewJWTService(secret string, accessTTL time.Duration) *JWTService {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	return &JWTService{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		issuer:    "admin-console",
		revoked:   NewMemoryRevocationStore(),
	}
}

func NewJWTServiceWithStore(secret string, accessTTL time.Duration, store RevocationStore) *JWTService {
	svc := NewJWTService(secret, accessTTL)
	if store != nil {
		svc.revoked = store
	}
	return svc
}

// Issue firma un token nuevo para admin.
func (s *JWTService) Issue(admin domain.Admin) (domain.LoginResult, error) {
	if len(s.secret) == 0 {
		return domain.LoginResult{}, ErrJWTInvalid
	}
	now := time.Now().UTC()
	claims := Claims{
		AdminID:     admin.ID,
		Username:    admin.Username,
		DisplayName: admin.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   admin.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return domain.LoginResult{}, err
	}
	return domain.LoginResult{
		Token:     signed,
		ExpiresIn: int64(s.accessTTL.Seconds()),
	}, nil
}

// Parse valida firma, emisor, expiracion y revocacion.
func (s *JWTService) Parse(tokenString string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return Claims{}, ErrJWTInvalid
	}
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return Claims{}, err
	}
	if !s.isValidClaims(claims) {
		return Claims{}, ErrJWTInvalid
	}
	if s.revoked != nil && claims.ID != "" {
		revoked, err := s.revoked.IsRevoked(claims.ID)
		if err != nil {
			return Claims{}, err
		}
		if revoked {
			return Claims{}, ErrJWTRevoked
		}
	}
	return claims, nil
}

// Revoke invalida el token hasta su expiracion natural.
func (s *JWTService) Revoke(claims Claims) error {
	if claims.ID == "" || s.revoked == nil {
		return ErrJWTInvalid
	}
	ttl := s.accessTTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return s.revoked.Revoke(claims.ID, ttl)
}

func (s *JWTService) parseToken(tokenString string) (Claims, error) {
	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrJWTExpired
		}
		return Claims{}, ErrJWTInvalid
	}
	return claims, nil
}

func (s *JWTService) isValidClaims(claims Claims) bool {
	if strings.TrimSpace(claims.AdminID) == "" {
		return false
	}
	if claims.Subject != claims.AdminID {
		return false
	}
	return strings.TrimSpace(claims.Issuer) == s.issuer
}
