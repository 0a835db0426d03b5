package jwt

import (
	"errors"
	"time"

	"loyalty-wallet/internal/domain/staff"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims of a staff token. Tokens are issued by the external auth service and
// only validated here; GenerateToken exists for tooling and tests.
type Claims struct {
	StaffID uuid.UUID `json:"staff_id"`
	Role    string    `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	issuer        string
	leeway        time.Duration
}

type Option func(*Service)

// WithIssuer pins the iss claim. Tokens from another issuer are rejected.
func WithIssuer(iss string) Option {
	return func(s *Service) { s.issuer = iss }
}

// WithLeeway tolerates clock skew between scanner devices, the auth service
// and this host.
func WithLeeway(d time.Duration) Option {
	return func(s *Service) { s.leeway = d }
}

func NewService(secretKey string, tokenDuration time.Duration, opts ...Option) *Service {
	s := &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GenerateToken(staffID uuid.UUID, role staff.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		StaffID: staffID,
		Role:    role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   staffID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.StaffID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
