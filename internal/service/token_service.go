package service

import (
	"fmt"
	"time"

	"github.com/valerpay/custody-ledger/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ledgerClaims is the JWT payload: registered claims plus the email and
// role the middleware needs for authorization.
type ledgerClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenService implements ports.TokenService with HS256-signed tokens.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

// Generate signs a token for the subject and returns it with its unix
// expiry.
func (s *JWTTokenService) Generate(subjectID uuid.UUID, email, role string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := ledgerClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("signing token: %w", err)
	}
	return signed, expiresAt.Unix(), nil
}

// Validate verifies the signature and expiry and returns the identity
// carried in the token.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	var claims ledgerClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in token: %w", err)
	}

	return &ports.TokenClaims{
		SubjectID: subjectID,
		Email:     claims.Email,
		Role:      claims.Role,
	}, nil
}
