package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService emite y verifica tokens de acceso JWT firmados con HS256.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	validity time.Duration
}

// Claims son los claims que viajan en el token de acceso.
type Claims struct {
	DisplayName string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

var (
	ErrSecretMissing = errors.New("jwt secret missing")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)

const defaultValidity = 7 * 24 * time.Hour

// NewTokenService falla si el secreto está vacío: nunca se firma con una
// clave default. Una validez no positiva cae al default de 7 días.
func NewTokenService(secret, issuer, audience string, validity time.Duration) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretMissing
	}
	if validity <= 0 {
		validity = defaultValidity
	}
	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		validity: validity,
	}, nil
}

// Issue firma un token con subject = id de cuenta y name = display name.
func (s *TokenService) Issue(accountID int64, displayName string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(accountID, 10),
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify valida firma, expiración, issuer y audience.
func (s *TokenService) Verify(tokenString string) (Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return Claims{}, ErrTokenInvalid
	}
	var claims Claims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}

// AccountID devuelve el subject como id numérico de cuenta.
func (c Claims) AccountID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenInvalid
	}
	return id, nil
}
