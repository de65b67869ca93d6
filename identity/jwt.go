package identity

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Tokenizer issues and validates the JWTs operators present to the
// protected search-service endpoints.
type Tokenizer interface {
	Generate(claims map[string]interface{}, ttl time.Duration) (string, error)
	Decode(token string) (map[string]interface{}, error)
}

var _ Tokenizer = &JwtService{}

// JwtService is the HMAC-signed JWT implementation of Tokenizer.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService builds a JwtService signing and validating with secretKey,
// stamping the given issuer into every claim set.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Generate creates a signed JWT carrying claims plus an exp and iss claim.
func (s *JwtService) Generate(claims map[string]interface{}, ttl time.Duration) (string, error) {
	expirationTime := time.Now().UTC().Add(ttl).Unix()
	jwtClaims := jwt.MapClaims{
		"exp": expirationTime,
		"iss": s.issuer,
	}
	for key, val := range claims {
		jwtClaims[key] = val
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode parses and validates a JWT, returning its claims if valid.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
