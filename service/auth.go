package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vinom-labs/repmaze/identity"
	"github.com/vinom-labs/repmaze/service/i"
)

const tokenTTL = 24 * time.Hour

// AuthService registers and signs in Operators, grounded on the teacher's
// Auth service of the same shape.
type AuthService struct {
	operatorRepo i.OperatorRepo
	tokenizer    i.Tokenizer
}

// NewAuthService builds an AuthService.
func NewAuthService(operatorRepo i.OperatorRepo, tokenizer i.Tokenizer) *AuthService {
	return &AuthService{operatorRepo: operatorRepo, tokenizer: tokenizer}
}

var _ i.Authenticator = (*AuthService)(nil)

// Register validates and persists a new operator account.
func (a *AuthService) Register(username, password string) error {
	op, err := identity.NewOperator(identity.OperatorConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	return a.operatorRepo.Save(op)
}

// SignIn verifies credentials and returns a signed bearer token.
func (a *AuthService) SignIn(username, password string) (string, error) {
	op, err := a.operatorRepo.ByUsername(username)
	if err != nil {
		return "", errors.New("invalid username or password")
	}

	if !op.VerifyPassword(password) {
		return "", errors.New("invalid username or password")
	}

	return a.tokenizer.Generate(map[string]interface{}{
		"operatorID": op.ID,
		"username":   op.Username,
	}, tokenTTL)
}
