package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewOperatorRejectsShortUsername(t *testing.T) {
	_, err := NewOperator(OperatorConfig{ID: uuid.New(), Username: "ab", PlainPassword: "correct-horse-battery-staple"})
	assert.Error(t, err)
}

func TestNewOperatorRejectsWeakPassword(t *testing.T) {
	_, err := NewOperator(OperatorConfig{ID: uuid.New(), Username: "someone", PlainPassword: "12345"})
	assert.Error(t, err)
}

func TestNewOperatorHashesPasswordAndVerifies(t *testing.T) {
	op, err := NewOperator(OperatorConfig{ID: uuid.New(), Username: "someone", PlainPassword: "correct-horse-battery-staple"})
	assert.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery-staple", op.PasswordHash)
	assert.True(t, op.VerifyPassword("correct-horse-battery-staple"))
	assert.False(t, op.VerifyPassword("wrong-password"))
}
