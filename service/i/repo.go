package i

import (
	"github.com/google/uuid"
	"github.com/vinom-labs/repmaze/identity"
	"github.com/vinom-labs/repmaze/infrastruture/repo"
)

// OperatorRepo defines the interface for operator persistence operations.
type OperatorRepo interface {
	// Save inserts or updates an operator. If the operator already exists,
	// it updates the record; otherwise it creates a new one.
	Save(op *identity.Operator) error

	// ByID retrieves an operator by their unique ID.
	ByID(id uuid.UUID) (*identity.Operator, error)

	// ByUsername retrieves an operator by their username.
	ByUsername(username string) (*identity.Operator, error)
}

// RunRepo defines the interface for search-run persistence operations.
type RunRepo interface {
	// Save inserts or updates a run record.
	Save(run *repo.Run) error

	// ByID retrieves a run by its unique ID.
	ByID(id uuid.UUID) (*repo.Run, error)
}
