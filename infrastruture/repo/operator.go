// Package repo holds the MongoDB-backed persistence layer: operator
// accounts and completed search runs.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vinom-labs/repmaze/identity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OperatorRepo persists identity.Operator accounts.
type OperatorRepo struct {
	collection *mongo.Collection
}

// NewOperatorRepo builds an OperatorRepo backed by the given collection.
func NewOperatorRepo(client *mongo.Client, dbName, collectionName string) *OperatorRepo {
	return &OperatorRepo{collection: client.Database(dbName).Collection(collectionName)}
}

// Save inserts or updates an operator by ID.
func (r *OperatorRepo) Save(op *identity.Operator) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": op.ID}
	update := bson.M{
		"$set": bson.M{
			"username":     op.Username,
			"passwordHash": op.PasswordHash,
			"updatedAt":    time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("username conflict")
		}
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves an operator by ID.
func (r *OperatorRepo) ByID(id uuid.UUID) (*identity.Operator, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var op identity.Operator
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&op); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("operator not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &op, nil
}

// ByUsername retrieves an operator by username.
func (r *OperatorRepo) ByUsername(username string) (*identity.Operator, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var op identity.Operator
	if err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&op); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("operator not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &op, nil
}
