package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RunStatus is the lifecycle stage of a quizmaster search run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunCancelled RunStatus = "cancelled"
	RunFruitless RunStatus = "fruitless"
	RunFailed    RunStatus = "failed"
)

// Run is one persisted quizmaster search: the strategy and parameters it
// was launched with, and, once finished, the best maze it found.
type Run struct {
	ID             uuid.UUID `bson:"_id"`
	OperatorID     uuid.UUID `bson:"operatorId"`
	Strategy       string    `bson:"strategy"`
	NTerm          int       `bson:"nterm"`
	KMin           int       `bson:"kMin,omitempty"`
	KMax           int       `bson:"kMax,omitempty"`
	Seed           uint64    `bson:"seed,omitempty"`
	LengthCap      int       `bson:"lengthCap,omitempty"`
	Status         RunStatus `bson:"status"`
	BestLength     int       `bson:"bestLength"`
	BestMazeString string    `bson:"bestMazeString,omitempty"`
	BestPathString string    `bson:"bestPathString,omitempty"`
	StartedAt      time.Time `bson:"startedAt"`
	FinishedAt     time.Time `bson:"finishedAt,omitempty"`
}

// RunRepo persists the record of every quizmaster run.
type RunRepo struct {
	collection *mongo.Collection
}

// NewRunRepo builds a RunRepo backed by the given collection.
func NewRunRepo(client *mongo.Client, dbName, collectionName string) *RunRepo {
	return &RunRepo{collection: client.Database(dbName).Collection(collectionName)}
}

// Save upserts a run record by ID, used both to record a run's start and
// to update it in place as it progresses and finishes.
func (r *RunRepo) Save(run *Run) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": run.ID}
	update := bson.M{"$set": run}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a run by ID.
func (r *RunRepo) ByID(id uuid.UUID) (*Run, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var run Run
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&run); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("run not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &run, nil
}
