package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/maze-planner/domain"
	"github.com/beka-birhanu/maze-planner/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of maze records.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze record in the repository.
// If the record already exists, it updates the existing record.
// If the record does not exist, it adds a new record.
func (m *MazeRepo) Save(record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": record.ID}
	update := bson.M{
		"$set": bson.M{
			"grid":      record.Grid,
			"exit":      record.Exit,
			"createdAt": record.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze record by its ID.
// Returns i.ErrMazeNotFound if no record exists, revalidating the stored
// grid before handing it out.
func (m *MazeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var record dmn.MazeRecord
	if err := m.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, i.ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}

	if err := record.Grid.Validate(); err != nil {
		return nil, err
	}
	return &record, nil
}
