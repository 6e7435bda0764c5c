package repo

import (
	"context"
	"errors"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportRepo stores generation reports of mazes.
type ReportRepo struct {
	collection *mongo.Collection
}

// NewReportRepo creates a new ReportRepo with the given MongoDB client, database name, and collection name.
func NewReportRepo(client *mongo.Client, dbName, collectionName string) *ReportRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &ReportRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the index serving ByOwner.
func (r *ReportRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Save inserts a report. Reports are never updated.
func (r *ReportRepo) Save(ctx context.Context, report *dmn.Report) error {
	if _, err := r.collection.InsertOne(ctx, report); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("report already exists")
		}
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByOwner returns at most limit reports of the owner, newest first.
func (r *ReportRepo) ByOwner(ctx context.Context, owner uuid.UUID, limit int64) ([]*dmn.Report, error) {
	filter := bson.M{"ownerId": owner}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	reports := make([]*dmn.Report, 0)
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return reports, nil
}
