package ledger

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores ledger entries in a MongoDB collection, one
// document per pick keyed by _id.
type MongoRepository struct {
	client  *mongo.Client
	entries *mongo.Collection
}

// NewMongoRepository connects to MongoDB and returns the repository.
func NewMongoRepository(ctx context.Context, uri, dbName string) (*MongoRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Info().Str("db", dbName).Msg("Connected to MongoDB")

	return &MongoRepository{
		client:  client,
		entries: client.Database(dbName).Collection("ledger"),
	}, nil
}

// Close closes the database connection.
func (r *MongoRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoRepository) All(ctx context.Context) ([]Entry, error) {
	cursor, err := r.entries.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *MongoRepository) Get(ctx context.Context, key string) (*Entry, error) {
	var entry Entry
	err := r.entries.FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MongoRepository) Upsert(ctx context.Context, entry Entry) error {
	filter := bson.M{"_id": entry.Key}
	update := bson.M{"$set": entry}
	opts := options.Update().SetUpsert(true)

	_, err := r.entries.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *MongoRepository) Delete(ctx context.Context, key string) error {
	_, err := r.entries.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
