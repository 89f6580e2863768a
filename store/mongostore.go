package store

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"civicdispatch-be/models"
)

// CollectionKey identifies the one persisted issue collection. Change
// notifications are keyed by the same name.
const CollectionKey = "civic_issues"

// collectionDoc is the single document holding the whole issue array.
// Replacing it wholesale keeps every write a full-collection swap, the same
// contract the file store has.
type collectionDoc struct {
	ID     string         `bson:"_id"`
	Issues []models.Issue `bson:"issues"`
}

// MongoStore persists the collection as one document in a Mongo collection.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore wraps the given Mongo collection.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// LoadAll fetches the collection document. A missing document or a decode
// failure degrades to an empty collection.
func (m *MongoStore) LoadAll(ctx context.Context) []models.Issue {
	var doc collectionDoc
	err := m.coll.FindOne(ctx, bson.M{"_id": CollectionKey}).Decode(&doc)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("Failed to load issue collection, treating as empty: %v", err)
		}
		return []models.Issue{}
	}
	if doc.Issues == nil {
		return []models.Issue{}
	}
	return doc.Issues
}

// SaveAll replaces the collection document, creating it if absent.
func (m *MongoStore) SaveAll(ctx context.Context, issues []models.Issue) error {
	if issues == nil {
		issues = []models.Issue{}
	}
	doc := collectionDoc{ID: CollectionKey, Issues: issues}
	opts := options.Replace().SetUpsert(true)
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": CollectionKey}, doc, opts)
	return err
}
