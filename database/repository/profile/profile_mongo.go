package profileRepo

import (
	"context"
	"fmt"
	"time"

	"beautymatch/database"
	"beautymatch/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	coll := database.Collection("profiles")
	repo := &MongoProfileRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialty", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "isProfileComplete", Value: 1}, {Key: "availability", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by its unique ID. Returns (nil, nil)
// when no profile matches.
func (r *MongoProfileRepo) GetByID(id string) (*models.ProfessionalProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var prof models.ProfessionalProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&prof); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", id, err)
	}
	return &prof, nil
}

// GetByEmail retrieves a profile by email. Returns (nil, nil) when no
// profile matches.
func (r *MongoProfileRepo) GetByEmail(email string) (*models.ProfessionalProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var prof models.ProfessionalProfile
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&prof); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile with email %s: %w", email, err)
	}
	return &prof, nil
}

// Create inserts a new profile document.
func (r *MongoProfileRepo) Create(profile *models.ProfessionalProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// Merge applies a partial $set update to a profile document.
func (r *MongoProfileRepo) Merge(id string, partial map[string]interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	doc := bson.M{}
	for k, v := range partial {
		doc[k] = v
	}
	doc["updatedAt"] = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("failed to merge profile with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("profile with id %s not found", id)
	}
	return nil
}

// Query returns the profiles satisfying every equality predicate, in
// stable insertion order (sorted by creation time).
func (r *MongoProfileRepo) Query(filters []QueryFilter) ([]models.ProfessionalProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	for _, f := range filters {
		query[f.Field] = f.Value
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.ProfessionalProfile
	for cursor.Next(ctx) {
		var p models.ProfessionalProfile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
