package accountRepo

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

// MongoAccountRepo implements AccountRepository using MongoDB.
type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo creates a new instance of AccountRepository using MongoDB.
func NewMongoAccountRepo() AccountRepository {
	coll := database.Collection("accounts")
	repo := &MongoAccountRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAccountRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an account by its unique ID. Returns (nil, nil)
// when no account matches.
func (r *MongoAccountRepo) GetByID(id string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var acc models.Account
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&acc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account with id %s: %w", id, err)
	}
	return &acc, nil
}

// GetByEmail retrieves an account by email. Returns (nil, nil) when no
// account matches.
func (r *MongoAccountRepo) GetByEmail(email string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var acc models.Account
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&acc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account with email %s: %w", email, err)
	}
	return &acc, nil
}

// Create inserts a new account document.
func (r *MongoAccountRepo) Create(account *models.Account) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Update modifies an existing account document.
func (r *MongoAccountRepo) Update(account *models.Account) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	account.UpdatedAt = time.Now()
	filter := bson.M{"id": account.ID}
	update := bson.M{"$set": account}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update account with id %s: %w", account.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account with id %s not found", account.ID)
	}
	return nil
}

// SetFCMToken stores the push token for an account.
func (r *MongoAccountRepo) SetFCMToken(id, token string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"fcmToken": token, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set FCM token for account %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account with id %s not found", id)
	}
	return nil
}
