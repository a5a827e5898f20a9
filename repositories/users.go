package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"travisco/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) Insert(ctx context.Context, u *models.UserAccount) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, u)
	return err
}

// FindByEmail returns the account stored under email, or
// mongo.ErrNoDocuments when none exists.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	var u models.UserAccount
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}
