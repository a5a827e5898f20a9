package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"travisco/models"
	"travisco/repositories"
)

var (
	ErrEmailInUse   = errors.New("email already in use")
	ErrUserNotFound = errors.New("user not found")
)

// Gateway is the identity-provider boundary. All credential handling is
// delegated behind it; callers never see password material.
type Gateway interface {
	CreateUser(ctx context.Context, name, email, password string) (*models.UserAccount, error)
	GetUserByEmail(ctx context.Context, email string) (*models.UserAccount, error)
}

// MongoGateway backs the gateway with the users collection, hashing the
// credential with bcrypt and assigning a uid on creation.
type MongoGateway struct {
	users *repositories.UserRepository
}

func NewMongoGateway(users *repositories.UserRepository) *MongoGateway {
	return &MongoGateway{users: users}
}

func (g *MongoGateway) CreateUser(ctx context.Context, name, email, password string) (*models.UserAccount, error) {
	_, err := g.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailInUse
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &models.UserAccount{
		UID:          uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := g.users.Insert(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (g *MongoGateway) GetUserByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	u, err := g.users.FindByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
