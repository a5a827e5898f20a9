package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserAccount mirrors the subset of identity fields this service keeps in
// the users collection. Credential checks are delegated to the identity
// gateway; the hash is never serialized to API responses.
type UserAccount struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UID          string             `bson:"uid" json:"uid"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"-"`
}
