package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"travisco/models"
)

// internalCollections are provisioned by this service for its own use and
// are never monument collections. Everything else in the database is
// treated as a monument's posts.
var internalCollections = map[string]bool{
	"users": true,
}

// CommunityPostRepository persists posts in a collection named after the
// monument. It holds the database rather than a single collection because
// the collection key is data-dependent.
type CommunityPostRepository struct {
	db *mongo.Database
}

func NewCommunityPostRepository(db *mongo.Database) *CommunityPostRepository {
	return &CommunityPostRepository{db: db}
}

// Insert writes one post into the collection named by p.MonumentName and
// returns the generated document id. p.ID is populated on success.
func (r *CommunityPostRepository) Insert(ctx context.Context, p *models.CommunityPost) (string, error) {
	res, err := r.db.Collection(p.MonumentName).InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	p.ID = oid
	return oid.Hex(), nil
}

// ListByMonument streams every document in the monument's collection in
// store iteration order.
func (r *CommunityPostRepository) ListByMonument(ctx context.Context, monumentName string) ([]models.CommunityPost, error) {
	cur, err := r.db.Collection(monumentName).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.CommunityPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListAll enumerates every monument collection and flattens their
// documents into one slice, re-attaching the collection key as the
// synthesized monument name. No cross-collection ordering is guaranteed.
func (r *CommunityPostRepository) ListAll(ctx context.Context) ([]models.CommunityPost, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var all []models.CommunityPost
	for _, name := range names {
		if internalCollections[name] {
			continue
		}
		posts, err := r.ListByMonument(ctx, name)
		if err != nil {
			return nil, err
		}
		for i := range posts {
			posts[i].Monument = name
		}
		all = append(all, posts...)
	}
	return all, nil
}
