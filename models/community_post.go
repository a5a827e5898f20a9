package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaURLs groups the public URLs assigned to a post's uploaded media.
// Lists keep upload order; any of them may be empty.
type MediaURLs struct {
	ImageURLs []string `bson:"image_urls" json:"image_urls"`
	VideoURLs []string `bson:"video_urls" json:"video_urls"`
	GifURLs   []string `bson:"gif_urls" json:"gif_urls"`
}

// NewMediaURLs returns an empty record with all three lists allocated so
// stored documents always carry the three keys.
func NewMediaURLs() MediaURLs {
	return MediaURLs{
		ImageURLs: []string{},
		VideoURLs: []string{},
		GifURLs:   []string{},
	}
}

// CommunityPost is one community post document.
//
// Posts live in the collection named after the monument, and the monument
// name is also stored as the Monument_name field. Both uses must stay in
// sync: a post is addressable at collections[Monument_name]/posts[id].
// Field casing follows the stored document keys.
type CommunityPost struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"Username" json:"Username"`
	MonumentName string             `bson:"Monument_name" json:"Monument_name"`
	Description  string             `bson:"Description" json:"Description"`
	Review       string             `bson:"Review" json:"Review"`
	MediaURLs    MediaURLs          `bson:"media_urls" json:"media_urls"`

	// Monument is only populated on the all-posts view, re-attached from
	// the source collection's key. Never stored.
	Monument string `bson:"-" json:"monument_name,omitempty"`
}
