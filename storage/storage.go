package storage

import (
	"context"
	"io"
)

// Media upload categories, each mapping to a folder in the object store.
const (
	CategoryImages = "images"
	CategoryVideos = "videos"
	CategoryGifs   = "gifs"
)

// MediaStore is the object-store boundary: it takes a file's bytes and
// returns the publicly readable URL assigned to the stored blob.
type MediaStore interface {
	Upload(ctx context.Context, r io.Reader, category, filename string) (string, error)
}
