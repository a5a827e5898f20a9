package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStore uploads media to Cloudinary. Blobs are named by a fresh
// uuid under the category folder so concurrent uploads never collide, and
// delivery URLs are public by default.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudinaryURL string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, r io.Reader, category, filename string) (string, error) {
	params := uploader.UploadParams{
		Folder:   category,
		PublicID: uuid.New().String(),
		// Videos and gifs need their own resource types; let Cloudinary
		// detect from the bytes.
		ResourceType: "auto",
	}
	res, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}
