package services

import (
	"context"
	"io"

	"travisco/apperr"
	"travisco/logger"
	"travisco/models"
	"travisco/storage"
)

// PostStore is the document-store boundary for community posts.
type PostStore interface {
	Insert(ctx context.Context, p *models.CommunityPost) (string, error)
	ListByMonument(ctx context.Context, monumentName string) ([]models.CommunityPost, error)
	ListAll(ctx context.Context) ([]models.CommunityPost, error)
}

// MediaFile is one uploaded file handed to the service by the HTTP layer.
type MediaFile struct {
	Filename string
	Reader   io.Reader
}

// MediaFiles groups uploads by category. Any list may be empty.
type MediaFiles struct {
	Images []MediaFile
	Videos []MediaFile
	Gifs   []MediaFile
}

type CreatePostInput struct {
	Username     string
	MonumentName string
	Description  string
	Review       string
	Files        MediaFiles
}

// ListResult is the outcome of a read: either posts or an explanatory
// message, never both. An empty store is a message, not an error.
type ListResult struct {
	Posts   []models.CommunityPost
	Message string
}

// CommunityService writes and reads the per-monument post collections.
type CommunityService struct {
	posts PostStore
	media storage.MediaStore
}

func NewCommunityService(posts PostStore, media storage.MediaStore) *CommunityService {
	return &CommunityService{posts: posts, media: media}
}

// CreatePost uploads every media file and then writes one document into
// the collection named by the monument. Completed uploads are not rolled
// back when a later step fails; the document is only written after all
// uploads succeed.
func (s *CommunityService) CreatePost(ctx context.Context, in CreatePostInput) (string, *models.CommunityPost, error) {
	post := &models.CommunityPost{
		Username:     in.Username,
		MonumentName: in.MonumentName,
		Description:  in.Description,
		Review:       in.Review,
		MediaURLs:    models.NewMediaURLs(),
	}

	categories := []struct {
		name  string
		files []MediaFile
		urls  *[]string
	}{
		{storage.CategoryImages, in.Files.Images, &post.MediaURLs.ImageURLs},
		{storage.CategoryVideos, in.Files.Videos, &post.MediaURLs.VideoURLs},
		{storage.CategoryGifs, in.Files.Gifs, &post.MediaURLs.GifURLs},
	}
	for _, cat := range categories {
		for _, f := range cat.files {
			url, err := s.media.Upload(ctx, f.Reader, cat.name, f.Filename)
			if err != nil {
				logger.Log.Errorf("error uploading file to storage: %v", err)
				return "", nil, apperr.Upstream("File upload failed", err)
			}
			*cat.urls = append(*cat.urls, url)
			logger.InfoWithFields("uploaded media", logger.Fields{"category": cat.name, "url": url})
		}
	}

	id, err := s.posts.Insert(ctx, post)
	if err != nil {
		logger.Log.Errorf("error creating community post: %v", err)
		return "", nil, apperr.Upstream("Failed to create community post", err)
	}
	logger.InfoWithFields("community post created", logger.Fields{"monument": in.MonumentName, "post_id": id})
	return id, post, nil
}

// ListForMonument returns the monument's posts in store iteration order.
// An empty monument name and an empty collection are both reported as
// messages on a successful result.
func (s *CommunityService) ListForMonument(ctx context.Context, monumentName string) (*ListResult, error) {
	if monumentName == "" {
		return &ListResult{Message: "Monument name is required."}, nil
	}

	posts, err := s.posts.ListByMonument(ctx, monumentName)
	if err != nil {
		logger.Log.Errorf("error fetching community posts: %v", err)
		return nil, apperr.Upstream("Failed to fetch community posts", err)
	}
	if len(posts) == 0 {
		return &ListResult{Message: "No posts available for this monument."}, nil
	}
	return &ListResult{Posts: posts}, nil
}

// ListAll flattens every monument collection into one result.
func (s *CommunityService) ListAll(ctx context.Context) (*ListResult, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		logger.Log.Errorf("error fetching all community posts: %v", err)
		return nil, apperr.Upstream("Failed to fetch community posts", err)
	}
	if len(posts) == 0 {
		return &ListResult{Message: "No community posts available."}, nil
	}
	return &ListResult{Posts: posts}, nil
}
