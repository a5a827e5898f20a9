package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travisco/apperr"
	"travisco/models"
	"travisco/services"
)

// fakePostStore mimics the collection-per-monument store in memory.
type fakePostStore struct {
	collections map[string][]models.CommunityPost
	insertErr   error
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{collections: map[string][]models.CommunityPost{}}
}

func (f *fakePostStore) Insert(_ context.Context, p *models.CommunityPost) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	p.ID = primitive.NewObjectID()
	f.collections[p.MonumentName] = append(f.collections[p.MonumentName], *p)
	return p.ID.Hex(), nil
}

func (f *fakePostStore) ListByMonument(_ context.Context, name string) ([]models.CommunityPost, error) {
	return append([]models.CommunityPost(nil), f.collections[name]...), nil
}

func (f *fakePostStore) ListAll(_ context.Context) ([]models.CommunityPost, error) {
	var all []models.CommunityPost
	for name, posts := range f.collections {
		for _, p := range posts {
			p.Monument = name
			all = append(all, p)
		}
	}
	return all, nil
}

// fakeMediaStore returns deterministic URLs and records upload order.
type fakeMediaStore struct {
	uploads []string
	err     error
}

func (f *fakeMediaStore) Upload(_ context.Context, r io.Reader, category, filename string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	url := fmt.Sprintf("https://media.example.com/%s/%d-%s", category, len(f.uploads), filename)
	f.uploads = append(f.uploads, url)
	return url, nil
}

func TestCommunityServiceCreatePost(t *testing.T) {
	t.Run("no media still creates one document with three empty lists", func(t *testing.T) {
		store := newFakePostStore()
		svc := services.NewCommunityService(store, &fakeMediaStore{})

		id, post, err := svc.CreatePost(context.Background(), services.CreatePostInput{
			Username:     "ana",
			MonumentName: "Eiffel Tower",
			Description:  "great visit",
			Review:       "5 stars",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Empty(t, post.MediaURLs.ImageURLs)
		assert.Empty(t, post.MediaURLs.VideoURLs)
		assert.Empty(t, post.MediaURLs.GifURLs)
		assert.NotNil(t, post.MediaURLs.ImageURLs)
		assert.Len(t, store.collections["Eiffel Tower"], 1)
	})

	t.Run("one image yields one URL and a retrievable document", func(t *testing.T) {
		store := newFakePostStore()
		svc := services.NewCommunityService(store, &fakeMediaStore{})

		id, post, err := svc.CreatePost(context.Background(), services.CreatePostInput{
			Username:     "ana",
			MonumentName: "Eiffel Tower",
			Description:  "d",
			Review:       "r",
			Files: services.MediaFiles{
				Images: []services.MediaFile{{Filename: "tower.jpg", Reader: strings.NewReader("jpegbytes")}},
			},
		})
		require.NoError(t, err)
		require.Len(t, post.MediaURLs.ImageURLs, 1)
		assert.Contains(t, post.MediaURLs.ImageURLs[0], "images/")

		stored, err := svc.ListForMonument(context.Background(), "Eiffel Tower")
		require.NoError(t, err)
		require.Len(t, stored.Posts, 1)
		assert.Equal(t, id, stored.Posts[0].ID.Hex())
	})

	t.Run("URLs keep input order per category", func(t *testing.T) {
		store := newFakePostStore()
		svc := services.NewCommunityService(store, &fakeMediaStore{})

		_, post, err := svc.CreatePost(context.Background(), services.CreatePostInput{
			Username:     "bo",
			MonumentName: "Petra",
			Description:  "d",
			Review:       "r",
			Files: services.MediaFiles{
				Images: []services.MediaFile{
					{Filename: "a.jpg", Reader: strings.NewReader("a")},
					{Filename: "b.jpg", Reader: strings.NewReader("b")},
				},
				Gifs: []services.MediaFile{{Filename: "c.gif", Reader: strings.NewReader("c")}},
			},
		})
		require.NoError(t, err)
		require.Len(t, post.MediaURLs.ImageURLs, 2)
		assert.Contains(t, post.MediaURLs.ImageURLs[0], "a.jpg")
		assert.Contains(t, post.MediaURLs.ImageURLs[1], "b.jpg")
		require.Len(t, post.MediaURLs.GifURLs, 1)
		assert.Empty(t, post.MediaURLs.VideoURLs)
	})

	t.Run("upload failure surfaces upstream error and writes no document", func(t *testing.T) {
		store := newFakePostStore()
		svc := services.NewCommunityService(store, &fakeMediaStore{err: errors.New("bucket unavailable")})

		_, _, err := svc.CreatePost(context.Background(), services.CreatePostInput{
			Username:     "ana",
			MonumentName: "Eiffel Tower",
			Description:  "d",
			Review:       "r",
			Files: services.MediaFiles{
				Images: []services.MediaFile{{Filename: "x.jpg", Reader: strings.NewReader("x")}},
			},
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
		assert.Empty(t, store.collections["Eiffel Tower"])
	})

	t.Run("store failure surfaces upstream error", func(t *testing.T) {
		store := newFakePostStore()
		store.insertErr = errors.New("write concern failed")
		svc := services.NewCommunityService(store, &fakeMediaStore{})

		_, _, err := svc.CreatePost(context.Background(), services.CreatePostInput{
			Username:     "ana",
			MonumentName: "Eiffel Tower",
			Description:  "d",
			Review:       "r",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
	})
}

func TestCommunityServiceListForMonument(t *testing.T) {
	t.Run("empty name is a name-required message, not an error", func(t *testing.T) {
		svc := services.NewCommunityService(newFakePostStore(), &fakeMediaStore{})

		res, err := svc.ListForMonument(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "Monument name is required.", res.Message)
		assert.Empty(t, res.Posts)
	})

	t.Run("no documents is a no-posts message", func(t *testing.T) {
		svc := services.NewCommunityService(newFakePostStore(), &fakeMediaStore{})

		res, err := svc.ListForMonument(context.Background(), "Eiffel Tower")
		require.NoError(t, err)
		assert.Equal(t, "No posts available for this monument.", res.Message)
		assert.Empty(t, res.Posts)
	})

	t.Run("repeated reads return equal result sets", func(t *testing.T) {
		store := newFakePostStore()
		svc := services.NewCommunityService(store, &fakeMediaStore{})

		for _, user := range []string{"ana", "bo"} {
			_, _, err := svc.CreatePost(context.Background(), services.CreatePostInput{
				Username: user, MonumentName: "Petra", Description: "d", Review: "r",
			})
			require.NoError(t, err)
		}

		first, err := svc.ListForMonument(context.Background(), "Petra")
		require.NoError(t, err)
		second, err := svc.ListForMonument(context.Background(), "Petra")
		require.NoError(t, err)
		assert.ElementsMatch(t, first.Posts, second.Posts)
	})
}

func TestCommunityServiceListAll(t *testing.T) {
	t.Run("no collections is a no-posts message", func(t *testing.T) {
		svc := services.NewCommunityService(newFakePostStore(), &fakeMediaStore{})

		res, err := svc.ListAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "No community posts available.", res.Message)
	})

	t.Run("posts across collections keep ids and gain monument_name", func(t *testing.T) {
		store := newFakePostStore()
		svc := services.NewCommunityService(store, &fakeMediaStore{})

		idA, _, err := svc.CreatePost(context.Background(), services.CreatePostInput{
			Username: "ana", MonumentName: "A", Description: "d", Review: "r",
		})
		require.NoError(t, err)
		idB, _, err := svc.CreatePost(context.Background(), services.CreatePostInput{
			Username: "bo", MonumentName: "B", Description: "d", Review: "r",
		})
		require.NoError(t, err)

		res, err := svc.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, res.Posts, 2)

		sort.Slice(res.Posts, func(i, j int) bool { return res.Posts[i].Monument < res.Posts[j].Monument })
		assert.Equal(t, "A", res.Posts[0].Monument)
		assert.Equal(t, idA, res.Posts[0].ID.Hex())
		assert.Equal(t, "B", res.Posts[1].Monument)
		assert.Equal(t, idB, res.Posts[1].ID.Hex())
	})
}
