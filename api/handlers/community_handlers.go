package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"travisco/apperr"
	"travisco/dto"
	"travisco/services"
)

// ListCommunityPostsHandler godoc
// @Summary      List posts for one monument
// @Tags         community
// @Param        monument_name  path  string  true  "Monument name"
// @Produce      json
// @Success      200  {object}  dto.PostsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /community/{monument_name} [get]
func ListCommunityPostsHandler(svc *services.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.ListForMonument(c.Request.Context(), c.Param("monument_name"))
		if err != nil {
			respondError(c, err)
			return
		}
		if res.Message != "" {
			c.JSON(http.StatusOK, dto.MessageResponse{Message: res.Message})
			return
		}
		c.JSON(http.StatusOK, dto.PostsResponse{Posts: res.Posts, Count: len(res.Posts)})
	}
}

// ListAllCommunityPostsHandler godoc
// @Summary      List posts across all monuments
// @Tags         community
// @Produce      json
// @Success      200  {object}  dto.PostsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /community [get]
func ListAllCommunityPostsHandler(svc *services.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.ListAll(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if res.Message != "" {
			c.JSON(http.StatusOK, dto.MessageResponse{Message: res.Message})
			return
		}
		c.JSON(http.StatusOK, dto.PostsResponse{Posts: res.Posts, Count: len(res.Posts)})
	}
}

// CreateCommunityPostHandler godoc
// @Summary      Create a community post
// @Tags         community
// @Accept       multipart/form-data
// @Param        Username       formData  string  true   "Author"
// @Param        Monument_name  formData  string  true   "Monument the post belongs to"
// @Param        Description    formData  string  true   "Post description"
// @Param        Review         formData  string  true   "Review text"
// @Param        images         formData  file    false  "Images (repeatable)"
// @Param        videos         formData  file    false  "Videos (repeatable)"
// @Param        gifs           formData  file    false  "GIFs (repeatable)"
// @Produce      json
// @Success      200  {object}  dto.CreatePostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /community/post [post]
func CreateCommunityPostHandler(svc *services.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			respondError(c, apperr.Validation("invalid multipart form: "+err.Error()))
			return
		}

		// Fields must be present; empty values are accepted.
		for _, key := range []string{"Username", "Monument_name", "Description", "Review"} {
			if _, ok := form.Value[key]; !ok {
				respondError(c, apperr.Validation(key+" is required"))
				return
			}
		}

		in := services.CreatePostInput{
			Username:     c.PostForm("Username"),
			MonumentName: c.PostForm("Monument_name"),
			Description:  c.PostForm("Description"),
			Review:       c.PostForm("Review"),
		}

		var opened []multipart.File
		defer func() {
			for _, f := range opened {
				f.Close()
			}
		}()
		for _, cat := range []struct {
			key  string
			dest *[]services.MediaFile
		}{
			{"images", &in.Files.Images},
			{"videos", &in.Files.Videos},
			{"gifs", &in.Files.Gifs},
		} {
			for _, fh := range form.File[cat.key] {
				f, err := fh.Open()
				if err != nil {
					respondError(c, apperr.Validation("failed to read uploaded file: "+err.Error()))
					return
				}
				opened = append(opened, f)
				*cat.dest = append(*cat.dest, services.MediaFile{Filename: fh.Filename, Reader: f})
			}
		}

		id, post, err := svc.CreatePost(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.CreatePostResponse{
			Message:  "Community post created successfully!",
			PostID:   id,
			PostData: *post,
		})
	}
}
