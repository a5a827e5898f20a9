package dto

import "travisco/models"

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// PostsResponse carries a non-empty list of community posts.
type PostsResponse struct {
	Posts []models.CommunityPost `json:"posts"`
	Count int                    `json:"count"`
}

// CreatePostResponse echoes the stored record and its assigned id.
type CreatePostResponse struct {
	Message  string               `json:"message"`
	PostID   string               `json:"post_id"`
	PostData models.CommunityPost `json:"post_data"`
}
