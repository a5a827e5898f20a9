package services

import (
	"context"

	"travisco/apperr"
	"travisco/logger"
	"travisco/models"
	"travisco/vision"
)

// MonumentModel is the generative-model boundary consumed by the finder.
type MonumentModel interface {
	Generate(ctx context.Context, in vision.Input) (string, error)
}

// FinderService sends an identification payload to the model and
// normalizes the freeform reply into a structured record.
type FinderService struct {
	model MonumentModel
}

func NewFinderService(model MonumentModel) *FinderService {
	return &FinderService{model: model}
}

// Find requires exactly one of image or text in the input. A reply with
// no matching prefix lines is not an error; it yields blank fields.
func (s *FinderService) Find(ctx context.Context, in vision.Input) (models.MonumentIdentification, error) {
	if len(in.ImageData) == 0 && in.Text == "" {
		return models.MonumentIdentification{}, apperr.Validation("No valid input provided. Please provide either an image or text.")
	}

	raw, err := s.model.Generate(ctx, in)
	if err != nil {
		logger.Log.Errorf("error generating response from Gemini: %v", err)
		return models.MonumentIdentification{}, apperr.Upstream("Error generating response from Gemini.", err)
	}
	return vision.Normalize(raw), nil
}
