package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shloka-app/shloka-server/internal/domain"
)

func (s *Server) registerMoodRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listMoodsByEmotion",
		Method:      http.MethodGet,
		Path:        "/api/moods/{emotionId}",
		Summary:     "List moods for an emotion",
		Description: "Returns the specific moods under one emotion category",
		Tags:        []string{"Content"},
	}, s.handleListMoodsByEmotion)
}

// ListMoodsInput carries the emotion path parameter.
type ListMoodsInput struct {
	EmotionID string `path:"emotionId" doc:"Emotion ID (e.g. fear)"`
}

// MoodResponse contains one mood in API responses.
type MoodResponse struct {
	ID          string `json:"id" doc:"Mood ID"`
	EmotionID   string `json:"emotion_id" doc:"Parent emotion ID"`
	Name        string `json:"name" doc:"Display name"`
	Description string `json:"description" doc:"First-person description"`
}

// MoodsOutput wraps the mood list for Huma.
type MoodsOutput struct {
	Body []MoodResponse
}

func (s *Server) handleListMoodsByEmotion(ctx context.Context, input *ListMoodsInput) (*MoodsOutput, error) {
	moods, err := s.services.Content.ListMoodsByEmotion(ctx, input.EmotionID)
	if err != nil {
		return nil, err
	}

	resp := make([]MoodResponse, len(moods))
	for i, m := range moods {
		resp[i] = mapMoodResponse(m)
	}

	return &MoodsOutput{Body: resp}, nil
}

func mapMoodResponse(m domain.Mood) MoodResponse {
	return MoodResponse{
		ID:          m.ID,
		EmotionID:   m.EmotionID,
		Name:        m.Name,
		Description: m.Description,
	}
}
