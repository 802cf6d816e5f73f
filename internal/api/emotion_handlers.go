package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shloka-app/shloka-server/internal/domain"
)

func (s *Server) registerEmotionRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listEmotions",
		Method:      http.MethodGet,
		Path:        "/api/emotions",
		Summary:     "List emotions",
		Description: "Returns all emotion categories",
		Tags:        []string{"Content"},
	}, s.handleListEmotions)
}

// EmotionResponse contains one emotion category in API responses.
type EmotionResponse struct {
	ID           string `json:"id" doc:"Emotion ID"`
	NameEnglish  string `json:"name_english" doc:"English name"`
	NameSanskrit string `json:"name_sanskrit" doc:"Sanskrit name with transliteration"`
	Description  string `json:"description" doc:"When this emotion applies"`
	Icon         string `json:"icon" doc:"Display icon"`
}

// EmotionsOutput wraps the emotion list for Huma. The body is a bare array;
// clients index it directly.
type EmotionsOutput struct {
	Body []EmotionResponse
}

func (s *Server) handleListEmotions(ctx context.Context, _ *struct{}) (*EmotionsOutput, error) {
	emotions, err := s.services.Content.ListEmotions(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]EmotionResponse, len(emotions))
	for i, e := range emotions {
		resp[i] = mapEmotionResponse(e)
	}

	return &EmotionsOutput{Body: resp}, nil
}

func mapEmotionResponse(e domain.Emotion) EmotionResponse {
	return EmotionResponse{
		ID:           e.ID,
		NameEnglish:  e.NameEnglish,
		NameSanskrit: e.NameSanskrit,
		Description:  e.Description,
		Icon:         e.Icon,
	}
}
