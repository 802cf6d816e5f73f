package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shloka-app/shloka-server/internal/domain"
)

func (s *Server) registerGuidanceRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getGuidanceByMood",
		Method:      http.MethodGet,
		Path:        "/api/guidance/{moodId}",
		Summary:     "Get guidance for a mood",
		Description: "Returns the verse, translation, and commentary for one mood",
		Tags:        []string{"Content"},
	}, s.handleGetGuidanceByMood)
}

// GetGuidanceInput carries the mood path parameter.
type GetGuidanceInput struct {
	MoodID string `path:"moodId" doc:"Mood ID (e.g. fear_future)"`
}

// GuidanceResponse contains one guidance entry in API responses.
type GuidanceResponse struct {
	ID                 string `json:"id" doc:"Guidance ID"`
	MoodID             string `json:"mood_id" doc:"Mood this guidance answers"`
	Title              string `json:"title" doc:"Guidance title"`
	VerseReference     string `json:"verse_reference" doc:"Citation (Bhagavad Gita chapter.verse)"`
	SanskritVerse      string `json:"sanskrit_verse" doc:"Verse in Devanagari"`
	EnglishTranslation string `json:"english_translation" doc:"Verse translation"`
	GuidanceText       string `json:"guidance_text" doc:"Commentary applying the verse"`
}

// GuidanceOutput wraps the guidance response for Huma.
type GuidanceOutput struct {
	Body GuidanceResponse
}

func (s *Server) handleGetGuidanceByMood(ctx context.Context, input *GetGuidanceInput) (*GuidanceOutput, error) {
	g, err := s.services.Content.GetGuidanceByMood(ctx, input.MoodID)
	if err != nil {
		return nil, err
	}

	return &GuidanceOutput{Body: mapGuidanceResponse(g)}, nil
}

func mapGuidanceResponse(g *domain.Guidance) GuidanceResponse {
	return GuidanceResponse{
		ID:                 g.ID,
		MoodID:             g.MoodID,
		Title:              g.Title,
		VerseReference:     g.VerseReference,
		SanskritVerse:      g.SanskritVerse,
		EnglishTranslation: g.EnglishTranslation,
		GuidanceText:       g.GuidanceText,
	}
}
