package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shloka-app/shloka-server/internal/domain"
)

func (s *Server) registerChapterRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listChapters",
		Method:      http.MethodGet,
		Path:        "/api/chapters",
		Summary:     "List chapters",
		Description: "Returns all chapters in ascending chapter order",
		Tags:        []string{"Content"},
	}, s.handleListChapters)

	huma.Register(s.api, huma.Operation{
		OperationID: "getChapter",
		Method:      http.MethodGet,
		Path:        "/api/chapters/{chapterNumber}",
		Summary:     "Get chapter",
		Description: "Returns one chapter by number",
		Tags:        []string{"Content"},
	}, s.handleGetChapter)
}

// GetChapterInput carries the chapter number path parameter. Non-numeric
// input fails huma validation before the handler runs.
type GetChapterInput struct {
	ChapterNumber int `path:"chapterNumber" doc:"Chapter number (1-18)"`
}

// VerseResponse contains one sample verse in API responses.
type VerseResponse struct {
	VerseNumber string `json:"verse_number" doc:"Citation-style number (2.47)"`
	Sanskrit    string `json:"sanskrit" doc:"Verse in Devanagari"`
	English     string `json:"english" doc:"Verse translation"`
}

// ChapterResponse contains one chapter in API responses.
type ChapterResponse struct {
	ID            string          `json:"id" doc:"Chapter ID"`
	ChapterNumber int             `json:"chapter_number" doc:"Chapter number"`
	NameEnglish   string          `json:"name_english" doc:"English name"`
	NameSanskrit  string          `json:"name_sanskrit" doc:"Sanskrit name with transliteration"`
	Description   string          `json:"description" doc:"What the chapter covers"`
	KeyTeaching   string          `json:"key_teaching" doc:"Central teaching"`
	Verses        []VerseResponse `json:"verses" doc:"Sample verses"`
}

// ChaptersOutput wraps the chapter list for Huma.
type ChaptersOutput struct {
	Body []ChapterResponse
}

// ChapterOutput wraps a single chapter for Huma.
type ChapterOutput struct {
	Body ChapterResponse
}

func (s *Server) handleListChapters(ctx context.Context, _ *struct{}) (*ChaptersOutput, error) {
	chapters, err := s.services.Content.ListChapters(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ChapterResponse, len(chapters))
	for i := range chapters {
		resp[i] = mapChapterResponse(&chapters[i])
	}

	return &ChaptersOutput{Body: resp}, nil
}

func (s *Server) handleGetChapter(ctx context.Context, input *GetChapterInput) (*ChapterOutput, error) {
	ch, err := s.services.Content.GetChapterByNumber(ctx, input.ChapterNumber)
	if err != nil {
		return nil, err
	}

	return &ChapterOutput{Body: mapChapterResponse(ch)}, nil
}

func mapChapterResponse(ch *domain.Chapter) ChapterResponse {
	verses := make([]VerseResponse, len(ch.Verses))
	for i, v := range ch.Verses {
		verses[i] = VerseResponse{
			VerseNumber: v.VerseNumber,
			Sanskrit:    v.Sanskrit,
			English:     v.English,
		}
	}

	return ChapterResponse{
		ID:            ch.ID,
		ChapterNumber: ch.ChapterNumber,
		NameEnglish:   ch.NameEnglish,
		NameSanskrit:  ch.NameSanskrit,
		Description:   ch.Description,
		KeyTeaching:   ch.KeyTeaching,
		Verses:        verses,
	}
}
