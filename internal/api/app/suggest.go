package app

import (
	"context"
	"errors"

	"locheck/internal/domain"
	"locheck/internal/ports"
	"locheck/internal/usecase/reviewer"
	"locheck/internal/usecase/suggester"
)

type SuggestAPI struct {
	svc      *suggester.Service
	review   *reviewer.Service
	files    ports.FileRepository
	projects ports.ProjectRepository
}

func NewSuggestAPI(svc *suggester.Service, review *reviewer.Service, files ports.FileRepository, projects ports.ProjectRepository) *SuggestAPI {
	return &SuggestAPI{svc: svc, review: review, files: files, projects: projects}
}

type SuggestRequest struct {
	FileID int64  `json:"file_id"`
	Key    string `json:"key"`
}

type SuggestResponse struct {
	Suggestion string `json:"suggestion"`
}

// Suggest produces a machine translation for one segment, with its declared
// placeholders masked out of the prompt and verified on the way back.
func (a *SuggestAPI) Suggest(req SuggestRequest) (SuggestResponse, error) {
	ctx := context.Background()
	rows, err := a.review.Rows(ctx, req.FileID)
	if err != nil {
		return SuggestResponse{}, err
	}
	var row *domain.SegmentRow
	for _, r := range rows {
		if r.Key == req.Key {
			row = r
			break
		}
	}
	if row == nil {
		return SuggestResponse{}, errors.New("segment not found: " + req.Key)
	}
	f, err := a.files.Get(ctx, req.FileID)
	if err != nil {
		return SuggestResponse{}, err
	}
	p, err := a.projects.Get(ctx, f.ProjectID)
	if err != nil {
		return SuggestResponse{}, err
	}
	out, err := a.svc.Suggest(ctx, suggester.SuggestArgs{
		Source:       row.Source,
		SourceLang:   p.SourceLang,
		TargetLang:   p.TargetLang,
		Placeholders: suggester.PlaceholderTokens(row),
	})
	if err != nil {
		return SuggestResponse{}, err
	}
	return SuggestResponse{Suggestion: out}, nil
}
