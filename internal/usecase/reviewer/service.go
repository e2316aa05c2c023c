package reviewer

import (
	"context"
	"errors"
	"fmt"

	"locheck/internal/domain"
	"locheck/internal/ports"
	"locheck/internal/usecase/normalizer"
)

type Deps struct {
	Files   ports.FileRepository
	Reviews ports.ReviewRepository
	Jliff   ports.TranslationParser
	TagMap  ports.TagMapParser
	Engine  *normalizer.Service
}

// Service drives the review surface: it loads a document pair, runs the
// normalization engine over it, and writes edited targets back into the
// stored JLIFF payload.
type Service struct{ d Deps }

func New(d Deps) *Service { return &Service{d: d} }

// FileRows is one loaded document pair plus its normalized rows.
type FileRows struct {
	File *domain.File           `json:"file"`
	Doc  *domain.TranslationDoc `json:"doc"`
	Rows []*domain.SegmentRow   `json:"rows"`
}

func (s *Service) Load(ctx context.Context, fileID int64) (*FileRows, error) {
	f, err := s.d.Files.Get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	td, err := s.d.Jliff.Parse([]byte(f.JliffRaw))
	if err != nil {
		return nil, fmt.Errorf("file %d: %w", fileID, err)
	}
	sd, err := s.d.TagMap.Parse([]byte(f.TagMapRaw))
	if err != nil {
		return nil, fmt.Errorf("file %d: %w", fileID, err)
	}
	rows := s.d.Engine.Normalize(td, sd, f.Version)
	return &FileRows{File: f, Doc: td, Rows: rows}, nil
}

func (s *Service) Rows(ctx context.Context, fileID int64) ([]*domain.SegmentRow, error) {
	loaded, err := s.Load(ctx, fileID)
	if err != nil {
		return nil, err
	}
	return loaded.Rows, nil
}

// UpdateTarget writes a new target text for one segment back into the stored
// JLIFF payload, bumps the file version, and returns the re-normalized row so
// the caller sees the fresh parity verdict. The review record persists the
// edit alongside its verdict.
func (s *Service) UpdateTarget(ctx context.Context, fileID int64, key, target string) (*domain.SegmentRow, error) {
	f, err := s.d.Files.Get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	unitID, segmentID := domain.ParseKey(key)
	updated, err := s.d.Jliff.UpdateTarget([]byte(f.JliffRaw), unitID, segmentID, target)
	if err != nil {
		return nil, err
	}
	version := f.Version + 1
	if err := s.d.Files.UpdateJliff(ctx, fileID, string(updated), version); err != nil {
		return nil, err
	}

	td, err := s.d.Jliff.Parse(updated)
	if err != nil {
		return nil, err
	}
	sd, err := s.d.TagMap.Parse([]byte(f.TagMapRaw))
	if err != nil {
		return nil, err
	}
	rows := s.d.Engine.Normalize(td, sd, version)
	var row *domain.SegmentRow
	for _, r := range rows {
		if r.Key == key {
			row = r
			break
		}
	}
	if row == nil {
		return nil, errors.New("updated segment not found after normalization: " + key)
	}
	err = s.d.Reviews.Upsert(ctx, &domain.Review{
		FileID:     fileID,
		SegmentKey: key,
		Target:     target,
		Status:     row.Status,
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}
