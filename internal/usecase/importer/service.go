package importer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"locheck/internal/domain"
	"locheck/internal/ports"
)

// Service imports a converted document pair (JLIFF + tag map) into a project.
// Both payloads are parsed up front so malformed files are rejected before
// anything is persisted.
type Service struct {
	Files  ports.FileRepository
	Jliff  ports.TranslationParser
	TagMap ports.TagMapParser
}

func New(files ports.FileRepository, jl ports.TranslationParser, tm ports.TagMapParser) *Service {
	return &Service{Files: files, Jliff: jl, TagMap: tm}
}

type ImportArgs struct {
	ProjectID     int64
	Name          string
	JliffContent  []byte
	TagMapContent []byte
}

type ImportResult struct {
	FileID   int64
	Units    int
	Segments int
}

func (s *Service) Import(ctx context.Context, in ImportArgs) (ImportResult, error) {
	td, err := s.Jliff.Parse(in.JliffContent)
	if err != nil {
		return ImportResult{}, fmt.Errorf("parse jliff: %w", err)
	}
	sd, err := s.TagMap.Parse(in.TagMapContent)
	if err != nil {
		return ImportResult{}, fmt.Errorf("parse tagmap: %w", err)
	}
	sum := sha256.Sum256(append(append([]byte{}, in.JliffContent...), in.TagMapContent...))
	f := &domain.File{
		ProjectID: in.ProjectID,
		Name:      in.Name,
		JliffRaw:  string(in.JliffContent),
		TagMapRaw: string(in.TagMapContent),
		Hash:      hex.EncodeToString(sum[:]),
		Version:   1,
	}
	if err := s.Files.Create(ctx, f); err != nil {
		return ImportResult{}, err
	}
	segments := 0
	for _, u := range sd.Units {
		segments += len(u.Segments)
	}
	return ImportResult{FileID: f.ID, Units: len(td.Units), Segments: segments}, nil
}
