package ports

import "locheck/internal/domain"

// TranslationParser reads and rewrites the translation-side document.
type TranslationParser interface {
	Format() string
	Parse(data []byte) (*domain.TranslationDoc, error)
	// UpdateTarget rewrites the target text of one (unit, segment) pair in
	// the raw payload, preserving every other field verbatim.
	UpdateTarget(data []byte, unitID, segmentID, target string) ([]byte, error)
}

// TagMapParser reads the structural tag-map document.
type TagMapParser interface {
	Format() string
	Parse(data []byte) (*domain.TagMapDoc, error)
}
