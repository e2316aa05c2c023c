package domain

import "time"

// File is one converted document pair imported into a project: the JLIFF
// payload and its tag-map counterpart. Version is bumped whenever either
// payload is regenerated or a segment target is written back, and scopes the
// engine's tokenization cache.
type File struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	Name      string    `json:"name"`
	JliffRaw  string    `json:"jliff_json"`
	TagMapRaw string    `json:"tagmap_json"`
	Hash      string    `json:"hash"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
