package domain

// TransUnit is one bilingual record from the translation document.
type TransUnit struct {
	UnitID    string `json:"unit_id"`
	SegmentID string `json:"segment_id"`
	Source    string `json:"source"`
	Target    string `json:"target"`
}

// TranslationDoc is the flat translation-side document produced by the
// conversion pipeline (JLIFF).
type TranslationDoc struct {
	ProjectName string       `json:"project_name"`
	ProjectID   string       `json:"project_id"`
	File        string       `json:"file"`
	SourceLang  string       `json:"source_lang"`
	TargetLang  string       `json:"target_lang"`
	Units       []*TransUnit `json:"units"`
}

// PlaceholderDecl declares one placeholder that should appear in a segment's
// text, in declaration order.
type PlaceholderDecl struct {
	ID           string            `json:"id"`
	Token        string            `json:"placeholder"`
	Elem         string            `json:"elem"`
	Attrs        map[string]string `json:"attrs,omitempty"`
	OriginalData string            `json:"original_data,omitempty"`
}

// TagMapSegment is the declared placeholder structure of one segment.
type TagMapSegment struct {
	SegmentID    string             `json:"segment_id"`
	Placeholders []*PlaceholderDecl `json:"placeholders_in_order"`
	OriginalData map[string]string  `json:"original_data_bucket,omitempty"`
}

// TagMapUnit groups the segments of one translation unit.
type TagMapUnit struct {
	UnitID   string           `json:"unit_id"`
	Segments []*TagMapSegment `json:"segments"`
}

// TagMapDoc is the structural counterpart of a TranslationDoc: the
// authoritative list of placeholders each segment should carry.
type TagMapDoc struct {
	FileID           string        `json:"file_id"`
	OriginalPath     string        `json:"original_path"`
	SourceLang       string        `json:"source_lang"`
	TargetLang       string        `json:"target_lang"`
	PlaceholderStyle string        `json:"placeholder_style"`
	Units            []*TagMapUnit `json:"units"`
}
