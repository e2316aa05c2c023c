package domain

// ParityStatus classifies a segment's placeholder parity.
type ParityStatus string

const (
	ParityOK      ParityStatus = "ok"
	ParityMissing ParityStatus = "missing"
	ParityExtra   ParityStatus = "extra"
	ParityUnknown ParityStatus = "unknown"
)

// PlaceholderChip is the normalized view of a PlaceholderDecl rendered by the
// review surface.
type PlaceholderChip struct {
	ID           string            `json:"id"`
	Token        string            `json:"token"`
	Elem         string            `json:"elem"`
	Attrs        map[string]string `json:"attrs,omitempty"`
	OriginalData string            `json:"original_data,omitempty"`
}

// PlaceholderCounts summarizes placeholder occurrences for one segment.
type PlaceholderCounts struct {
	Source  int `json:"source"`
	Target  int `json:"target"`
	Missing int `json:"missing"`
	Extra   int `json:"extra"`
}

// RowIssues carries the detail behind a non-ok parity verdict.
type RowIssues struct {
	UnknownSource []string `json:"unknown_source"`
	UnknownTarget []string `json:"unknown_target"`
	OrderMismatch bool     `json:"order_mismatch"`
}

// SegmentRow is one normalized segment as consumed by the review surface.
type SegmentRow struct {
	Key          string            `json:"key"`
	UnitID       string            `json:"unit_id"`
	SegmentID    string            `json:"segment_id"`
	Source       string            `json:"source"`
	Target       string            `json:"target"`
	SourceTokens []SegmentToken    `json:"source_tokens"`
	TargetTokens []SegmentToken    `json:"target_tokens"`
	Placeholders []PlaceholderChip `json:"placeholders"`
	Counts       PlaceholderCounts `json:"placeholder_counts"`
	Status       ParityStatus      `json:"status"`
	Issues       *RowIssues        `json:"issues,omitempty"`
}
