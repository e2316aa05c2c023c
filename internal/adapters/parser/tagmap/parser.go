package tagmap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"locheck/internal/domain"
)

// document mirrors the tag-map JSON emitted alongside each JLIFF artifact.
type document struct {
	FileID           string `json:"file_id"`
	OriginalPath     string `json:"original_path"`
	SourceLang       string `json:"source_language"`
	TargetLang       string `json:"target_language"`
	PlaceholderStyle string `json:"placeholder_style"`
	Units            []unit `json:"units"`
}

type unit struct {
	UnitID   string    `json:"unit_id"`
	Segments []segment `json:"segments"`
}

type segment struct {
	SegmentID    string            `json:"segment_id"`
	Placeholders []tagInstance     `json:"placeholders_in_order"`
	OriginalData map[string]string `json:"originalData_bucket"`
}

type tagInstance struct {
	Placeholder  string             `json:"placeholder"`
	Elem         string             `json:"elem"`
	ID           string             `json:"id"`
	Attrs        map[string]*string `json:"attrs"`
	OriginalData string             `json:"originalData"`
}

type Parser struct{}

func New() *Parser { return &Parser{} }

func (p *Parser) Format() string { return "tagmap" }

func (p *Parser) Parse(data []byte) (*domain.TagMapDoc, error) {
	var doc document
	if err := json.Unmarshal(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}), &doc); err != nil {
		return nil, fmt.Errorf("invalid tagmap json: %w", err)
	}
	out := &domain.TagMapDoc{
		FileID:           doc.FileID,
		OriginalPath:     doc.OriginalPath,
		SourceLang:       doc.SourceLang,
		TargetLang:       doc.TargetLang,
		PlaceholderStyle: doc.PlaceholderStyle,
	}
	out.Units = make([]*domain.TagMapUnit, 0, len(doc.Units))
	for _, u := range doc.Units {
		du := &domain.TagMapUnit{UnitID: u.UnitID}
		for _, s := range u.Segments {
			ds := &domain.TagMapSegment{SegmentID: s.SegmentID, OriginalData: s.OriginalData}
			for _, ti := range s.Placeholders {
				ds.Placeholders = append(ds.Placeholders, &domain.PlaceholderDecl{
					ID:           ti.ID,
					Token:        ti.Placeholder,
					Elem:         ti.Elem,
					Attrs:        attrs(ti.Attrs),
					OriginalData: ti.OriginalData,
				})
			}
			du.Segments = append(du.Segments, ds)
		}
		out.Units = append(out.Units, du)
	}
	return out, nil
}

// attrs flattens the converter's nullable attribute values; null becomes the
// empty string.
func attrs(in map[string]*string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		if v != nil {
			out[k] = *v
		} else {
			out[k] = ""
		}
	}
	return out
}
