package jliff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"locheck/internal/domain"
)

// document mirrors the JLIFF JSON emitted by the conversion pipeline. Only
// the fields the engine consumes are typed; UpdateTarget goes through a
// generic round-trip so the QA and note fields survive untouched.
type document struct {
	ProjectName string      `json:"Project_name"`
	ProjectID   string      `json:"Project_ID"`
	File        string      `json:"File"`
	SourceLang  string      `json:"Source_language"`
	TargetLang  string      `json:"Target_language"`
	Transunits  []transUnit `json:"Transunits"`
}

type transUnit struct {
	UnitID      string `json:"unit id"`
	TransunitID string `json:"transunit_id"`
	Source      string `json:"Source"`
	Target      string `json:"Target_translation"`
}

type Parser struct{}

func New() *Parser { return &Parser{} }

func (p *Parser) Format() string { return "jliff" }

func (p *Parser) Parse(data []byte) (*domain.TranslationDoc, error) {
	var doc document
	if err := json.Unmarshal(stripBOM(data), &doc); err != nil {
		return nil, fmt.Errorf("invalid jliff json: %w", err)
	}
	out := &domain.TranslationDoc{
		ProjectName: doc.ProjectName,
		ProjectID:   doc.ProjectID,
		File:        doc.File,
		SourceLang:  doc.SourceLang,
		TargetLang:  doc.TargetLang,
	}
	out.Units = make([]*domain.TransUnit, 0, len(doc.Transunits))
	for _, tu := range doc.Transunits {
		out.Units = append(out.Units, &domain.TransUnit{
			UnitID:    tu.UnitID,
			SegmentID: segmentID(tu.UnitID, tu.TransunitID),
			Source:    tu.Source,
			Target:    tu.Target,
		})
	}
	return out, nil
}

// UpdateTarget rewrites the Target_translation of one transunit inside raw
// JLIFF JSON. Everything else, including fields this adapter does not model,
// is carried through as-is.
func (p *Parser) UpdateTarget(data []byte, unitID, segmentID, target string) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(stripBOM(data), &doc); err != nil {
		return nil, fmt.Errorf("invalid jliff json: %w", err)
	}
	units, ok := doc["Transunits"].([]any)
	if !ok {
		return nil, fmt.Errorf("jliff json has no Transunits array")
	}
	want := transunitID(unitID, segmentID)
	found := false
	for _, raw := range units {
		u, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if u["transunit_id"] == want {
			u["Target_translation"] = target
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("transunit %s not found", want)
	}
	return json.Marshal(doc)
}

// transunitID is the converter's composite id: "u{unit}-s{segment}".
func transunitID(unitID, segmentID string) string {
	return fmt.Sprintf("u%s-s%s", unitID, segmentID)
}

// segmentID recovers the segment identifier from a transunit id. Ids that do
// not follow the converter's pattern are used verbatim.
func segmentID(unitID, tuID string) string {
	if rest, ok := strings.CutPrefix(tuID, "u"+unitID+"-s"); ok && rest != "" {
		return rest
	}
	return tuID
}

func stripBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})
}
