package normalizer

import (
	"fmt"

	"locheck/internal/domain"
)

// Service is the segment normalization engine. It merges a translation
// document with its tag-map counterpart and computes per-segment placeholder
// parity. It performs no I/O and raises nothing for shape imbalance; every
// irregularity surfaces as row content. A single Service may be shared across
// goroutines: the tokenization cache carries its own lock, and callers on
// different document versions at worst recompute tokens.
type Service struct {
	cache *tokenCache
}

func New() *Service { return &Service{cache: newTokenCache()} }

// Normalize walks the tag-map document unit by unit in document order,
// pairing each segment with its translation unit, then appends one row per
// leftover translation unit that matched no structural segment. Leftovers
// keep translation-document input order.
func (s *Service) Normalize(td *domain.TranslationDoc, sd *domain.TagMapDoc, version int64) []*domain.SegmentRow {
	byKey := map[string]*domain.TransUnit{}
	var remaining []string
	if td != nil {
		for _, u := range td.Units {
			k := domain.MakeKey(u.UnitID, u.SegmentID)
			if _, dup := byKey[k]; dup {
				continue
			}
			byKey[k] = u
			remaining = append(remaining, k)
		}
	}

	matched := map[string]struct{}{}
	var rows []*domain.SegmentRow
	if sd != nil {
		for _, unit := range sd.Units {
			for _, seg := range unit.Segments {
				key := domain.MakeKey(unit.UnitID, seg.SegmentID)
				tu := byKey[key]
				if tu != nil {
					matched[key] = struct{}{}
				}
				rows = append(rows, s.buildRow(key, unit.UnitID, seg.SegmentID, seg, tu, version))
			}
		}
	}
	for _, key := range remaining {
		if _, ok := matched[key]; ok {
			continue
		}
		tu := byKey[key]
		rows = append(rows, s.buildRow(key, tu.UnitID, tu.SegmentID, nil, tu, version))
	}
	return rows
}

// buildRow assembles one output row. Either seg or tu may be nil; parity is
// only computed when both sides exist.
func (s *Service) buildRow(key, unitID, segmentID string, seg *domain.TagMapSegment, tu *domain.TransUnit, version int64) *domain.SegmentRow {
	row := &domain.SegmentRow{
		Key:          key,
		UnitID:       unitID,
		SegmentID:    segmentID,
		Placeholders: []domain.PlaceholderChip{},
		Status:       domain.ParityUnknown,
	}
	if tu != nil {
		row.Source = tu.Source
		row.Target = tu.Target
	}
	// Tokens are always computed so unmatched rows still render.
	row.SourceTokens = s.cache.tokens(key, dirSource, row.Source, version)
	row.TargetTokens = s.cache.tokens(key, dirTarget, row.Target, version)
	if seg != nil {
		row.Placeholders = chips(seg)
	}
	if seg == nil || tu == nil {
		row.Issues = &domain.RowIssues{UnknownSource: []string{}, UnknownTarget: []string{}}
		return row
	}

	known := make(map[string]struct{}, len(row.Placeholders))
	for _, c := range row.Placeholders {
		known[c.Token] = struct{}{}
	}
	src := collectStats(row.SourceTokens, known)
	tgt := collectStats(row.TargetTokens, known)
	p := classify(src, tgt)
	row.Counts = domain.PlaceholderCounts{
		Source:  src.total,
		Target:  tgt.total,
		Missing: p.Missing,
		Extra:   p.Extra,
	}
	row.Status = p.Status
	if p.Status != domain.ParityOK || len(src.unknown) > 0 || len(tgt.unknown) > 0 || p.OrderMismatch {
		row.Issues = &domain.RowIssues{
			UnknownSource: emptyIfNil(src.unknown),
			UnknownTarget: emptyIfNil(tgt.unknown),
			OrderMismatch: p.OrderMismatch,
		}
	}
	return row
}

// chips normalizes a segment's declarations for the review surface.
// Declarations without an explicit id get "{elem}-{index}".
func chips(seg *domain.TagMapSegment) []domain.PlaceholderChip {
	out := make([]domain.PlaceholderChip, 0, len(seg.Placeholders))
	for i, d := range seg.Placeholders {
		id := d.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", d.Elem, i)
		}
		out = append(out, domain.PlaceholderChip{
			ID:           id,
			Token:        d.Token,
			Elem:         d.Elem,
			Attrs:        d.Attrs,
			OriginalData: d.OriginalData,
		})
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
