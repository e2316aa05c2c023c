package normalizer

import "locheck/internal/domain"

// placeholderStats summarizes the placeholder tokens of one direction.
type placeholderStats struct {
	frequency map[string]int
	sequence  []string
	total     int
	unknown   []string
}

// collectStats filters placeholder tokens out of a token sequence and counts
// them against the segment's declared placeholder set. Undeclared tokens land
// in unknown (deduplicated, in order of first appearance) but still count
// toward frequency and sequence.
func collectStats(tokens []domain.SegmentToken, known map[string]struct{}) placeholderStats {
	st := placeholderStats{frequency: map[string]int{}}
	seen := map[string]struct{}{}
	for _, t := range tokens {
		if t.Kind != domain.TokenPlaceholder {
			continue
		}
		st.frequency[t.Value]++
		st.sequence = append(st.sequence, t.Value)
		st.total++
		if _, ok := known[t.Value]; !ok {
			if _, dup := seen[t.Value]; !dup {
				seen[t.Value] = struct{}{}
				st.unknown = append(st.unknown, t.Value)
			}
		}
	}
	return st
}
