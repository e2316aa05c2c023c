package normalizer

import "locheck/internal/domain"

// parity is the combined verdict for one segment.
type parity struct {
	Missing       int
	Extra         int
	OrderMismatch bool
	Status        domain.ParityStatus
}

// classify combines the two directional stats into the final parity verdict.
func classify(src, tgt placeholderStats) parity {
	p := parity{
		Missing:       surplus(src.frequency, tgt.frequency),
		Extra:         surplus(tgt.frequency, src.frequency),
		OrderMismatch: orderMismatch(src.sequence, tgt.sequence),
	}
	switch {
	case len(src.unknown) > 0 || len(tgt.unknown) > 0 || p.OrderMismatch:
		p.Status = domain.ParityUnknown
	case p.Missing > 0 && p.Extra > 0:
		// Losses on both sides: cannot safely label missing vs extra.
		p.Status = domain.ParityUnknown
	case p.Missing > 0:
		p.Status = domain.ParityMissing
	case p.Extra > 0:
		p.Status = domain.ParityExtra
	default:
		p.Status = domain.ParityOK
	}
	return p
}

// surplus is the one-directional multiset difference: how many occurrences in
// a are not covered by b. Not a symmetric difference.
func surplus(a, b map[string]int) int {
	n := 0
	for tok, cnt := range a {
		if d := cnt - b[tok]; d > 0 {
			n += d
		}
	}
	return n
}

// orderMismatch reports element-wise divergence of equal-length sequences.
// Sequences of different length never mismatch here; length differences are
// already captured as missing/extra counts.
func orderMismatch(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}
