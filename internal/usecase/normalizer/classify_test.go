package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"locheck/internal/domain"
)

func known(tokens ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		m[tok] = struct{}{}
	}
	return m
}

func TestCollectStats(t *testing.T) {
	t.Parallel()

	toks := Tokenize("{g1} a {g2} b {g1} c {x9}")
	st := collectStats(toks, known("{g1}", "{g2}"))

	assert.Equal(t, map[string]int{"{g1}": 2, "{g2}": 1, "{x9}": 1}, st.frequency)
	assert.Equal(t, []string{"{g1}", "{g2}", "{g1}", "{x9}"}, st.sequence)
	assert.Equal(t, 4, st.total)
	assert.Equal(t, []string{"{x9}"}, st.unknown)
}

func TestCollectStatsIgnoresText(t *testing.T) {
	t.Parallel()

	st := collectStats(Tokenize("no codes here"), known("{g1}"))
	assert.Empty(t, st.frequency)
	assert.Nil(t, st.sequence)
	assert.Zero(t, st.total)
	assert.Nil(t, st.unknown)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		source      string
		target      string
		known       map[string]struct{}
		wantMissing int
		wantExtra   int
		wantOrder   bool
		wantStatus  domain.ParityStatus
	}{
		{
			name:       "identical placeholders",
			source:     "Hello {g1} world",
			target:     "Bonjour {g1} monde",
			known:      known("{g1}"),
			wantStatus: domain.ParityOK,
		},
		{
			name:        "multiset missing",
			source:      "{g1} and {g1}",
			target:      "{g1}",
			known:       known("{g1}"),
			wantMissing: 1,
			wantStatus:  domain.ParityMissing,
		},
		{
			name:       "symmetric surplus counts extra only",
			source:     "{g1}",
			target:     "{g1} {g1} {g1}",
			known:      known("{g1}"),
			wantExtra:  2,
			wantStatus: domain.ParityExtra,
		},
		{
			name:       "order mismatch wins over equal multisets",
			source:     "{a} then {b}",
			target:     "{b} then {a}",
			known:      known("{a}", "{b}"),
			wantOrder:  true,
			wantStatus: domain.ParityUnknown,
		},
		{
			name:        "length difference never flags order",
			source:      "{a} {b}",
			target:      "{b}",
			known:       known("{a}", "{b}"),
			wantMissing: 1,
			wantStatus:  domain.ParityMissing,
		},
		{
			name:        "missing and extra together is ambiguous",
			source:      "{a} {c} x",
			target:      "{b} y",
			known:       known("{a}", "{b}", "{c}"),
			wantMissing: 2,
			wantExtra:   1,
			wantStatus:  domain.ParityUnknown,
		},
		{
			name:       "unknown token forces unknown despite parity",
			source:     "{g9}",
			target:     "{g9}",
			known:      known("{g1}"),
			wantStatus: domain.ParityUnknown,
		},
		{
			name:       "no placeholders anywhere",
			source:     "plain",
			target:     "plat",
			known:      known(),
			wantStatus: domain.ParityOK,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := collectStats(Tokenize(tt.source), tt.known)
			tgt := collectStats(Tokenize(tt.target), tt.known)
			p := classify(src, tgt)
			assert.Equal(t, tt.wantMissing, p.Missing, "missing")
			assert.Equal(t, tt.wantExtra, p.Extra, "extra")
			assert.Equal(t, tt.wantOrder, p.OrderMismatch, "order")
			assert.Equal(t, tt.wantStatus, p.Status, "status")
		})
	}
}
