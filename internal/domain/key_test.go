package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		unitID    string
		segmentID string
	}{
		{"1", "1"},
		{"u12", "s3"},
		{"unit-with-dash", "seg_with_underscore"},
		{"ünïcode", "セグメント"},
		{"", "1"},
		{"1", ""},
	}
	for _, tt := range tests {
		u, s := ParseKey(MakeKey(tt.unitID, tt.segmentID))
		assert.Equal(t, tt.unitID, u)
		assert.Equal(t, tt.segmentID, s)
	}
}

func TestParseKeyWithoutSeparator(t *testing.T) {
	t.Parallel()

	u, s := ParseKey("plain")
	assert.Equal(t, "plain", u)
	assert.Equal(t, "", s)
}

func TestParseKeySplitsAtFirstSeparator(t *testing.T) {
	t.Parallel()

	// Identifiers containing the separator are not round-trip safe; the
	// split happens at the first occurrence.
	u, s := ParseKey("a::b::c")
	assert.Equal(t, "a", u)
	assert.Equal(t, "b::c", s)
}
