package normalizer

import (
	"regexp"

	"locheck/internal/domain"
)

// placeholderRE matches inline placeholder codes: double-curly converter
// tokens like {{ph:1}} or {{pc:2:start}}, and bare single-curly codes like
// {g1}. The double-curly alternative comes first so "{{ph:1}}" is not split
// at the inner brace.
var placeholderRE = regexp.MustCompile(`\{\{[^{}]+\}\}|\{[^{}]+\}`)

// Tokenize splits raw text into alternating text and placeholder tokens in
// order of appearance. Text between placeholders becomes a single token;
// empty text runs are dropped.
func Tokenize(raw string) []domain.SegmentToken {
	if raw == "" {
		return nil
	}
	matches := placeholderRE.FindAllStringIndex(raw, -1)
	if len(matches) == 0 {
		return []domain.SegmentToken{{Kind: domain.TokenText, Value: raw}}
	}
	tokens := make([]domain.SegmentToken, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			tokens = append(tokens, domain.SegmentToken{Kind: domain.TokenText, Value: raw[last:m[0]]})
		}
		tokens = append(tokens, domain.SegmentToken{Kind: domain.TokenPlaceholder, Value: raw[m[0]:m[1]]})
		last = m[1]
	}
	if last < len(raw) {
		tokens = append(tokens, domain.SegmentToken{Kind: domain.TokenText, Value: raw[last:]})
	}
	return tokens
}
