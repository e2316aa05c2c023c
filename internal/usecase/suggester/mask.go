package suggester

import (
	"fmt"
	"strings"
)

// maskTokens replaces placeholder tokens with opaque markers the model has no
// reason to touch, and returns an unmask function restoring them in reverse
// order.
func maskTokens(s string, tokens []string) (string, func(string) string) {
	masked := s
	repls := make([]struct{ from, to string }, 0, len(tokens))
	for i, tok := range tokens {
		marker := fmt.Sprintf("__PH_%d__", i)
		masked = strings.ReplaceAll(masked, tok, marker)
		repls = append(repls, struct{ from, to string }{from: marker, to: tok})
	}
	unmask := func(in string) string {
		out := in
		for i := len(repls) - 1; i >= 0; i-- {
			out = strings.ReplaceAll(out, repls[i].from, repls[i].to)
		}
		return out
	}
	return masked, unmask
}
