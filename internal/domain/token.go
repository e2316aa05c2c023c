package domain

// TokenKind discriminates the two members of the SegmentToken union.
type TokenKind string

const (
	TokenText        TokenKind = "text"
	TokenPlaceholder TokenKind = "placeholder"
)

// SegmentToken is one run of tokenized segment text: either a plain text run
// or a placeholder code. Token order equals order of appearance in the text.
type SegmentToken struct {
	Kind  TokenKind `json:"kind"`
	Value string    `json:"value"`
}
