package ports

import "context"

type SuggestParams struct {
	SourceLang  string
	TargetLang  string
	Model       string
	Temperature float64
}

type Suggestion struct {
	Text string
	Raw  string
}

// Provider produces machine-translation suggestions for the review surface.
type Provider interface {
	Suggest(ctx context.Context, text string, p SuggestParams) (Suggestion, error)
	Test(ctx context.Context) error
}
