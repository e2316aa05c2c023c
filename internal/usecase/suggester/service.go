package suggester

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"locheck/internal/domain"
	"locheck/internal/ports"
)

// Settings keys for the suggestion provider.
const (
	KeyBaseURL = "suggest.base_url"
	KeyAPIKey  = "suggest.api_key"
	KeyModel   = "suggest.model"
)

type Deps struct {
	Settings ports.SettingsRepository
	// BuildProvider returns a concrete provider for the configured endpoint.
	BuildProvider func(baseURL, apiKey, model string) ports.Provider
}

// Service produces machine-translation suggestions for a segment under
// review. Placeholders are masked before prompting and restored afterwards; a
// suggestion that loses a placeholder is rejected rather than shown.
type Service struct{ d Deps }

func New(d Deps) *Service { return &Service{d: d} }

type SuggestArgs struct {
	Source       string
	SourceLang   string
	TargetLang   string
	Placeholders []string
}

func (s *Service) Suggest(ctx context.Context, a SuggestArgs) (string, error) {
	if strings.TrimSpace(a.Source) == "" {
		return "", errors.New("source text is empty")
	}
	baseURL, err := s.d.Settings.Get(ctx, KeyBaseURL)
	if err != nil {
		return "", err
	}
	if baseURL == "" {
		return "", errors.New("suggestion provider not configured")
	}
	apiKey, err := s.d.Settings.Get(ctx, KeyAPIKey)
	if err != nil {
		return "", err
	}
	model, err := s.d.Settings.Get(ctx, KeyModel)
	if err != nil {
		return "", err
	}

	masked, unmask := maskTokens(a.Source, a.Placeholders)
	prov := s.d.BuildProvider(baseURL, apiKey, model)
	res, err := prov.Suggest(ctx, masked, ports.SuggestParams{
		SourceLang:  a.SourceLang,
		TargetLang:  a.TargetLang,
		Model:       model,
		Temperature: 0.0,
	})
	if err != nil {
		return "", err
	}
	out := unmask(strings.TrimSpace(res.Text))
	for _, tok := range a.Placeholders {
		if !strings.Contains(out, tok) {
			return "", fmt.Errorf("placeholder missing in suggestion: %s", tok)
		}
	}
	return out, nil
}

// PlaceholderTokens pulls the declared chip tokens off a row for masking.
func PlaceholderTokens(row *domain.SegmentRow) []string {
	out := make([]string, 0, len(row.Placeholders))
	for _, c := range row.Placeholders {
		out = append(out, c.Token)
	}
	return out
}
