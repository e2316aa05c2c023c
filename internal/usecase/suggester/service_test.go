package suggester

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locheck/internal/ports"
)

func TestMaskTokensRoundTrip(t *testing.T) {
	t.Parallel()

	tokens := []string{"{{ph:1}}", "{g2}"}
	masked, unmask := maskTokens("a {{ph:1}} b {g2} c {{ph:1}}", tokens)
	assert.NotContains(t, masked, "{{ph:1}}")
	assert.NotContains(t, masked, "{g2}")
	assert.Equal(t, "a {{ph:1}} b {g2} c {{ph:1}}", unmask(masked))
}

type fakeSettings map[string]string

func (f fakeSettings) Get(_ context.Context, key string) (string, error) { return f[key], nil }
func (f fakeSettings) Set(_ context.Context, key, value string) error    { f[key] = value; return nil }

type fakeProvider struct {
	reply func(text string) string
	seen  string
}

func (f *fakeProvider) Suggest(_ context.Context, text string, _ ports.SuggestParams) (ports.Suggestion, error) {
	f.seen = text
	return ports.Suggestion{Text: f.reply(text)}, nil
}

func (f *fakeProvider) Test(context.Context) error { return nil }

func configured() fakeSettings {
	return fakeSettings{
		KeyBaseURL: "http://localhost:1234",
		KeyAPIKey:  "k",
		KeyModel:   "m",
	}
}

func TestSuggestMasksAndRestores(t *testing.T) {
	t.Parallel()

	prov := &fakeProvider{reply: func(text string) string {
		return strings.ReplaceAll(text, "Hello", "Bonjour")
	}}
	svc := New(Deps{
		Settings:      configured(),
		BuildProvider: func(_, _, _ string) ports.Provider { return prov },
	})

	out, err := svc.Suggest(context.Background(), SuggestArgs{
		Source:       "Hello {{ph:1}} world",
		SourceLang:   "en",
		TargetLang:   "fr",
		Placeholders: []string{"{{ph:1}}"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bonjour {{ph:1}} world", out)
	// The provider never saw the raw placeholder.
	assert.NotContains(t, prov.seen, "{{ph:1}}")
}

func TestSuggestRejectsLostPlaceholder(t *testing.T) {
	t.Parallel()

	prov := &fakeProvider{reply: func(string) string { return "dropped everything" }}
	svc := New(Deps{
		Settings:      configured(),
		BuildProvider: func(_, _, _ string) ports.Provider { return prov },
	})

	_, err := svc.Suggest(context.Background(), SuggestArgs{
		Source:       "Hello {{ph:1}}",
		Placeholders: []string{"{{ph:1}}"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "placeholder missing")
}

func TestSuggestUnconfigured(t *testing.T) {
	t.Parallel()

	svc := New(Deps{
		Settings:      fakeSettings{},
		BuildProvider: func(_, _, _ string) ports.Provider { return &fakeProvider{} },
	})
	_, err := svc.Suggest(context.Background(), SuggestArgs{Source: "x"})
	assert.Error(t, err)
}
