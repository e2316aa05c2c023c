package httpclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"locheck/internal/ports"
)

// Client talks to an OpenAI-compatible chat-completions endpoint. Both
// OpenRouter and a local Ollama (with its /v1 shim) satisfy this surface, so a
// single client covers every supported provider.
type Client struct {
	APIKey  string
	BaseURL string
	Model   string
	http    *resty.Client
}

func New(baseURL, apiKey, model string) *Client {
	c := resty.New().SetTimeout(20 * time.Second)
	return &Client{APIKey: apiKey, BaseURL: strings.TrimRight(baseURL, "/"), Model: model, http: c}
}

const systemPrompt = "You are a translation assistant. Translate the user's text " +
	"from %s to %s. Tokens shaped like __PH_<n>__ are protected placeholders: copy " +
	"each of them into the translation exactly once, unchanged. Reply with the " +
	"translated text only, no commentary."

func (c *Client) Suggest(ctx context.Context, text string, p ports.SuggestParams) (ports.Suggestion, error) {
	model := p.Model
	if model == "" {
		model = c.Model
	}
	body := map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": fmt.Sprintf(systemPrompt, langOrAny(p.SourceLang), langOrAny(p.TargetLang))},
			{"role": "user", "content": text},
		},
		"temperature": p.Temperature,
	}
	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).SetResult(&resp).
		Post(c.BaseURL + "/chat/completions")
	if err != nil {
		return ports.Suggestion{}, err
	}
	if r.IsError() {
		return ports.Suggestion{}, fmt.Errorf("suggest: %s; body: %s", r.Status(), r.String())
	}
	if len(resp.Choices) == 0 {
		return ports.Suggestion{}, fmt.Errorf("no choices returned")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	return ports.Suggestion{Text: stripFences(content), Raw: content}, nil
}

// Test lists the endpoint's models, which exercises auth and connectivity
// without burning completion tokens.
func (c *Client) Test(ctx context.Context) error {
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.APIKey).
		Get(c.BaseURL + "/models")
	if err != nil {
		return err
	}
	if r.IsError() {
		return fmt.Errorf("provider test: %s; body: %s", r.Status(), r.String())
	}
	return nil
}

func langOrAny(code string) string {
	if code == "" {
		return "the source language"
	}
	return code
}

// stripFences unwraps a fenced code block when the model ignores the
// plain-text instruction.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	rest := strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[i+1:]
	}
	if j := strings.LastIndex(rest, "```"); j >= 0 {
		rest = rest[:j]
	}
	return strings.TrimSpace(rest)
}
