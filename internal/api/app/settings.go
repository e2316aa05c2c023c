package app

import (
	"context"

	"locheck/internal/adapters/llm/httpclient"
	"locheck/internal/ports"
	"locheck/internal/usecase/suggester"
)

type SettingsAPI struct {
	repo ports.SettingsRepository
}

func NewSettingsAPI(repo ports.SettingsRepository) *SettingsAPI { return &SettingsAPI{repo: repo} }

type ProviderSettings struct {
	BaseURL string `json:"base_url"`
	APIKey  string `json:"api_key"`
	Model   string `json:"model"`
}

func (a *SettingsAPI) GetProvider() (ProviderSettings, error) {
	ctx := context.Background()
	var out ProviderSettings
	var err error
	if out.BaseURL, err = a.repo.Get(ctx, suggester.KeyBaseURL); err != nil {
		return out, err
	}
	if out.APIKey, err = a.repo.Get(ctx, suggester.KeyAPIKey); err != nil {
		return out, err
	}
	out.Model, err = a.repo.Get(ctx, suggester.KeyModel)
	return out, err
}

func (a *SettingsAPI) SetProvider(s ProviderSettings) (bool, error) {
	ctx := context.Background()
	if err := a.repo.Set(ctx, suggester.KeyBaseURL, s.BaseURL); err != nil {
		return false, err
	}
	if err := a.repo.Set(ctx, suggester.KeyAPIKey, s.APIKey); err != nil {
		return false, err
	}
	if err := a.repo.Set(ctx, suggester.KeyModel, s.Model); err != nil {
		return false, err
	}
	return true, nil
}

// TestProvider checks the configured endpoint without saving anything.
func (a *SettingsAPI) TestProvider(s ProviderSettings) (bool, error) {
	ctx := context.Background()
	c := httpclient.New(s.BaseURL, s.APIKey, s.Model)
	if err := c.Test(ctx); err != nil {
		return false, err
	}
	return true, nil
}
