package app

import (
	"context"

	"locheck/internal/domain"
	"locheck/internal/ports"
)

type ProjectAPI struct {
	repo ports.ProjectRepository
}

func NewProjectAPI(repo ports.ProjectRepository) *ProjectAPI { return &ProjectAPI{repo: repo} }

func (a *ProjectAPI) Create(name, sourceLang, targetLang string) (*domain.Project, error) {
	ctx := context.Background()
	p := &domain.Project{Name: name, SourceLang: sourceLang, TargetLang: targetLang}
	if err := a.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (a *ProjectAPI) List() ([]*domain.Project, error) {
	ctx := context.Background()
	return a.repo.List(ctx)
}

func (a *ProjectAPI) Update(id int64, name, sourceLang, targetLang string) (*domain.Project, error) {
	ctx := context.Background()
	p, err := a.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = name
	p.SourceLang = sourceLang
	p.TargetLang = targetLang
	if err := a.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (a *ProjectAPI) Delete(id int64) (bool, error) {
	ctx := context.Background()
	return true, a.repo.Delete(ctx, id)
}
