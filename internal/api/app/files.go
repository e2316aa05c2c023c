package app

import (
	"context"

	"locheck/internal/ports"
)

type FileAPI struct {
	repo ports.FileRepository
}

func NewFileAPI(repo ports.FileRepository) *FileAPI { return &FileAPI{repo: repo} }

// FileDTO deliberately omits the raw document payloads, which can run to
// megabytes and have no use on a file listing.
type FileDTO struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
	Hash      string `json:"hash"`
	Version   int64  `json:"version"`
}

func (a *FileAPI) ListByProject(projectID int64) ([]*FileDTO, error) {
	ctx := context.Background()
	fs, err := a.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]*FileDTO, 0, len(fs))
	for _, f := range fs {
		out = append(out, &FileDTO{ID: f.ID, ProjectID: f.ProjectID, Name: f.Name, Hash: f.Hash, Version: f.Version})
	}
	return out, nil
}

func (a *FileAPI) Delete(id int64) (bool, error) {
	ctx := context.Background()
	return true, a.repo.Delete(ctx, id)
}
