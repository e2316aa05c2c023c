package ports

import (
	"context"
	"locheck/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error
}

type FileRepository interface {
	Create(ctx context.Context, f *domain.File) error
	Get(ctx context.Context, id int64) (*domain.File, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.File, error)
	UpdateJliff(ctx context.Context, id int64, raw string, version int64) error
	Delete(ctx context.Context, id int64) error
}

type ReviewRepository interface {
	Upsert(ctx context.Context, r *domain.Review) error
	Get(ctx context.Context, fileID int64, segmentKey string) (*domain.Review, error)
	ListByFile(ctx context.Context, fileID int64) ([]*domain.Review, error)
}

type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) (int64, error)
	UpdateProgress(ctx context.Context, jobID int64, done, total int, status string) error
	SetTallies(ctx context.Context, jobID int64, t domain.RowTally) error
	AddLog(ctx context.Context, jl *domain.JobLog) error
	Get(ctx context.Context, jobID int64) (*domain.Job, error)
	List(ctx context.Context, limit int) ([]*domain.Job, error)
	ListLogs(ctx context.Context, jobID int64, limit int) ([]*domain.JobLog, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
