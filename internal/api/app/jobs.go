package app

import (
	"context"
	"time"

	"locheck/internal/domain"
	"locheck/internal/ports"
	"locheck/internal/usecase/jobs"
)

type JobsAPI struct {
	r    *jobs.Runner
	repo ports.JobRepository
}

func NewJobsAPI(r *jobs.Runner, repo ports.JobRepository) *JobsAPI { return &JobsAPI{r: r, repo: repo} }

type StartJobResponse struct {
	JobID int64 `json:"job_id"`
}

func (a *JobsAPI) StartValidateProject(projectID int64) (StartJobResponse, error) {
	ctx := context.Background()
	jid, err := a.r.StartValidateProject(ctx, projectID)
	if err != nil {
		return StartJobResponse{}, err
	}
	return StartJobResponse{JobID: jid}, nil
}

func (a *JobsAPI) Cancel(jobID int64) bool {
	a.r.Cancel(jobID)
	return true
}

type JobDTO struct {
	ID       int64           `json:"id"`
	Type     string          `json:"type"`
	Status   string          `json:"status"`
	Progress int             `json:"progress"`
	Total    int             `json:"total"`
	Tallies  domain.RowTally `json:"tallies"`
}

func (a *JobsAPI) Get(jobID int64) (*JobDTO, error) {
	ctx := context.Background()
	j, err := a.repo.Get(ctx, jobID)
	if err != nil || j == nil {
		return nil, err
	}
	return &JobDTO{ID: j.ID, Type: j.Type, Status: j.Status, Progress: j.Progress, Total: j.Total, Tallies: j.Tallies}, nil
}

func (a *JobsAPI) List(limit int) ([]*JobDTO, error) {
	ctx := context.Background()
	js, err := a.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*JobDTO, 0, len(js))
	for _, j := range js {
		out = append(out, &JobDTO{ID: j.ID, Type: j.Type, Status: j.Status, Progress: j.Progress, Total: j.Total, Tallies: j.Tallies})
	}
	return out, nil
}

type JobLogDTO struct {
	ID      int64  `json:"id"`
	Time    string `json:"time"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

func (a *JobsAPI) Logs(jobID int64, limit int) ([]*JobLogDTO, error) {
	ctx := context.Background()
	logs, err := a.repo.ListLogs(ctx, jobID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*JobLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, &JobLogDTO{ID: l.ID, Time: l.Time.Format(time.RFC3339), Level: l.Level, Message: l.Message})
	}
	return out, nil
}
