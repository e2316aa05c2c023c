package jobs

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"locheck/internal/domain"
	"locheck/internal/ports"
	"locheck/internal/usecase/reviewer"
)

type Deps struct {
	Jobs   ports.JobRepository
	Files  ports.FileRepository
	Review *reviewer.Service
}

// Runner executes project validation jobs in the background: every document
// pair of a project is normalized and each row's parity verdict is tallied on
// the job record.
type Runner struct {
	d      Deps
	mu     sync.Mutex
	active map[int64]context.CancelFunc
	em     EventEmitter
}

func NewRunner(d Deps) *Runner {
	return &Runner{d: d, active: map[int64]context.CancelFunc{}}
}

type EventEmitter interface {
	Emit(name string, payload any)
}

func (r *Runner) SetEmitter(em EventEmitter) { r.em = em }

func (r *Runner) emit(name string, payload any) {
	if r.em != nil {
		r.em.Emit(name, payload)
	}
}

// StartValidateProject queues a validation job over all files of a project
// and runs it on its own goroutine. The returned id can be polled or
// canceled.
func (r *Runner) StartValidateProject(ctx context.Context, projectID int64) (int64, error) {
	files, err := r.d.Files.ListByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	job := &domain.Job{Type: "validate_project", Status: "queued", ProjectID: &projectID, Total: len(files)}
	id, err := r.d.Jobs.Create(ctx, job)
	if err != nil {
		return 0, err
	}
	_ = r.d.Jobs.UpdateProgress(ctx, id, 0, len(files), "running")
	r.emit("job.started", map[string]any{"job_id": id, "total": len(files)})
	r.log(ctx, id, "info", fmt.Sprintf("validation started: project=%d files=%d", projectID, len(files)))

	cctx, cancel := context.WithCancel(context.Background())
	r.mu.Lock()
	r.active[id] = cancel
	r.mu.Unlock()
	go r.runValidate(cctx, id, files)
	return id, nil
}

func (r *Runner) runValidate(ctx context.Context, jobID int64, files []*domain.File) {
	defer func() {
		r.mu.Lock()
		delete(r.active, jobID)
		r.mu.Unlock()
	}()

	var tally domain.RowTally
	done := 0
	for _, f := range files {
		select {
		case <-ctx.Done():
			_ = r.d.Jobs.UpdateProgress(context.Background(), jobID, done, len(files), "canceled")
			r.emit("job.canceled", map[string]any{"job_id": jobID})
			return
		default:
		}
		rows, err := r.d.Review.Rows(ctx, f.ID)
		if err != nil {
			r.log(ctx, jobID, "error", fmt.Sprintf("file %d: %v", f.ID, err))
			_ = r.d.Jobs.UpdateProgress(ctx, jobID, done, len(files), "failed")
			r.emit("job.failed", map[string]any{"job_id": jobID, "file_id": f.ID})
			return
		}
		for _, row := range rows {
			switch row.Status {
			case domain.ParityOK:
				tally.OK++
			case domain.ParityMissing:
				tally.Missing++
			case domain.ParityExtra:
				tally.Extra++
			default:
				tally.Unknown++
			}
		}
		done++
		_ = r.d.Jobs.UpdateProgress(ctx, jobID, done, len(files), "running")
		r.emit("job.progress", map[string]any{"job_id": jobID, "done": done, "total": len(files)})
	}
	_ = r.d.Jobs.SetTallies(ctx, jobID, tally)
	_ = r.d.Jobs.UpdateProgress(ctx, jobID, done, len(files), "done")
	r.emit("job.done", map[string]any{"job_id": jobID, "tallies": tally})
	r.log(ctx, jobID, "info", fmt.Sprintf("validation done: ok=%d missing=%d extra=%d unknown=%d",
		tally.OK, tally.Missing, tally.Extra, tally.Unknown))
}

// Cancel stops a running job. Unknown or finished ids are a no-op.
func (r *Runner) Cancel(jobID int64) {
	r.mu.Lock()
	cancel := r.active[jobID]
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (r *Runner) log(ctx context.Context, jobID int64, level, msg string) {
	log.WithLevel(logLevel(level)).Int64("job_id", jobID).Msg(msg)
	_ = r.d.Jobs.AddLog(ctx, &domain.JobLog{JobID: jobID, Level: level, Message: msg})
}

// logLevel maps a job-log level onto the corresponding zerolog level.
func logLevel(level string) zerolog.Level {
	switch level {
	case "error":
		return zerolog.ErrorLevel
	case "warn":
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
