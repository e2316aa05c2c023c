package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locheck/internal/adapters/parser/jliff"
	"locheck/internal/adapters/parser/tagmap"
	"locheck/internal/domain"
	"locheck/internal/usecase/normalizer"
	"locheck/internal/usecase/reviewer"
)

const jliffSample = `{
  "Transunits": [
    {"unit id": "1", "transunit_id": "u1-s1", "Source": "Hi {{ph:1}}", "Target_translation": "Hallo {{ph:1}}"},
    {"unit id": "1", "transunit_id": "u1-s2", "Source": "Bye {{ph:2}}", "Target_translation": "Tschüss"}
  ]
}`

const tagmapSample = `{
  "units": [
    {"unit_id": "1", "segments": [
      {"segment_id": "1", "placeholders_in_order": [{"placeholder": "{{ph:1}}", "elem": "ph"}]},
      {"segment_id": "2", "placeholders_in_order": [{"placeholder": "{{ph:2}}", "elem": "ph"}]}
    ]}
  ]
}`

type fakeFiles struct {
	files []*domain.File
}

func (f *fakeFiles) Create(_ context.Context, file *domain.File) error {
	file.ID = int64(len(f.files) + 1)
	f.files = append(f.files, file)
	return nil
}

func (f *fakeFiles) Get(_ context.Context, id int64) (*domain.File, error) {
	for _, file := range f.files {
		if file.ID == id {
			return file, nil
		}
	}
	return nil, errors.New("file not found")
}

func (f *fakeFiles) ListByProject(_ context.Context, projectID int64) ([]*domain.File, error) {
	var out []*domain.File
	for _, file := range f.files {
		if file.ProjectID == projectID {
			out = append(out, file)
		}
	}
	return out, nil
}

func (f *fakeFiles) UpdateJliff(context.Context, int64, string, int64) error { return nil }
func (f *fakeFiles) Delete(context.Context, int64) error                     { return nil }

type fakeJobs struct {
	mu      sync.Mutex
	jobs    map[int64]*domain.Job
	logs    []*domain.JobLog
	tallies map[int64]domain.RowTally
	nextID  int64
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{jobs: map[int64]*domain.Job{}, tallies: map[int64]domain.RowTally{}}
}

func (f *fakeJobs) Create(_ context.Context, j *domain.Job) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	j.ID = f.nextID
	cp := *j
	f.jobs[j.ID] = &cp
	return j.ID, nil
}

func (f *fakeJobs) UpdateProgress(_ context.Context, jobID int64, done, total int, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j := f.jobs[jobID]
	j.Progress = done
	j.Total = total
	j.Status = status
	return nil
}

func (f *fakeJobs) SetTallies(_ context.Context, jobID int64, t domain.RowTally) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tallies[jobID] = t
	f.jobs[jobID].Tallies = t
	return nil
}

func (f *fakeJobs) AddLog(_ context.Context, jl *domain.JobLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, jl)
	return nil
}

func (f *fakeJobs) Get(_ context.Context, jobID int64) (*domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[jobID]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobs) List(context.Context, int) ([]*domain.Job, error) { return nil, nil }

func (f *fakeJobs) ListLogs(context.Context, int64, int) ([]*domain.JobLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logs, nil
}

type doneEmitter struct {
	done chan string
}

func (e *doneEmitter) Emit(name string, _ any) {
	switch name {
	case "job.done", "job.failed", "job.canceled":
		e.done <- name
	}
}

func TestValidateProjectTallies(t *testing.T) {
	t.Parallel()

	files := &fakeFiles{files: []*domain.File{
		{ID: 1, ProjectID: 3, JliffRaw: jliffSample, TagMapRaw: tagmapSample, Version: 1},
	}}
	jobsRepo := newFakeJobs()
	review := reviewer.New(reviewer.Deps{
		Files:  files,
		Jliff:  jliff.New(),
		TagMap: tagmap.New(),
		Engine: normalizer.New(),
	})
	runner := NewRunner(Deps{Jobs: jobsRepo, Files: files, Review: review})
	em := &doneEmitter{done: make(chan string, 1)}
	runner.SetEmitter(em)

	id, err := runner.StartValidateProject(context.Background(), 3)
	require.NoError(t, err)

	select {
	case ev := <-em.done:
		assert.Equal(t, "job.done", ev)
	case <-time.After(5 * time.Second):
		t.Fatal("job did not finish")
	}

	j, err := jobsRepo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "done", j.Status)
	assert.Equal(t, 1, j.Progress)
	assert.Equal(t, 1, j.Total)
	// One parity-clean row, one with a dropped placeholder.
	assert.Equal(t, domain.RowTally{OK: 1, Missing: 1}, j.Tallies)
}

func TestValidateProjectFailsOnBadPayload(t *testing.T) {
	t.Parallel()

	files := &fakeFiles{files: []*domain.File{
		{ID: 1, ProjectID: 3, JliffRaw: "{broken", TagMapRaw: tagmapSample, Version: 1},
	}}
	jobsRepo := newFakeJobs()
	review := reviewer.New(reviewer.Deps{
		Files:  files,
		Jliff:  jliff.New(),
		TagMap: tagmap.New(),
		Engine: normalizer.New(),
	})
	runner := NewRunner(Deps{Jobs: jobsRepo, Files: files, Review: review})
	em := &doneEmitter{done: make(chan string, 1)}
	runner.SetEmitter(em)

	id, err := runner.StartValidateProject(context.Background(), 3)
	require.NoError(t, err)

	select {
	case ev := <-em.done:
		assert.Equal(t, "job.failed", ev)
	case <-time.After(5 * time.Second):
		t.Fatal("job did not finish")
	}

	j, err := jobsRepo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "failed", j.Status)

	logs, err := jobsRepo.ListLogs(context.Background(), id, 0)
	require.NoError(t, err)
	var levels []string
	for _, l := range logs {
		levels = append(levels, l.Level)
	}
	assert.Contains(t, levels, "error")
}

func TestLogLevelMapping(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zerolog.ErrorLevel, logLevel("error"))
	assert.Equal(t, zerolog.WarnLevel, logLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, logLevel("info"))
	assert.Equal(t, zerolog.InfoLevel, logLevel(""))
}

func TestStartValidateEmptyProject(t *testing.T) {
	t.Parallel()

	jobsRepo := newFakeJobs()
	runner := NewRunner(Deps{Jobs: jobsRepo, Files: &fakeFiles{}, Review: nil})
	em := &doneEmitter{done: make(chan string, 1)}
	runner.SetEmitter(em)

	id, err := runner.StartValidateProject(context.Background(), 99)
	require.NoError(t, err)

	select {
	case ev := <-em.done:
		assert.Equal(t, "job.done", ev)
	case <-time.After(5 * time.Second):
		t.Fatal("job did not finish")
	}

	j, err := jobsRepo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "done", j.Status)
	assert.Equal(t, domain.RowTally{}, j.Tallies)
}
