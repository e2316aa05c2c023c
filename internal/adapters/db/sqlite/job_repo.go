package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"locheck/internal/domain"
)

type JobRepo struct{ *Repo }

func NewJobRepo(db *sql.DB) *JobRepo { return &JobRepo{NewRepo(db)} }

const jobColumns = "id, type, status, project_id, progress, total, ok_rows, missing_rows, extra_rows, unknown_rows, created_at, updated_at"

func (r *JobRepo) Create(ctx context.Context, j *domain.Job) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	q := r.SQ.Insert("jobs").Columns("type", "status", "project_id", "progress", "total", "created_at", "updated_at").
		Values(j.Type, j.Status, j.ProjectID, j.Progress, j.Total, now, now)
	sqlStr, args, _ := q.ToSql()
	res, err := r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	j.ID = id
	return id, nil
}

func (r *JobRepo) UpdateProgress(ctx context.Context, jobID int64, done, total int, status string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	q := r.SQ.Update("jobs").Set("progress", done).Set("total", total).Set("status", status).Set("updated_at", now).Where(sq.Eq{"id": jobID})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *JobRepo) SetTallies(ctx context.Context, jobID int64, t domain.RowTally) error {
	now := time.Now().UTC().Format(time.RFC3339)
	q := r.SQ.Update("jobs").
		Set("ok_rows", t.OK).
		Set("missing_rows", t.Missing).
		Set("extra_rows", t.Extra).
		Set("unknown_rows", t.Unknown).
		Set("updated_at", now).
		Where(sq.Eq{"id": jobID})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *JobRepo) AddLog(ctx context.Context, jl *domain.JobLog) error {
	q := r.SQ.Insert("job_logs").Columns("job_id", "ts", "level", "message").
		Values(jl.JobID, time.Now().UTC().Format(time.RFC3339), jl.Level, jl.Message)
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *JobRepo) Get(ctx context.Context, jobID int64) (*domain.Job, error) {
	q := r.SQ.Select(jobColumns).From("jobs").Where(sq.Eq{"id": jobID})
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	return scanJob(row.Scan)
}

func (r *JobRepo) List(ctx context.Context, limit int) ([]*domain.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	q := r.SQ.Select(jobColumns).From("jobs").OrderBy("id DESC").Limit(uint64(limit))
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Job
	for rows.Next() {
		j, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *JobRepo) ListLogs(ctx context.Context, jobID int64, limit int) ([]*domain.JobLog, error) {
	if limit <= 0 {
		limit = 200
	}
	q := r.SQ.Select("id", "job_id", "ts", "level", "message").From("job_logs").
		Where(sq.Eq{"job_id": jobID}).OrderBy("id DESC").Limit(uint64(limit))
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.JobLog
	for rows.Next() {
		var jl domain.JobLog
		var ts string
		if err := rows.Scan(&jl.ID, &jl.JobID, &ts, &jl.Level, &jl.Message); err != nil {
			return nil, err
		}
		jl.Time, _ = time.Parse(time.RFC3339, ts)
		out = append(out, &jl)
	}
	return out, rows.Err()
}

func scanJob(scan func(...any) error) (*domain.Job, error) {
	var j domain.Job
	var projectID sql.NullInt64
	var created, updated string
	if err := scan(&j.ID, &j.Type, &j.Status, &projectID, &j.Progress, &j.Total,
		&j.Tallies.OK, &j.Tallies.Missing, &j.Tallies.Extra, &j.Tallies.Unknown, &created, &updated); err != nil {
		return nil, err
	}
	if projectID.Valid {
		j.ProjectID = &projectID.Int64
	}
	j.CreatedAt, _ = time.Parse(time.RFC3339, created)
	j.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &j, nil
}
