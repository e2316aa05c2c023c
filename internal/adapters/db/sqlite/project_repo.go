package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"locheck/internal/domain"
)

type ProjectRepo struct{ *Repo }

func NewProjectRepo(db *sql.DB) *ProjectRepo { return &ProjectRepo{NewRepo(db)} }

func (r *ProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	now := time.Now().UTC()
	q := r.SQ.Insert("projects").Columns("name", "source_lang", "target_lang", "created_at", "updated_at").
		Values(p.Name, p.SourceLang, p.TargetLang, now.Format(time.RFC3339), now.Format(time.RFC3339))
	sqlStr, args, _ := q.ToSql()
	res, err := r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

func (r *ProjectRepo) Get(ctx context.Context, id int64) (*domain.Project, error) {
	q := r.SQ.Select("id", "name", "source_lang", "target_lang", "created_at", "updated_at").
		From("projects").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	return scanProject(row.Scan)
}

func (r *ProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	q := r.SQ.Select("id", "name", "source_lang", "target_lang", "created_at", "updated_at").
		From("projects").OrderBy("id DESC")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	now := time.Now().UTC()
	q := r.SQ.Update("projects").
		Set("name", p.Name).
		Set("source_lang", p.SourceLang).
		Set("target_lang", p.TargetLang).
		Set("updated_at", now.Format(time.RFC3339)).
		Where(sq.Eq{"id": p.ID})
	sqlStr, args, _ := q.ToSql()
	if _, err := r.DB.ExecContext(ctx, sqlStr, args...); err != nil {
		return err
	}
	p.UpdatedAt = now
	return nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	q := r.SQ.Delete("projects").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func scanProject(scan func(...any) error) (*domain.Project, error) {
	var p domain.Project
	var created, updated string
	if err := scan(&p.ID, &p.Name, &p.SourceLang, &p.TargetLang, &created, &updated); err != nil {
		return nil, err
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, created)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &p, nil
}
