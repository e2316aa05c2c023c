package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"locheck/internal/domain"
)

type FileRepo struct{ *Repo }

func NewFileRepo(db *sql.DB) *FileRepo { return &FileRepo{NewRepo(db)} }

const fileColumns = "id, project_id, name, jliff_json, tagmap_json, hash, version, created_at, updated_at"

func (r *FileRepo) Create(ctx context.Context, f *domain.File) error {
	now := time.Now().UTC()
	if f.Version == 0 {
		f.Version = 1
	}
	q := r.SQ.Insert("files").
		Columns("project_id", "name", "jliff_json", "tagmap_json", "hash", "version", "created_at", "updated_at").
		Values(f.ProjectID, f.Name, f.JliffRaw, f.TagMapRaw, f.Hash, f.Version, now.Format(time.RFC3339), now.Format(time.RFC3339))
	sqlStr, args, _ := q.ToSql()
	res, err := r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	f.ID = id
	f.CreatedAt = now
	f.UpdatedAt = now
	return nil
}

func (r *FileRepo) Get(ctx context.Context, id int64) (*domain.File, error) {
	q := r.SQ.Select(fileColumns).From("files").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	return scanFile(row.Scan)
}

func (r *FileRepo) ListByProject(ctx context.Context, projectID int64) ([]*domain.File, error) {
	q := r.SQ.Select(fileColumns).From("files").Where(sq.Eq{"project_id": projectID}).OrderBy("id")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.File
	for rows.Next() {
		f, err := scanFile(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// UpdateJliff replaces the JLIFF payload after a segment write-back and
// records the new version stamp.
func (r *FileRepo) UpdateJliff(ctx context.Context, id int64, raw string, version int64) error {
	now := time.Now().UTC()
	q := r.SQ.Update("files").
		Set("jliff_json", raw).
		Set("version", version).
		Set("updated_at", now.Format(time.RFC3339)).
		Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *FileRepo) Delete(ctx context.Context, id int64) error {
	q := r.SQ.Delete("files").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func scanFile(scan func(...any) error) (*domain.File, error) {
	var f domain.File
	var created, updated string
	if err := scan(&f.ID, &f.ProjectID, &f.Name, &f.JliffRaw, &f.TagMapRaw, &f.Hash, &f.Version, &created, &updated); err != nil {
		return nil, err
	}
	f.CreatedAt, _ = time.Parse(time.RFC3339, created)
	f.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &f, nil
}
