package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"locheck/internal/domain"
)

type ReviewRepo struct{ *Repo }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{NewRepo(db)} }

func (r *ReviewRepo) Upsert(ctx context.Context, rv *domain.Review) error {
	now := time.Now().UTC()
	q := r.SQ.Insert("reviews").
		Columns("file_id", "segment_key", "target_text", "status", "updated_at").
		Values(rv.FileID, rv.SegmentKey, rv.Target, string(rv.Status), now.Format(time.RFC3339)).
		Suffix("ON CONFLICT(file_id, segment_key) DO UPDATE SET target_text=excluded.target_text, status=excluded.status, updated_at=excluded.updated_at")
	sqlStr, args, _ := q.ToSql()
	if _, err := r.DB.ExecContext(ctx, sqlStr, args...); err != nil {
		return err
	}
	rv.UpdatedAt = now
	return nil
}

func (r *ReviewRepo) Get(ctx context.Context, fileID int64, segmentKey string) (*domain.Review, error) {
	q := r.SQ.Select("id", "file_id", "segment_key", "target_text", "status", "updated_at").
		From("reviews").Where(sq.Eq{"file_id": fileID, "segment_key": segmentKey}).Limit(1)
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	rv, err := scanReview(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rv, err
}

func (r *ReviewRepo) ListByFile(ctx context.Context, fileID int64) ([]*domain.Review, error) {
	q := r.SQ.Select("id", "file_id", "segment_key", "target_text", "status", "updated_at").
		From("reviews").Where(sq.Eq{"file_id": fileID}).OrderBy("segment_key")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Review
	for rows.Next() {
		rv, err := scanReview(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func scanReview(scan func(...any) error) (*domain.Review, error) {
	var rv domain.Review
	var status, updated string
	if err := scan(&rv.ID, &rv.FileID, &rv.SegmentKey, &rv.Target, &status, &updated); err != nil {
		return nil, err
	}
	rv.Status = domain.ParityStatus(status)
	rv.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &rv, nil
}
