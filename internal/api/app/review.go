package app

import (
	"context"

	"locheck/internal/domain"
	"locheck/internal/ports"
	"locheck/internal/usecase/reviewer"
)

type ReviewAPI struct {
	svc  *reviewer.Service
	repo ports.ReviewRepository
}

func NewReviewAPI(svc *reviewer.Service, repo ports.ReviewRepository) *ReviewAPI {
	return &ReviewAPI{svc: svc, repo: repo}
}

// Rows returns the normalized review rows for one document pair.
func (a *ReviewAPI) Rows(fileID int64) ([]*domain.SegmentRow, error) {
	ctx := context.Background()
	return a.svc.Rows(ctx, fileID)
}

type UpdateTargetRequest struct {
	FileID int64  `json:"file_id"`
	Key    string `json:"key"`
	Target string `json:"target"`
}

// UpdateTarget writes an edited target back and returns the re-normalized
// row so the UI can repaint the parity verdict without a full reload.
func (a *ReviewAPI) UpdateTarget(req UpdateTargetRequest) (*domain.SegmentRow, error) {
	ctx := context.Background()
	return a.svc.UpdateTarget(ctx, req.FileID, req.Key, req.Target)
}

func (a *ReviewAPI) History(fileID int64) ([]*domain.Review, error) {
	ctx := context.Background()
	return a.repo.ListByFile(ctx, fileID)
}
