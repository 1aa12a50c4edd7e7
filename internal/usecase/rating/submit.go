package rating

import (
	"context"
	"errors"
	"strings"

	"github.com/workhub/workhub-api/internal/audit"
	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/models"
)

type SubmitInput struct {
	WorkerUserID uint
	Stars        int
	Comment      string
}

type SubmitRating struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewSubmitRating(
	repo domain.Repository,
	audit *audit.Logger,
) *SubmitRating {
	return &SubmitRating{
		repo:  repo,
		audit: audit,
	}
}

// Execute appends a rating. Any caller may rate any worker; no business
// relationship is required.
func (uc *SubmitRating) Execute(
	ctx context.Context,
	in SubmitInput,
) (*models.Rating, error) {

	if in.WorkerUserID == 0 || !domain.ValidStars(in.Stars) {
		return nil, httperr.New(httperr.CodeInvalidStars, "worker_user_id and stars(1-5) required")
	}

	rating := &models.Rating{
		WorkerUserID: in.WorkerUserID,
		Stars:        in.Stars,
		Comment:      strings.TrimSpace(in.Comment),
	}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		return tx.CreateRating(ctx, rating)
	})
	if errors.Is(err, domain.ErrReferenceMissing) {
		return nil, httperr.New(httperr.CodeWorkerNotFound, "worker not found")
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		Action:   "worker_rated",
		Entity:   "rating",
		EntityID: &rating.ID,
		Metadata: map[string]any{
			"worker_user_id": rating.WorkerUserID,
			"stars":          rating.Stars,
		},
	})

	return rating, nil
}
