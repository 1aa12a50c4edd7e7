package worker

import (
	"context"
	"errors"

	"github.com/workhub/workhub-api/internal/audit"
	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/dto"
	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/models"
)

type StatusInput struct {
	UserID uint
	Status string
}

type SetStatus struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewSetStatus(
	repo domain.Repository,
	audit *audit.Logger,
) *SetStatus {
	return &SetStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute sets any status from any status.
func (uc *SetStatus) Execute(
	ctx context.Context,
	in StatusInput,
) (*dto.WorkerStatus, error) {

	status := domain.ParseStatus(in.Status)
	if !status.Valid() {
		return nil, httperr.New(httperr.CodeInvalidStatus, "status must be pending/ready/busy")
	}
	if in.UserID == 0 {
		return nil, httperr.New(httperr.CodeMissingFields, "user_id required")
	}

	var profile *models.WorkerProfile
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		profile, err = tx.UpdateWorkerStatus(ctx, in.UserID, status)
		return err
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.New(httperr.CodeWorkerNotFound, "worker not found")
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		ActorID:  &in.UserID,
		Action:   "worker_status_changed",
		Entity:   "worker_profile",
		EntityID: &profile.ID,
		Metadata: map[string]any{"status": profile.Status},
	})

	return &dto.WorkerStatus{UserID: profile.UserID, Status: profile.Status}, nil
}
