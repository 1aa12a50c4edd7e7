package worker

import (
	"context"
	"errors"

	"github.com/workhub/workhub-api/internal/audit"
	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/models"
)

type ApplyInput struct {
	WorkerUserID uint
	BusinessID   uint
}

type ApplyToBusiness struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewApplyToBusiness(
	repo domain.Repository,
	audit *audit.Logger,
) *ApplyToBusiness {
	return &ApplyToBusiness{
		repo:  repo,
		audit: audit,
	}
}

var (
	errInvalidWorker   = httperr.New(httperr.CodeNotWorker, "Invalid worker_user_id")
	errInvalidBusiness = httperr.New(httperr.CodeBusinessNotFound, "Invalid business_id")
)

// Execute creates an unapproved link. A second application for the same
// pair is rejected by the store's unique index, including under races.
func (uc *ApplyToBusiness) Execute(
	ctx context.Context,
	in ApplyInput,
) (*models.BusinessWorker, error) {

	if in.WorkerUserID == 0 || in.BusinessID == 0 {
		return nil, httperr.New(httperr.CodeMissingFields, "worker_user_id and business_id required")
	}

	link := &models.BusinessWorker{
		BusinessID:   in.BusinessID,
		WorkerUserID: in.WorkerUserID,
	}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetUserWithRole(ctx, in.WorkerUserID, domain.RoleWorker); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errInvalidWorker
			}
			return err
		}

		if _, err := tx.GetBusinessByID(ctx, in.BusinessID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errInvalidBusiness
			}
			return err
		}

		return tx.CreateBusinessWorker(ctx, link)
	})
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return nil, httperr.New(httperr.CodeAlreadyRequested, "Already requested/registered")
	case errors.Is(err, domain.ErrReferenceMissing):
		return nil, errInvalidBusiness
	case err != nil:
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		ActorID:  &in.WorkerUserID,
		Action:   "business_application_created",
		Entity:   "business_worker",
		EntityID: &link.ID,
		Metadata: map[string]any{"business_id": link.BusinessID},
	})

	return link, nil
}
