package business

import (
	"context"
	"errors"

	"github.com/workhub/workhub-api/internal/audit"
	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/dto"
	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/models"
)

type ApproveInput struct {
	OwnerID   uint
	RequestID uint
}

type ApproveRequest struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewApproveRequest(
	repo domain.Repository,
	audit *audit.Logger,
) *ApproveRequest {
	return &ApproveRequest{
		repo:  repo,
		audit: audit,
	}
}

// Execute flips the link to approved. Only the owner of the link's business
// may do so; approving twice is a no-op success.
func (uc *ApproveRequest) Execute(
	ctx context.Context,
	in ApproveInput,
) (*dto.ApprovalResult, error) {

	if in.OwnerID == 0 || in.RequestID == 0 {
		return nil, httperr.New(httperr.CodeMissingFields, "owner_id and request_id required")
	}

	var link *models.BusinessWorker
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetBusinessWorkerForOwner(ctx, in.RequestID, in.OwnerID); err != nil {
			return err
		}
		var err error
		link, err = tx.ApproveBusinessWorker(ctx, in.RequestID)
		return err
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.New(httperr.CodeNotAllowed, "Not allowed")
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		ActorID:  &in.OwnerID,
		Action:   "worker_request_approved",
		Entity:   "business_worker",
		EntityID: &link.ID,
		Metadata: map[string]any{
			"business_id":    link.BusinessID,
			"worker_user_id": link.WorkerUserID,
		},
	})

	return &dto.ApprovalResult{ID: link.ID, Approved: link.Approved}, nil
}
