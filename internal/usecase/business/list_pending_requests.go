package business

import (
	"context"

	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/dto"
	"github.com/workhub/workhub-api/internal/httperr"
)

type ListPendingRequests struct {
	repo domain.Repository
}

func NewListPendingRequests(repo domain.Repository) *ListPendingRequests {
	return &ListPendingRequests{repo: repo}
}

func (uc *ListPendingRequests) Execute(
	ctx context.Context,
	ownerID uint,
) ([]dto.PendingRequest, error) {

	if ownerID == 0 {
		return nil, httperr.New(httperr.CodeMissingFields, "owner_id required")
	}

	return uc.repo.ListPendingRequests(ctx, ownerID)
}
