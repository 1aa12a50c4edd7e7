package business

import (
	"context"
	"errors"

	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/dto"
	"github.com/workhub/workhub-api/internal/httperr"
)

type ListOwnerBusinesses struct {
	repo domain.Repository
}

func NewListOwnerBusinesses(repo domain.Repository) *ListOwnerBusinesses {
	return &ListOwnerBusinesses{repo: repo}
}

// Execute reads straight from the store; the shared listing cache only
// covers the public catalogue.
func (uc *ListOwnerBusinesses) Execute(
	ctx context.Context,
	ownerID uint,
) ([]dto.BusinessListItem, error) {

	if ownerID == 0 {
		return nil, httperr.New(httperr.CodeMissingFields, "owner_id required")
	}

	if _, err := uc.repo.GetUserWithRole(ctx, ownerID, domain.RoleOwner); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.New(httperr.CodeNotOwner, "Invalid owner_id")
		}
		return nil, err
	}

	return uc.repo.ListBusinessesByOwner(ctx, ownerID)
}
