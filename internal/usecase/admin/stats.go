package admin

import (
	"context"
	"errors"

	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/dto"
	"github.com/workhub/workhub-api/internal/httperr"
)

type Stats struct {
	repo domain.Repository
}

func NewStats(repo domain.Repository) *Stats {
	return &Stats{repo: repo}
}

func (uc *Stats) Execute(
	ctx context.Context,
	adminID uint,
) (*dto.Stats, error) {

	if adminID == 0 {
		return nil, httperr.New(httperr.CodeMissingFields, "admin_id required")
	}

	if _, err := uc.repo.GetUserWithRole(ctx, adminID, domain.RoleAdmin); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.New(httperr.CodeNotAdmin, "Invalid admin_id")
		}
		return nil, err
	}

	return uc.repo.Stats(ctx)
}
