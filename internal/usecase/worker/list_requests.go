package worker

import (
	"context"
	"errors"

	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/dto"
	"github.com/workhub/workhub-api/internal/httperr"
)

type ListRequests struct {
	repo domain.Repository
}

func NewListRequests(repo domain.Repository) *ListRequests {
	return &ListRequests{repo: repo}
}

// Execute returns the worker's applications with their approval state,
// newest first.
func (uc *ListRequests) Execute(
	ctx context.Context,
	workerUserID uint,
) ([]dto.WorkerRequest, error) {

	if workerUserID == 0 {
		return nil, httperr.New(httperr.CodeMissingFields, "worker_user_id required")
	}

	if _, err := uc.repo.GetUserWithRole(ctx, workerUserID, domain.RoleWorker); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidWorker
		}
		return nil, err
	}

	return uc.repo.ListWorkerRequests(ctx, workerUserID)
}
