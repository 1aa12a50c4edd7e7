package worker

import (
	"context"
	"errors"
	"strings"

	"github.com/workhub/workhub-api/internal/audit"
	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/models"
)

// ProfileInput replaces the whole profile; omitted fields become empty.
type ProfileInput struct {
	UserID          uint
	Skills          string
	ExperienceYears int
	Location        string
}

type UpdateProfile struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewUpdateProfile(
	repo domain.Repository,
	audit *audit.Logger,
) *UpdateProfile {
	return &UpdateProfile{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	in ProfileInput,
) (*models.WorkerProfile, error) {

	if in.UserID == 0 {
		return nil, httperr.New(httperr.CodeMissingFields, "user_id required")
	}
	if in.ExperienceYears < 0 {
		return nil, httperr.New(httperr.CodeInvalidExperience, "experience_years must be >= 0")
	}

	var profile *models.WorkerProfile
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetUserWithRole(ctx, in.UserID, domain.RoleWorker); err != nil {
			return err
		}
		var err error
		profile, err = tx.UpdateWorkerProfile(
			ctx,
			in.UserID,
			strings.TrimSpace(in.Skills),
			in.ExperienceYears,
			strings.TrimSpace(in.Location),
		)
		return err
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.New(httperr.CodeNotWorker, "Invalid worker user_id")
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		ActorID:  &in.UserID,
		Action:   "worker_profile_updated",
		Entity:   "worker_profile",
		EntityID: &profile.ID,
	})

	return profile, nil
}
