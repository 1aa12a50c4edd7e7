package business

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/workhub/workhub-api/internal/audit"
	"github.com/workhub/workhub-api/internal/cache"
	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/models"
)

type CreateInput struct {
	OwnerID  uint
	Name     string
	Category string
	Location string
}

type CreateBusiness struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Logger
	log   logrus.FieldLogger
}

func NewCreateBusiness(
	repo domain.Repository,
	cache cache.Cache,
	audit *audit.Logger,
	log logrus.FieldLogger,
) *CreateBusiness {
	return &CreateBusiness{
		repo:  repo,
		cache: cache,
		audit: audit,
		log:   log,
	}
}

func (uc *CreateBusiness) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Business, error) {

	name := strings.TrimSpace(in.Name)
	if in.OwnerID == 0 || name == "" {
		return nil, httperr.New(httperr.CodeMissingFields, "owner_id and business name required")
	}

	business := &models.Business{
		OwnerID:  in.OwnerID,
		Name:     name,
		Category: strings.TrimSpace(in.Category),
		Location: strings.TrimSpace(in.Location),
	}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetUserWithRole(ctx, in.OwnerID, domain.RoleOwner); err != nil {
			return err
		}
		return tx.CreateBusiness(ctx, business)
	})
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrReferenceMissing) {
		return nil, httperr.New(httperr.CodeNotOwner, "Invalid owner_id")
	}
	if err != nil {
		return nil, err
	}

	if _, err := uc.cache.Incr(ctx, listGenerationKey); err != nil {
		uc.log.WithError(err).Warn("business cache invalidation failed")
	}

	uc.audit.Log(ctx, audit.Event{
		ActorID:  &in.OwnerID,
		Action:   "business_created",
		Entity:   "business",
		EntityID: &business.ID,
	})

	return business, nil
}
