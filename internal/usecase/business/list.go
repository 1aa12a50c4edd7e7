package business

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/workhub/workhub-api/internal/cache"
	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/dto"
)

const (
	listGenerationKey = "workhub:businesses:gen"
	listCacheKeyFmt   = "workhub:businesses:all:%d"
)

// listCacheKey names the cached listing for one generation. CreateBusiness
// bumps the generation after commit, so a listing read before that commit
// can only be stored under a key nobody reads any more.
func listCacheKey(generation int64) string {
	return fmt.Sprintf(listCacheKeyFmt, generation)
}

type ListBusinesses struct {
	repo  domain.Repository
	cache cache.Cache
	log   logrus.FieldLogger
}

func NewListBusinesses(
	repo domain.Repository,
	cache cache.Cache,
	log logrus.FieldLogger,
) *ListBusinesses {
	return &ListBusinesses{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Execute returns every business with its owner name, newest first. Cache
// errors fall through to the store.
func (uc *ListBusinesses) Execute(
	ctx context.Context,
) ([]dto.BusinessListItem, error) {

	var generation int64
	if _, err := uc.cache.Get(ctx, listGenerationKey, &generation); err != nil {
		uc.log.WithError(err).Warn("business cache read failed")
		return uc.repo.ListBusinesses(ctx)
	}

	key := listCacheKey(generation)

	var cached []dto.BusinessListItem
	hit, err := uc.cache.Get(ctx, key, &cached)
	if err != nil {
		uc.log.WithError(err).Warn("business cache read failed")
	} else if hit {
		return cached, nil
	}

	items, err := uc.repo.ListBusinesses(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, key, items); err != nil {
		uc.log.WithError(err).Warn("business cache write failed")
	}

	return items, nil
}
