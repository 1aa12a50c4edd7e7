package worker

import (
	"context"
	"sort"

	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/dto"
)

type ListInput struct {
	Status     string
	BusinessID uint
}

type ListWorkers struct {
	repo domain.Repository
}

func NewListWorkers(repo domain.Repository) *ListWorkers {
	return &ListWorkers{repo: repo}
}

// Execute lists workers with their rounded average rating, best rated
// first and newest first among equals. An unknown status applies no status
// filter.
func (uc *ListWorkers) Execute(
	ctx context.Context,
	in ListInput,
) ([]dto.WorkerListItem, error) {

	filter := domain.WorkerFilter{BusinessID: in.BusinessID}
	if status := domain.ParseStatus(in.Status); status.Valid() {
		filter.Status = status
	}

	rows, err := uc.repo.ListWorkers(ctx, filter)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		tenths int64
		item   dto.WorkerListItem
	}

	list := make([]ranked, 0, len(rows))
	for _, r := range rows {
		list = append(list, ranked{
			tenths: domain.AverageTenths(r.RatingSum, r.RatingCount),
			item: dto.WorkerListItem{
				UserID:          r.UserID,
				Name:            r.Name,
				Phone:           r.Phone,
				Email:           r.Email,
				Skills:          r.Skills,
				ExperienceYears: r.ExperienceYears,
				Location:        r.Location,
				Status:          r.Status,
				AvgRating:       domain.Average(r.RatingSum, r.RatingCount),
				RatingCount:     r.RatingCount,
			},
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].tenths != list[j].tenths {
			return list[i].tenths > list[j].tenths
		}
		return list[i].item.UserID > list[j].item.UserID
	})

	items := make([]dto.WorkerListItem, len(list))
	for i, r := range list {
		items[i] = r.item
	}
	return items, nil
}
