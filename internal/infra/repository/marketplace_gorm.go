package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
	"github.com/workhub/workhub-api/internal/dto"
	"github.com/workhub/workhub-api/internal/models"
)

type MarketplaceGormRepository struct {
	db *gorm.DB
}

func NewMarketplaceGormRepository(db *gorm.DB) *MarketplaceGormRepository {
	return &MarketplaceGormRepository{db: db}
}

// translate maps driver failures onto the domain store errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case isUniqueViolation(err):
		return errors.Join(domain.ErrDuplicate, err)
	case isForeignKeyViolation(err):
		return errors.Join(domain.ErrReferenceMissing, err)
	}
	return err
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *MarketplaceGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&MarketplaceGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *MarketplaceGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *MarketplaceGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *MarketplaceGormRepository) GetUserWithRole(
	ctx context.Context,
	id uint,
	role domain.Role,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, string(role)).
		First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *MarketplaceGormRepository) HasUserWithRole(
	ctx context.Context,
	role domain.Role,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", string(role)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Worker profiles
// --------------------------------------------------

func (r *MarketplaceGormRepository) CreateWorkerProfile(
	ctx context.Context,
	profile *models.WorkerProfile,
) error {
	return translate(r.db.WithContext(ctx).Create(profile).Error)
}

func (r *MarketplaceGormRepository) UpdateWorkerProfile(
	ctx context.Context,
	userID uint,
	skills string,
	experienceYears int,
	location string,
) (*models.WorkerProfile, error) {

	return r.updateProfile(ctx, userID, map[string]any{
		"skills":           skills,
		"experience_years": experienceYears,
		"location":         location,
	})
}

func (r *MarketplaceGormRepository) UpdateWorkerStatus(
	ctx context.Context,
	userID uint,
	status domain.Status,
) (*models.WorkerProfile, error) {

	return r.updateProfile(ctx, userID, map[string]any{
		"status": string(status),
	})
}

// updateProfile applies the columns and reads the row back. Callers run it
// inside Transaction so the read sees exactly what was written.
func (r *MarketplaceGormRepository) updateProfile(
	ctx context.Context,
	userID uint,
	columns map[string]any,
) (*models.WorkerProfile, error) {

	res := r.db.WithContext(ctx).
		Model(&models.WorkerProfile{}).
		Where("user_id = ?", userID).
		Updates(columns)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	var profile models.WorkerProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// --------------------------------------------------
// Businesses
// --------------------------------------------------

func (r *MarketplaceGormRepository) CreateBusiness(
	ctx context.Context,
	business *models.Business,
) error {
	return translate(r.db.WithContext(ctx).Create(business).Error)
}

func (r *MarketplaceGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var business models.Business
	if err := r.db.WithContext(ctx).First(&business, id).Error; err != nil {
		return nil, translate(err)
	}
	return &business, nil
}

func (r *MarketplaceGormRepository) ListBusinesses(
	ctx context.Context,
) ([]dto.BusinessListItem, error) {

	var items []dto.BusinessListItem
	if err := r.businesses(ctx).Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MarketplaceGormRepository) ListBusinessesByOwner(
	ctx context.Context,
	ownerID uint,
) ([]dto.BusinessListItem, error) {

	var items []dto.BusinessListItem
	if err := r.businesses(ctx).
		Where("b.owner_id = ?", ownerID).
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// businesses selects business rows with their owner name, newest first.
func (r *MarketplaceGormRepository) businesses(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("businesses AS b").
		Select("b.id, b.owner_id, b.name, b.category, b.location, b.created_at, u.name AS owner_name").
		Joins("JOIN users u ON u.id = b.owner_id").
		Order("b.id DESC")
}

// --------------------------------------------------
// Business <-> worker links
// --------------------------------------------------

func (r *MarketplaceGormRepository) CreateBusinessWorker(
	ctx context.Context,
	link *models.BusinessWorker,
) error {
	return translate(r.db.WithContext(ctx).Create(link).Error)
}

func (r *MarketplaceGormRepository) GetBusinessWorkerForOwner(
	ctx context.Context,
	requestID uint,
	ownerID uint,
) (*models.BusinessWorker, error) {

	var link models.BusinessWorker
	if err := r.db.WithContext(ctx).
		Model(&models.BusinessWorker{}).
		Joins("JOIN businesses b ON b.id = business_workers.business_id").
		Where("business_workers.id = ? AND b.owner_id = ?", requestID, ownerID).
		First(&link).Error; err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

func (r *MarketplaceGormRepository) ApproveBusinessWorker(
	ctx context.Context,
	requestID uint,
) (*models.BusinessWorker, error) {

	res := r.db.WithContext(ctx).
		Model(&models.BusinessWorker{}).
		Where("id = ?", requestID).
		Update("approved", true)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	var link models.BusinessWorker
	if err := r.db.WithContext(ctx).First(&link, requestID).Error; err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

func (r *MarketplaceGormRepository) ListPendingRequests(
	ctx context.Context,
	ownerID uint,
) ([]dto.PendingRequest, error) {

	var items []dto.PendingRequest
	if err := r.db.WithContext(ctx).
		Table("business_workers AS bw").
		Select(`bw.id AS request_id, bw.business_id, b.name AS business_name,
			bw.worker_user_id, u.name AS worker_name, u.phone, u.email,
			bw.approved, bw.created_at`).
		Joins("JOIN businesses b ON b.id = bw.business_id").
		Joins("JOIN users u ON u.id = bw.worker_user_id").
		Where("b.owner_id = ? AND bw.approved = ?", ownerID, false).
		Order("bw.created_at DESC, bw.id DESC").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MarketplaceGormRepository) ListWorkerRequests(
	ctx context.Context,
	workerUserID uint,
) ([]dto.WorkerRequest, error) {

	var items []dto.WorkerRequest
	if err := r.db.WithContext(ctx).
		Table("business_workers AS bw").
		Select(`bw.id AS request_id, bw.business_id, b.name AS business_name,
			bw.approved, bw.created_at`).
		Joins("JOIN businesses b ON b.id = bw.business_id").
		Where("bw.worker_user_id = ?", workerUserID).
		Order("bw.created_at DESC, bw.id DESC").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --------------------------------------------------
// Workers / ratings
// --------------------------------------------------

// ListWorkers returns every worker with the raw sum and count of their
// ratings. Ratings are grouped in a subquery before the join so the
// business filter cannot multiply rating rows.
func (r *MarketplaceGormRepository) ListWorkers(
	ctx context.Context,
	filter domain.WorkerFilter,
) ([]dto.WorkerRatingRow, error) {

	db := r.db.WithContext(ctx)

	ratings := db.
		Model(&models.Rating{}).
		Select("worker_user_id, SUM(stars) AS rating_sum, COUNT(id) AS rating_count").
		Group("worker_user_id")

	q := db.
		Table("users AS u").
		Select(`u.id AS user_id, u.name, u.phone, u.email,
			wp.skills, wp.experience_years, wp.location, wp.status,
			COALESCE(rt.rating_sum, 0) AS rating_sum,
			COALESCE(rt.rating_count, 0) AS rating_count`).
		Joins("JOIN worker_profiles wp ON wp.user_id = u.id").
		Joins("LEFT JOIN (?) AS rt ON rt.worker_user_id = u.id", ratings).
		Where("u.role = ?", string(domain.RoleWorker))

	if filter.BusinessID != 0 {
		q = q.Joins(
			"JOIN business_workers bw ON bw.worker_user_id = u.id AND bw.business_id = ? AND bw.approved = ?",
			filter.BusinessID, true,
		)
	}

	if filter.Status != "" {
		q = q.Where("wp.status = ?", string(filter.Status))
	}

	var rows []dto.WorkerRatingRow
	if err := q.Order("u.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MarketplaceGormRepository) CreateRating(
	ctx context.Context,
	rating *models.Rating,
) error {
	return translate(r.db.WithContext(ctx).Create(rating).Error)
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (r *MarketplaceGormRepository) Stats(
	ctx context.Context,
) (*dto.Stats, error) {

	db := r.db.WithContext(ctx)
	stats := &dto.Stats{WorkersByStatus: map[string]int64{}}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.Owners, db.Model(&models.User{}).Where("role = ?", string(domain.RoleOwner))},
		{&stats.Workers, db.Model(&models.User{}).Where("role = ?", string(domain.RoleWorker))},
		{&stats.Businesses, db.Model(&models.Business{})},
		{&stats.PendingRequests, db.Model(&models.BusinessWorker{}).Where("approved = ?", false)},
		{&stats.ApprovedLinks, db.Model(&models.BusinessWorker{}).Where("approved = ?", true)},
		{&stats.Ratings, db.Model(&models.Rating{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	var byStatus []struct {
		Status string
		Total  int64
	}
	if err := db.Model(&models.WorkerProfile{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}

	for _, s := range domain.Statuses {
		stats.WorkersByStatus[string(s)] = 0
	}
	for _, s := range byStatus {
		stats.WorkersByStatus[s.Status] = s.Total
	}

	return stats, nil
}

// Compile-time check
var _ domain.Repository = (*MarketplaceGormRepository)(nil)
