package marketplace

import (
	"context"

	"github.com/workhub/workhub-api/internal/dto"
	"github.com/workhub/workhub-api/internal/models"
)

// WorkerFilter narrows ListWorkers. Zero values mean "no filter".
type WorkerFilter struct {
	Status     Status
	BusinessID uint
}

type Repository interface {
	// -------- Transactions --------
	// Transaction runs fn against a repository bound to a single store
	// transaction. Returning an error rolls everything back.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Users --------
	CreateUser(
		ctx context.Context,
		user *models.User,
	) error

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	GetUserWithRole(
		ctx context.Context,
		id uint,
		role Role,
	) (*models.User, error)

	HasUserWithRole(
		ctx context.Context,
		role Role,
	) (bool, error)

	// -------- Worker profiles --------
	CreateWorkerProfile(
		ctx context.Context,
		profile *models.WorkerProfile,
	) error

	UpdateWorkerProfile(
		ctx context.Context,
		userID uint,
		skills string,
		experienceYears int,
		location string,
	) (*models.WorkerProfile, error)

	UpdateWorkerStatus(
		ctx context.Context,
		userID uint,
		status Status,
	) (*models.WorkerProfile, error)

	// -------- Businesses --------
	CreateBusiness(
		ctx context.Context,
		business *models.Business,
	) error

	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	ListBusinesses(
		ctx context.Context,
	) ([]dto.BusinessListItem, error)

	ListBusinessesByOwner(
		ctx context.Context,
		ownerID uint,
	) ([]dto.BusinessListItem, error)

	// -------- Business <-> worker links --------
	CreateBusinessWorker(
		ctx context.Context,
		link *models.BusinessWorker,
	) error

	GetBusinessWorkerForOwner(
		ctx context.Context,
		requestID uint,
		ownerID uint,
	) (*models.BusinessWorker, error)

	ApproveBusinessWorker(
		ctx context.Context,
		requestID uint,
	) (*models.BusinessWorker, error)

	ListPendingRequests(
		ctx context.Context,
		ownerID uint,
	) ([]dto.PendingRequest, error)

	ListWorkerRequests(
		ctx context.Context,
		workerUserID uint,
	) ([]dto.WorkerRequest, error)

	// -------- Workers / ratings --------
	ListWorkers(
		ctx context.Context,
		filter WorkerFilter,
	) ([]dto.WorkerRatingRow, error)

	CreateRating(
		ctx context.Context,
		rating *models.Rating,
	) error

	// -------- Admin --------
	Stats(
		ctx context.Context,
	) (*dto.Stats, error)
}
