package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/workhub/workhub-api/internal/audit"
	"github.com/workhub/workhub-api/internal/cache"
	"github.com/workhub/workhub-api/internal/config"
	"github.com/workhub/workhub-api/internal/handlers"
	infraRepo "github.com/workhub/workhub-api/internal/infra/repository"
	"github.com/workhub/workhub-api/internal/middleware"
	"github.com/workhub/workhub-api/internal/passwords"
	ucAccount "github.com/workhub/workhub-api/internal/usecase/account"
	ucAdmin "github.com/workhub/workhub-api/internal/usecase/admin"
	ucBusiness "github.com/workhub/workhub-api/internal/usecase/business"
	ucRating "github.com/workhub/workhub-api/internal/usecase/rating"
	ucWorker "github.com/workhub/workhub-api/internal/usecase/worker"
)

type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    logrus.FieldLogger
	Cache  cache.Cache
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config
	log := deps.Log

	businessCache := deps.Cache
	if businessCache == nil {
		businessCache = cache.Noop{}
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewMarketplaceGormRepository(deps.DB)
	hasher := passwords.NewHasher(cfg.BcryptCost)
	auditLogger := audit.New(log)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAccount.NewRegister(repo, hasher, auditLogger, cfg.CheckEmailDomain)
	loginUC := ucAccount.NewLogin(repo, hasher)

	createBusinessUC := ucBusiness.NewCreateBusiness(repo, businessCache, auditLogger, log)
	listBusinessesUC := ucBusiness.NewListBusinesses(repo, businessCache, log)
	pendingRequestsUC := ucBusiness.NewListPendingRequests(repo)
	approveRequestUC := ucBusiness.NewApproveRequest(repo, auditLogger)
	ownerBusinessesUC := ucBusiness.NewListOwnerBusinesses(repo)

	updateProfileUC := ucWorker.NewUpdateProfile(repo, auditLogger)
	setStatusUC := ucWorker.NewSetStatus(repo, auditLogger)
	applyUC := ucWorker.NewApplyToBusiness(repo, auditLogger)
	listWorkersUC := ucWorker.NewListWorkers(repo)
	workerRequestsUC := ucWorker.NewListRequests(repo)

	submitRatingUC := ucRating.NewSubmitRating(repo, auditLogger)
	statsUC := ucAdmin.NewStats(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(deps.DB, cfg.ServiceName, cfg.DBPort, log)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, log)
	businessHandler := handlers.NewBusinessHandler(
		createBusinessUC,
		listBusinessesUC,
		pendingRequestsUC,
		approveRequestUC,
		ownerBusinessesUC,
		log,
	)
	workerHandler := handlers.NewWorkerHandler(
		updateProfileUC,
		setStatusUC,
		applyUC,
		listWorkersUC,
		workerRequestsUC,
		log,
	)
	ratingHandler := handlers.NewRatingHandler(submitRatingUC, log)
	adminHandler := handlers.NewAdminHandler(statsUC, log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// OWNER
		// ------------------------------
		owner := api.Group("/owner")
		{
			owner.POST("/businesses", businessHandler.Create)
			owner.GET("/businesses", businessHandler.OwnerBusinesses)
			owner.GET("/pending_requests", businessHandler.PendingRequests)
			owner.POST("/approve_request", businessHandler.Approve)
		}

		// ------------------------------
		// WORKER
		// ------------------------------
		worker := api.Group("/worker")
		{
			worker.POST("/profile", workerHandler.UpdateProfile)
			worker.POST("/status", workerHandler.SetStatus)
			worker.POST("/register_business", workerHandler.Apply)
			worker.GET("/requests", workerHandler.Requests)
		}

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/businesses", businessHandler.List)
		api.GET("/businesses/:id/workers", workerHandler.ListForBusiness)
		api.GET("/workers", workerHandler.List)
		api.POST("/rate", ratingHandler.Rate)

		// ------------------------------
		// ADMIN
		// ------------------------------
		api.GET("/admin/stats", adminHandler.Stats)
	}
}
