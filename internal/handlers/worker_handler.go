package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/httpresp"
	ucWorker "github.com/workhub/workhub-api/internal/usecase/worker"
)

// ======================================================
// HANDLER
// ======================================================

type WorkerHandler struct {
	updateProfile *ucWorker.UpdateProfile
	setStatus     *ucWorker.SetStatus
	apply         *ucWorker.ApplyToBusiness
	list          *ucWorker.ListWorkers
	requests      *ucWorker.ListRequests
	log           logrus.FieldLogger
}

func NewWorkerHandler(
	updateProfile *ucWorker.UpdateProfile,
	setStatus *ucWorker.SetStatus,
	apply *ucWorker.ApplyToBusiness,
	list *ucWorker.ListWorkers,
	requests *ucWorker.ListRequests,
	log logrus.FieldLogger,
) *WorkerHandler {
	return &WorkerHandler{
		updateProfile: updateProfile,
		setStatus:     setStatus,
		apply:         apply,
		list:          list,
		requests:      requests,
		log:           log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateProfileRequest struct {
	UserID          uint   `json:"user_id"`
	Skills          string `json:"skills"`
	ExperienceYears int    `json:"experience_years"`
	Location        string `json:"location"`
}

type SetStatusRequest struct {
	UserID uint   `json:"user_id"`
	Status string `json:"status"`
}

type ApplyRequest struct {
	WorkerUserID uint `json:"worker_user_id"`
	BusinessID   uint `json:"business_id"`
}

// ======================================================
// WORKER
// ======================================================

func (h *WorkerHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.updateProfile.Execute(c.Request.Context(), ucWorker.ProfileInput{
		UserID:          req.UserID,
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, "profile", profile)
}

func (h *WorkerHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	worker, err := h.setStatus.Execute(c.Request.Context(), ucWorker.StatusInput{
		UserID: req.UserID,
		Status: req.Status,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, "worker", worker)
}

func (h *WorkerHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.apply.Execute(c.Request.Context(), ucWorker.ApplyInput{
		WorkerUserID: req.WorkerUserID,
		BusinessID:   req.BusinessID,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, "request", link)
}

// Requests serves GET /worker/requests?worker_user_id=.
func (h *WorkerHandler) Requests(c *gin.Context) {
	workerUserID, ok := queryID(c, "worker_user_id")
	if !ok {
		return
	}

	items, err := h.requests.Execute(c.Request.Context(), workerUserID)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// PUBLIC
// ======================================================

// List serves GET /workers?status=&business_id=.
func (h *WorkerHandler) List(c *gin.Context) {
	businessID, ok := queryID(c, "business_id")
	if !ok {
		return
	}
	h.respondList(c, businessID)
}

// ListForBusiness serves GET /businesses/:id/workers?status=.
func (h *WorkerHandler) ListForBusiness(c *gin.Context) {
	businessID, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.respondList(c, businessID)
}

func (h *WorkerHandler) respondList(c *gin.Context, businessID uint) {
	items, err := h.list.Execute(c.Request.Context(), ucWorker.ListInput{
		Status:     c.Query("status"),
		BusinessID: businessID,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, items)
}
