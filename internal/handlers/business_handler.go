package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/httpresp"
	ucBusiness "github.com/workhub/workhub-api/internal/usecase/business"
)

// ======================================================
// HANDLER
// ======================================================

type BusinessHandler struct {
	create  *ucBusiness.CreateBusiness
	list    *ucBusiness.ListBusinesses
	pending *ucBusiness.ListPendingRequests
	approve *ucBusiness.ApproveRequest
	mine    *ucBusiness.ListOwnerBusinesses
	log     logrus.FieldLogger
}

func NewBusinessHandler(
	create *ucBusiness.CreateBusiness,
	list *ucBusiness.ListBusinesses,
	pending *ucBusiness.ListPendingRequests,
	approve *ucBusiness.ApproveRequest,
	mine *ucBusiness.ListOwnerBusinesses,
	log logrus.FieldLogger,
) *BusinessHandler {
	return &BusinessHandler{
		create:  create,
		list:    list,
		pending: pending,
		approve: approve,
		mine:    mine,
		log:     log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBusinessRequest struct {
	OwnerID  uint   `json:"owner_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Location string `json:"location"`
}

type ApproveRequestRequest struct {
	OwnerID   uint `json:"owner_id"`
	RequestID uint `json:"request_id"`
}

// ======================================================
// OWNER
// ======================================================

func (h *BusinessHandler) Create(c *gin.Context) {
	var req CreateBusinessRequest
	if !bindJSON(c, &req) {
		return
	}

	business, err := h.create.Execute(c.Request.Context(), ucBusiness.CreateInput{
		OwnerID:  req.OwnerID,
		Name:     req.Name,
		Category: req.Category,
		Location: req.Location,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, "business", business)
}

func (h *BusinessHandler) PendingRequests(c *gin.Context) {
	ownerID, ok := queryID(c, "owner_id")
	if !ok {
		return
	}

	items, err := h.pending.Execute(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, items)
}

func (h *BusinessHandler) OwnerBusinesses(c *gin.Context) {
	ownerID, ok := queryID(c, "owner_id")
	if !ok {
		return
	}

	items, err := h.mine.Execute(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, items)
}

func (h *BusinessHandler) Approve(c *gin.Context) {
	var req ApproveRequestRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.approve.Execute(c.Request.Context(), ucBusiness.ApproveInput{
		OwnerID:   req.OwnerID,
		RequestID: req.RequestID,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, "updated", updated)
}

// ======================================================
// PUBLIC
// ======================================================

func (h *BusinessHandler) List(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, items)
}
