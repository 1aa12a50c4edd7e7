package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/httpresp"
	ucAdmin "github.com/workhub/workhub-api/internal/usecase/admin"
)

type AdminHandler struct {
	stats *ucAdmin.Stats
	log   logrus.FieldLogger
}

func NewAdminHandler(stats *ucAdmin.Stats, log logrus.FieldLogger) *AdminHandler {
	return &AdminHandler{stats: stats, log: log}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	adminID, ok := queryID(c, "admin_id")
	if !ok {
		return
	}

	stats, err := h.stats.Execute(c.Request.Context(), adminID)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, "stats", stats)
}
