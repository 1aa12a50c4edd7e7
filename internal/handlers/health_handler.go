package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db      *gorm.DB
	service string
	dbPort  int
	log     logrus.FieldLogger
}

func NewHealthHandler(db *gorm.DB, service string, dbPort int, log logrus.FieldLogger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		service: service,
		dbPort:  dbPort,
		log:     log,
	}
}

func (h *HealthHandler) Health(c *gin.Context) {
	body := gin.H{
		"ok":      true,
		"service": h.service,
		"db_port": h.dbPort,
		"db":      true,
	}

	if err := h.ping(c.Request.Context()); err != nil {
		h.log.WithError(err).Warn("health: database unreachable")
		body["ok"] = false
		body["db"] = false
		body["error"] = "Database unavailable"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	c.JSON(http.StatusOK, body)
}

func (h *HealthHandler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}
