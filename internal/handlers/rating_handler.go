package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/workhub/workhub-api/internal/httperr"
	"github.com/workhub/workhub-api/internal/httpresp"
	ucRating "github.com/workhub/workhub-api/internal/usecase/rating"
)

type RatingHandler struct {
	submit *ucRating.SubmitRating
	log    logrus.FieldLogger
}

func NewRatingHandler(
	submit *ucRating.SubmitRating,
	log logrus.FieldLogger,
) *RatingHandler {
	return &RatingHandler{
		submit: submit,
		log:    log,
	}
}

type RateRequest struct {
	WorkerUserID uint   `json:"worker_user_id"`
	Stars        int    `json:"stars"`
	Comment      string `json:"comment"`
}

func (h *RatingHandler) Rate(c *gin.Context) {
	var req RateRequest
	if !bindJSON(c, &req) {
		return
	}

	rating, err := h.submit.Execute(c.Request.Context(), ucRating.SubmitInput{
		WorkerUserID: req.WorkerUserID,
		Stars:        req.Stars,
		Comment:      req.Comment,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, "rating", rating)
}
