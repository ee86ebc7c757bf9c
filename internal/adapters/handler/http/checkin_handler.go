package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
	"github.com/comitanigiacomo/kanso-coach/internal/core/services"
)

type CheckinHandler struct {
	svc *services.CheckinService
	log *zap.Logger
}

func NewCheckinHandler(svc *services.CheckinService, log *zap.Logger) *CheckinHandler {
	return &CheckinHandler{
		svc: svc,
		log: log,
	}
}

type checkinRequest struct {
	Habits map[string]bool `json:"habits"`
	// Mood defaults to domain.DefaultMood when omitted.
	Mood *int `json:"mood"`
}

func (h *CheckinHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.PUT("/checkin", h.Checkin)
	router.GET("/history", h.History)
}

func (h *CheckinHandler) Checkin(c *gin.Context) {
	var req checkinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.svc.Checkin(c.Request.Context(), services.CheckinInput{
		Habits: req.Habits,
		Mood:   moodOrDefault(req.Mood),
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *CheckinHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"window": domain.HistoryWindow,
		"rows":   h.svc.History(),
	})
}

func moodOrDefault(mood *int) int {
	if mood == nil {
		return domain.DefaultMood
	}
	return *mood
}
