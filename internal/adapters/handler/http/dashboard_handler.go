package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/core/services"
)

type DashboardHandler struct {
	svc *services.DashboardService
	log *zap.Logger
}

func NewDashboardHandler(svc *services.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
		log: log,
	}
}

type reportRequest struct {
	City       string          `json:"city"`
	CoachStyle string          `json:"coach_style"`
	Habits     map[string]bool `json:"habits"`
	Mood       *int            `json:"mood"`
}

// RegisterRoutes mounts the dashboard routes. Extra handlers, such as a rate
// limiter, run before report generation only.
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup, reportGuards ...gin.HandlerFunc) {
	router.GET("/dashboard", h.Today)

	report := append(append([]gin.HandlerFunc{}, reportGuards...), h.Report)
	router.POST("/reports", report...)
}

func (h *DashboardHandler) Today(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Today(c.Request.Context()))
}

// Report answers 200 whenever the input is valid, even if some or all external
// sources were unavailable.
func (h *DashboardHandler) Report(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.svc.GenerateReport(c.Request.Context(), services.ReportInput{
		City:   req.City,
		Style:  req.CoachStyle,
		Habits: req.Habits,
		Mood:   moodOrDefault(req.Mood),
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
