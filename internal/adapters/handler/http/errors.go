package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

func handleError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidMood),
		errors.Is(err, domain.ErrUnknownHabit),
		errors.Is(err, domain.ErrUnknownCoachStyle):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		log.Error("request failed",
			zap.String("request_id", middleware.RequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
