// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nexaride/internal/modules/pricing"
	"nexaride/internal/modules/quote"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Success: false, Error: msg})
}

func writeQuoteError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, quote.ErrInvalidRequest):
		logger.Info("quote request rejected", zap.Error(err))
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, pricing.ErrInvalidMetrics):
		// already logged with the offending metrics by the quote service
		writeError(c, http.StatusUnprocessableEntity, "route could not be priced")
	case errors.Is(err, context.Canceled):
		// client went away; nothing on our side failed
		logger.Debug("quote request cancelled", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "request cancelled")
	default:
		logger.Error("quote failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
