package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hubzz/preview-api/internal/app/services"
	"github.com/hubzz/preview-api/internal/platform/hubzz"
)

type errorResponse struct {
	Error string `json:"error"`
}

// resolveMode reads the request-scoped mock flag and runs it through the
// selector. Presence matters: "?mock=" is still an explicit mock request.
func resolveMode(c *gin.Context, selector *services.SourceSelector) bool {
	value, present := c.GetQuery("mock")
	return selector.UseMock(value, present)
}

// respondError maps a domain client error onto a transport status and the
// stable `{"error": ...}` body. Validation failures are a contract mismatch
// on our side of the fence; they log the detail and return a generic 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	var (
		statusErr     *hubzz.StatusError
		validationErr *hubzz.ValidationError
	)
	switch {
	case errors.Is(err, hubzz.ErrBadRequest):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "missing identifier"})
	case errors.Is(err, hubzz.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.As(err, &statusErr):
		c.JSON(statusErr.Code, errorResponse{Error: statusErr.Error()})
	case errors.As(err, &validationErr):
		log.Error("upstream payload rejected", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "upstream response validation failed"})
	default:
		log.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}
