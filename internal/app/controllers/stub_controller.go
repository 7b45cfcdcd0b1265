package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hubzz/preview-api/internal/app/services"
	"github.com/hubzz/preview-api/internal/platform/hubzz"
)

// StubController serves stub records.
type StubController struct {
	client   *hubzz.Client
	selector *services.SourceSelector
	log      *zap.Logger
}

func NewStubController(client *hubzz.Client, selector *services.SourceSelector, log *zap.Logger) *StubController {
	return &StubController{client: client, selector: selector, log: log}
}

func (ctl *StubController) Get(c *gin.Context) {
	stubID := c.Param("stubId")
	if stubID == "" {
		badRequest(c, "missing stubId")
		return
	}
	s, err := ctl.client.GetStub(c.Request.Context(), stubID, resolveMode(c, ctl.selector))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
