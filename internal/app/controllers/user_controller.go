package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hubzz/preview-api/internal/app/services"
	"github.com/hubzz/preview-api/internal/platform/hubzz"
)

// UserController serves user-scoped reads: tickets and the notification feed.
type UserController struct {
	client   *hubzz.Client
	selector *services.SourceSelector
	log      *zap.Logger
}

func NewUserController(client *hubzz.Client, selector *services.SourceSelector, log *zap.Logger) *UserController {
	return &UserController{client: client, selector: selector, log: log}
}

func (ctl *UserController) Tickets(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		badRequest(c, "missing userId")
		return
	}
	tickets, err := ctl.client.GetUserTickets(c.Request.Context(), userID, resolveMode(c, ctl.selector))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (ctl *UserController) Notifications(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		badRequest(c, "missing userId")
		return
	}
	feed, err := ctl.client.GetUserNotifications(c.Request.Context(), userID, resolveMode(c, ctl.selector))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}
