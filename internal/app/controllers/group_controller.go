package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hubzz/preview-api/internal/app/services"
	"github.com/hubzz/preview-api/internal/platform/hubzz"
)

// GroupController serves group profiles and member rosters.
type GroupController struct {
	client   *hubzz.Client
	selector *services.SourceSelector
	log      *zap.Logger
}

func NewGroupController(client *hubzz.Client, selector *services.SourceSelector, log *zap.Logger) *GroupController {
	return &GroupController{client: client, selector: selector, log: log}
}

func (ctl *GroupController) Profile(c *gin.Context) {
	groupID := c.Param("groupId")
	if groupID == "" {
		badRequest(c, "missing groupId")
		return
	}
	profile, err := ctl.client.GetGroupProfile(c.Request.Context(), groupID, resolveMode(c, ctl.selector))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ctl *GroupController) Members(c *gin.Context) {
	groupID := c.Param("groupId")
	if groupID == "" {
		badRequest(c, "missing groupId")
		return
	}
	members, err := ctl.client.GetGroupMembers(c.Request.Context(), groupID, resolveMode(c, ctl.selector))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, members)
}
