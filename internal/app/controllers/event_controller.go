package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hubzz/preview-api/internal/app/services"
	"github.com/hubzz/preview-api/internal/platform/hubzz"
)

// EventController serves the event-scoped reads: the event record, its
// stages, its stream rotation, and its drop-in room.
type EventController struct {
	client   *hubzz.Client
	selector *services.SourceSelector
	log      *zap.Logger
}

func NewEventController(client *hubzz.Client, selector *services.SourceSelector, log *zap.Logger) *EventController {
	return &EventController{client: client, selector: selector, log: log}
}

func (ctl *EventController) Get(c *gin.Context) {
	eventID := c.Param("eventId")
	if eventID == "" {
		badRequest(c, "missing eventId")
		return
	}
	ev, err := ctl.client.GetEvent(c.Request.Context(), eventID, resolveMode(c, ctl.selector))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (ctl *EventController) Stages(c *gin.Context) {
	eventID := c.Param("eventId")
	if eventID == "" {
		badRequest(c, "missing eventId")
		return
	}
	stages, err := ctl.client.GetEventStages(c.Request.Context(), eventID, resolveMode(c, ctl.selector))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, stages)
}

func (ctl *EventController) StreamQueue(c *gin.Context) {
	eventID := c.Param("eventId")
	if eventID == "" {
		badRequest(c, "missing eventId")
		return
	}
	queue, err := ctl.client.GetStreamQueue(c.Request.Context(), eventID, resolveMode(c, ctl.selector))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, queue)
}

func (ctl *EventController) DropIn(c *gin.Context) {
	eventID := c.Param("eventId")
	if eventID == "" {
		badRequest(c, "missing eventId")
		return
	}
	session, err := ctl.client.GetDropInSession(c.Request.Context(), eventID, resolveMode(c, ctl.selector))
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
