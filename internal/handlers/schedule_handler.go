package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/benjsant/coach-scheduler/internal/httperr"
	"github.com/benjsant/coach-scheduler/internal/httpresp"
	"github.com/benjsant/coach-scheduler/internal/middleware"
	ucSeance "github.com/benjsant/coach-scheduler/internal/usecase/seance"
)

type ScheduleHandler struct {
	views *ucSeance.ScheduleViews
}

func NewScheduleHandler(views *ucSeance.ScheduleViews) *ScheduleHandler {
	return &ScheduleHandler{views: views}
}

func (h *ScheduleHandler) ClientUpcoming(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	seances, err := h.views.ClientUpcoming(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_seances", "Could not load upcoming seances.")
		return
	}
	httpresp.List(c, seances)
}

func (h *ScheduleHandler) ClientHistory(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	seances, err := h.views.ClientHistory(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_seances", "Could not load seance history.")
		return
	}
	httpresp.List(c, seances)
}

func (h *ScheduleHandler) CoachToday(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	seances, err := h.views.CoachToday(c.Request.Context(), coachID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_seances", "Could not load today's seances.")
		return
	}
	httpresp.List(c, seances)
}

func (h *ScheduleHandler) CoachUpcoming(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	seances, err := h.views.CoachUpcoming(c.Request.Context(), coachID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_seances", "Could not load upcoming seances.")
		return
	}
	httpresp.List(c, seances)
}

func (h *ScheduleHandler) CoachHistory(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	seances, err := h.views.CoachHistory(c.Request.Context(), coachID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_seances", "Could not load seance history.")
		return
	}
	httpresp.List(c, seances)
}

func (h *ScheduleHandler) CoachForgotten(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	seances, err := h.views.CoachForgotten(c.Request.Context(), coachID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_seances", "Could not load forgotten seances.")
		return
	}
	httpresp.List(c, seances)
}
