package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/benjsant/coach-scheduler/internal/domain/seance"
	"github.com/benjsant/coach-scheduler/internal/httperr"
	"github.com/benjsant/coach-scheduler/internal/httpresp"
	ucSeance "github.com/benjsant/coach-scheduler/internal/usecase/seance"
)

// PublicHandler serves the unauthenticated booking-form data: the subject
// catalogue, the coach directory, and a coach's free slots for a day.
type PublicHandler struct {
	repo         domain.Repository
	availability *ucSeance.GetAvailability
}

func NewPublicHandler(
	repo domain.Repository,
	availability *ucSeance.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		availability: availability,
	}
}

func (h *PublicHandler) ListSubjects(c *gin.Context) {
	httpresp.List(c, domain.Subjects)
}

func (h *PublicHandler) ListCoaches(c *gin.Context) {
	coaches, err := h.repo.ListCoaches(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_coaches", "Could not load coaches.")
		return
	}

	type coachDTO struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	out := make([]coachDTO, 0, len(coaches))
	for _, coach := range coaches {
		out = append(out, coachDTO{ID: coach.ID, Name: coach.Name})
	}
	httpresp.List(c, out)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	coachID, err := strconv.ParseUint(c.Query("coach_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_coach_id", "Invalid coach id.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "A date is required.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), uint(coachID), dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "failed_to_list_availability", "Could not load availability.")
		return
	}

	httpresp.List(c, slots)
}
