package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/benjsant/coach-scheduler/internal/httperr"
	"github.com/benjsant/coach-scheduler/internal/middleware"
	ucSeance "github.com/benjsant/coach-scheduler/internal/usecase/seance"
)

// ======================================================
// HANDLER
// ======================================================

type SeanceHandler struct {
	bookUC       *ucSeance.BookSeance
	cancelUC     *ucSeance.CancelSeance
	completeUC   *ucSeance.CompleteSeance
	markAbsentUC *ucSeance.MarkAbsent
	editNoteUC   *ucSeance.EditNote
}

func NewSeanceHandler(
	bookUC *ucSeance.BookSeance,
	cancelUC *ucSeance.CancelSeance,
	completeUC *ucSeance.CompleteSeance,
	markAbsentUC *ucSeance.MarkAbsent,
	editNoteUC *ucSeance.EditNote,
) *SeanceHandler {
	return &SeanceHandler{
		bookUC:       bookUC,
		cancelUC:     cancelUC,
		completeUC:   completeUC,
		markAbsentUC: markAbsentUC,
		editNoteUC:   editNoteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookSeanceRequest struct {
	CoachID uint   `json:"coach_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Subject string `json:"subject" binding:"required"`
}

type NoteRequest struct {
	Note string `json:"note"`
}

// ======================================================
// BOOK
// ======================================================

func (h *SeanceHandler) Book(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookSeanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	result, err := h.bookUC.Execute(c.Request.Context(), ucSeance.BookSeanceInput{
		ClientID: clientID,
		CoachID:  req.CoachID,
		Date:     req.Date,
		Time:     req.Time,
		Subject:  req.Subject,
	})
	if err != nil {
		writeSeanceError(c, err)
		return
	}

	c.JSON(201, result)
}

// ======================================================
// CANCEL
// ======================================================

func (h *SeanceHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := seanceID(c)
	if !ok {
		return
	}

	var req NoteRequest
	_ = c.ShouldBindJSON(&req)

	s, err := h.cancelUC.Execute(c.Request.Context(), actorID, id, req.Note)
	if err != nil {
		writeSeanceError(c, err)
		return
	}

	c.JSON(200, s)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *SeanceHandler) Complete(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := seanceID(c)
	if !ok {
		return
	}

	var req NoteRequest
	_ = c.ShouldBindJSON(&req)

	s, err := h.completeUC.Execute(c.Request.Context(), coachID, id, req.Note)
	if err != nil {
		writeSeanceError(c, err)
		return
	}

	c.JSON(200, s)
}

// ======================================================
// MARK ABSENT
// ======================================================

func (h *SeanceHandler) MarkAbsent(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := seanceID(c)
	if !ok {
		return
	}

	s, err := h.markAbsentUC.Execute(c.Request.Context(), coachID, id)
	if err != nil {
		writeSeanceError(c, err)
		return
	}

	c.JSON(200, s)
}

// ======================================================
// EDIT NOTE
// ======================================================

func (h *SeanceHandler) EditNote(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := seanceID(c)
	if !ok {
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid note payload.")
		return
	}

	s, err := h.editNoteUC.Execute(c.Request.Context(), coachID, id, req.Note)
	if err != nil {
		writeSeanceError(c, err)
		return
	}

	c.JSON(200, s)
}

// ======================================================
// HELPERS
// ======================================================

func seanceID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_seance_id", "Invalid seance id.")
		return 0, false
	}
	return uint(id), true
}

// writeSeanceError maps business codes onto HTTP responses. Everything here
// is recoverable: the caller re-presents the form or redirects.
func writeSeanceError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "past_slot"):
		httperr.BadRequest(c, "past_slot", "Cannot book a slot in the past.")
	case httperr.IsBusiness(err, "weekend_unavailable"):
		httperr.BadRequest(c, "weekend_unavailable", "Seances are not available on weekends.")
	case httperr.IsBusiness(err, "slot_too_close"):
		httperr.BadRequest(c, "slot_too_close", "This slot is too close to another seance.")
	case httperr.IsBusiness(err, "outside_service_hours"):
		httperr.BadRequest(c, "outside_service_hours", "Seances run between 08:00 and 20:00.")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_too_close", "This slot is too close to another seance.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Invalid start time.")
	case httperr.IsBusiness(err, "invalid_subject"):
		httperr.BadRequest(c, "invalid_subject", "Unknown seance subject.")
	case httperr.IsBusiness(err, "empty_note"):
		httperr.BadRequest(c, "empty_note", "The note cannot be empty.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "This seance has already been resolved.")
	case httperr.IsBusiness(err, "unauthorized_actor"):
		httperr.Forbidden(c, "unauthorized_actor", "You are not a party to this seance.")
	case httperr.IsBusiness(err, "seance_not_found"):
		httperr.NotFound(c, "seance_not_found", "Seance not found.")
	case httperr.IsBusiness(err, "coach_not_found"):
		httperr.NotFound(c, "coach_not_found", "Coach not found.")
	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}
