package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/benjsant/coach-scheduler/internal/domain/seance"
	"github.com/benjsant/coach-scheduler/internal/middleware"
)

type ClientHandler struct {
	repo domain.Repository
}

func NewClientHandler(repo domain.Repository) *ClientHandler {
	return &ClientHandler{repo: repo}
}

// List returns the clients a coach has seances with.
func (h *ClientHandler) List(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	clients, err := h.repo.ListClientsForCoach(c.Request.Context(), coachID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_clients",
		})
		return
	}

	type clientDTO struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	out := make([]clientDTO, 0, len(clients))
	for _, cl := range clients {
		out = append(out, clientDTO{ID: cl.ID, Name: cl.Name, Email: cl.Email})
	}

	c.JSON(http.StatusOK, out)
}
