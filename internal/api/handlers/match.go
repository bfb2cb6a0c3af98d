package handlers

import (
	"net/http"
	"strconv"

	"campus-teamup/internal/api"
	"campus-teamup/internal/auth"
	"campus-teamup/internal/service"

	"github.com/gin-gonic/gin"
)

// MatchHandler handles match-ranking HTTP requests
type MatchHandler struct {
	matchService *service.MatchService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService *service.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// ListMatches handles GET /cards/:id/matches?limit=
func (h *MatchHandler) ListMatches(c *gin.Context) {
	viewer, ok := auth.CurrentUser(c)
	if !ok {
		api.SendError(c, http.StatusUnauthorized, api.ErrCodeUnauthorized, "missing identity", "")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			api.SendBadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	matches, err := h.matchService.TopMatches(c.Request.Context(), viewer.UID, c.Param("id"), limit)
	if err != nil {
		handleServiceError(c, err, "card")
		return
	}

	api.SendSuccess(c, http.StatusOK, matches)
}
