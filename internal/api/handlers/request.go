package handlers

import (
	"net/http"

	"campus-teamup/internal/api"
	"campus-teamup/internal/auth"
	"campus-teamup/internal/model"
	"campus-teamup/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RequestHandler handles connection-request HTTP requests
type RequestHandler struct {
	requestService *service.RequestService
	validator      *validator.Validate
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *service.RequestService) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
		validator:      validator.New(),
	}
}

// CreateRequestRequest represents the request to send a connection request
type CreateRequestRequest struct {
	FromIntentCardID string `json:"from_intent_card_id" validate:"required,uuid"`
	ToIntentCardID   string `json:"to_intent_card_id" validate:"required,uuid"`
}

// UpdateRequestStatusRequest represents the recipient's response
type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	sender, ok := auth.CurrentUser(c)
	if !ok {
		api.SendError(c, http.StatusUnauthorized, api.ErrCodeUnauthorized, "missing identity", "")
		return
	}

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	created, err := h.requestService.CreateRequest(c.Request.Context(), sender, req.FromIntentCardID, req.ToIntentCardID)
	if err != nil {
		handleServiceError(c, err, "request")
		return
	}

	api.SendSuccess(c, http.StatusCreated, created)
}

// ListRequests handles GET /requests?direction=incoming|outgoing
func (h *RequestHandler) ListRequests(c *gin.Context) {
	viewer, ok := auth.CurrentUser(c)
	if !ok {
		api.SendError(c, http.StatusUnauthorized, api.ErrCodeUnauthorized, "missing identity", "")
		return
	}

	direction := c.DefaultQuery("direction", "incoming")

	var (
		requests []model.ConnectionRequest
		err      error
	)
	switch direction {
	case "incoming":
		requests, err = h.requestService.ListIncoming(c.Request.Context(), viewer.UID)
	case "outgoing":
		requests, err = h.requestService.ListOutgoing(c.Request.Context(), viewer.UID)
	default:
		api.SendBadRequest(c, "direction must be incoming or outgoing")
		return
	}
	if err != nil {
		handleServiceError(c, err, "request")
		return
	}

	api.SendSuccess(c, http.StatusOK, requests)
}

// UpdateRequestStatus handles PATCH /requests/:id/status
func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	viewer, ok := auth.CurrentUser(c)
	if !ok {
		api.SendError(c, http.StatusUnauthorized, api.ErrCodeUnauthorized, "missing identity", "")
		return
	}

	var req UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	updated, err := h.requestService.Respond(c.Request.Context(), viewer.UID, c.Param("id"), model.RequestStatus(req.Status))
	if err != nil {
		handleServiceError(c, err, "request")
		return
	}

	api.SendSuccess(c, http.StatusOK, updated)
}
