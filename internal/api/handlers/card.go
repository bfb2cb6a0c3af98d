package handlers

import (
	"errors"
	"net/http"

	"campus-teamup/internal/api"
	"campus-teamup/internal/auth"
	"campus-teamup/internal/model"
	"campus-teamup/internal/repository"
	"campus-teamup/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CardHandler handles intent-card HTTP requests
type CardHandler struct {
	cardService *service.CardService
	validator   *validator.Validate
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardService *service.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
		validator:   validator.New(),
	}
}

// AvailabilityRequest represents an availability window in requests
type AvailabilityRequest struct {
	Weekdays  bool   `json:"weekdays"`
	Weekends  bool   `json:"weekends"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// CardRequest represents the request to create or update a card
type CardRequest struct {
	EventType       string              `json:"event_type" validate:"required,oneof=Hackathon Sports Project Other"`
	EventName       string              `json:"event_name" validate:"required,max=255"`
	ShortGoal       string              `json:"short_goal" validate:"max=140"`
	LookingForRoles []string            `json:"looking_for_roles" validate:"max=20,dive,max=50"`
	RequiredSkills  []string            `json:"required_skills" validate:"max=30,dive,max=50"`
	Availability    AvailabilityRequest `json:"availability" validate:"required"`
	HostelStatus    string              `json:"hostel_status" validate:"required,oneof=hosteler day-scholar"`
	CommitmentLevel string              `json:"commitment_level" validate:"required,oneof=casual serious win"`
	IsPublic        bool                `json:"is_public"`
}

func (r CardRequest) toInput() service.CardInput {
	return service.CardInput{
		EventType:       model.EventType(r.EventType),
		EventName:       r.EventName,
		ShortGoal:       r.ShortGoal,
		LookingForRoles: r.LookingForRoles,
		RequiredSkills:  r.RequiredSkills,
		Availability: model.Availability{
			Weekdays:  r.Availability.Weekdays,
			Weekends:  r.Availability.Weekends,
			StartTime: r.Availability.StartTime,
			EndTime:   r.Availability.EndTime,
		},
		HostelStatus:    model.HostelStatus(r.HostelStatus),
		CommitmentLevel: model.CommitmentLevel(r.CommitmentLevel),
		IsPublic:        r.IsPublic,
	}
}

// CreateCard handles POST /cards
func (h *CardHandler) CreateCard(c *gin.Context) {
	owner, ok := auth.CurrentUser(c)
	if !ok {
		api.SendError(c, http.StatusUnauthorized, api.ErrCodeUnauthorized, "missing identity", "")
		return
	}

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), owner, req.toInput())
	if err != nil {
		handleServiceError(c, err, "card")
		return
	}

	api.SendSuccess(c, http.StatusCreated, card)
}

// ListCards handles GET /cards (the viewer's own cards)
func (h *CardHandler) ListCards(c *gin.Context) {
	viewer, ok := auth.CurrentUser(c)
	if !ok {
		api.SendError(c, http.StatusUnauthorized, api.ErrCodeUnauthorized, "missing identity", "")
		return
	}

	cards, err := h.cardService.ListOwnedCards(c.Request.Context(), viewer.UID, 50)
	if err != nil {
		handleServiceError(c, err, "card")
		return
	}

	api.SendSuccess(c, http.StatusOK, cards)
}

// GetCard handles GET /cards/:id
func (h *CardHandler) GetCard(c *gin.Context) {
	viewer, ok := auth.CurrentUser(c)
	if !ok {
		api.SendError(c, http.StatusUnauthorized, api.ErrCodeUnauthorized, "missing identity", "")
		return
	}

	card, err := h.cardService.GetCard(c.Request.Context(), viewer.UID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "card")
		return
	}

	api.SendSuccess(c, http.StatusOK, card)
}

// UpdateCard handles PUT /cards/:id
func (h *CardHandler) UpdateCard(c *gin.Context) {
	viewer, ok := auth.CurrentUser(c)
	if !ok {
		api.SendError(c, http.StatusUnauthorized, api.ErrCodeUnauthorized, "missing identity", "")
		return
	}

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), viewer.UID, c.Param("id"), req.toInput())
	if err != nil {
		handleServiceError(c, err, "card")
		return
	}

	api.SendSuccess(c, http.StatusOK, card)
}

// DeleteCard handles DELETE /cards/:id
func (h *CardHandler) DeleteCard(c *gin.Context) {
	viewer, ok := auth.CurrentUser(c)
	if !ok {
		api.SendError(c, http.StatusUnauthorized, api.ErrCodeUnauthorized, "missing identity", "")
		return
	}

	if err := h.cardService.DeleteCard(c.Request.Context(), viewer.UID, c.Param("id")); err != nil {
		handleServiceError(c, err, "card")
		return
	}

	api.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// handleServiceError maps service/repository errors onto API responses.
func handleServiceError(c *gin.Context, err error, resource string) {
	var validationErr *service.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		api.SendNotFound(c, resource)
	case errors.Is(err, service.ErrForbidden):
		api.SendForbidden(c, "you do not own this "+resource)
	case errors.As(err, &validationErr):
		api.SendValidationError(c, validationErr.Msg, "")
	default:
		api.SendInternalError(c, err.Error())
	}
}
