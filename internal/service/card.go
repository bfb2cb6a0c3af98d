package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"campus-teamup/internal/logger"
	"campus-teamup/internal/matching"
	"campus-teamup/internal/model"
	"campus-teamup/internal/repository"
)

const maxShortGoalLength = 140

type cardStore interface {
	CreateCard(ctx context.Context, params repository.CreateCardParams) (*model.IntentCard, error)
	GetCard(ctx context.Context, id string) (*model.IntentCard, error)
	UpdateCard(ctx context.Context, id string, params repository.UpdateCardParams) (*model.IntentCard, error)
	DeleteCard(ctx context.Context, id string) error
	ListOwnedCards(ctx context.Context, ownerUID string, limit int) ([]model.IntentCard, error)
}

type poolInvalidator interface {
	Invalidate(ctx context.Context) error
}

// CardInput carries the user-editable card fields.
type CardInput struct {
	EventType       model.EventType
	EventName       string
	ShortGoal       string
	LookingForRoles []string
	RequiredSkills  []string
	Availability    model.Availability
	HostelStatus    model.HostelStatus
	CommitmentLevel model.CommitmentLevel
	IsPublic        bool
}

// CardService owns intent-card CRUD: tag normalization, availability
// validation and ownership checks happen here, before storage.
type CardService struct {
	cards cardStore
	cache poolInvalidator // nil when the match cache is disabled
}

// NewCardService creates a new card service. cache may be nil.
func NewCardService(cards cardStore, cache poolInvalidator) *CardService {
	return &CardService{cards: cards, cache: cache}
}

// CreateCard validates and stores a new card for the given owner.
func (s *CardService) CreateCard(ctx context.Context, owner model.Profile, input CardInput) (*model.IntentCard, error) {
	if err := validateCardInput(&input); err != nil {
		return nil, err
	}

	card, err := s.cards.CreateCard(ctx, repository.CreateCardParams{
		Owner:           owner,
		EventType:       input.EventType,
		EventName:       input.EventName,
		ShortGoal:       input.ShortGoal,
		LookingForRoles: input.LookingForRoles,
		RequiredSkills:  input.RequiredSkills,
		Availability:    input.Availability,
		HostelStatus:    input.HostelStatus,
		CommitmentLevel: input.CommitmentLevel,
		IsPublic:        input.IsPublic,
	})
	if err != nil {
		return nil, err
	}

	s.invalidatePool(ctx)
	return card, nil
}

// GetCard returns a card if the viewer may see it: owners see their own
// cards, everyone else only public ones.
func (s *CardService) GetCard(ctx context.Context, viewerUID, id string) (*model.IntentCard, error) {
	card, err := s.cards.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}
	if card.OwnerUID != viewerUID && !card.IsPublic {
		return nil, repository.ErrNotFound
	}
	return card, nil
}

// ListOwnedCards returns the viewer's own cards.
func (s *CardService) ListOwnedCards(ctx context.Context, viewerUID string, limit int) ([]model.IntentCard, error) {
	return s.cards.ListOwnedCards(ctx, viewerUID, limit)
}

// UpdateCard validates and stores changes to a card the viewer owns.
func (s *CardService) UpdateCard(ctx context.Context, viewerUID, id string, input CardInput) (*model.IntentCard, error) {
	existing, err := s.cards.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.OwnerUID != viewerUID {
		return nil, ErrForbidden
	}

	if err := validateCardInput(&input); err != nil {
		return nil, err
	}

	card, err := s.cards.UpdateCard(ctx, id, repository.UpdateCardParams{
		EventType:       input.EventType,
		EventName:       input.EventName,
		ShortGoal:       input.ShortGoal,
		LookingForRoles: input.LookingForRoles,
		RequiredSkills:  input.RequiredSkills,
		Availability:    input.Availability,
		HostelStatus:    input.HostelStatus,
		CommitmentLevel: input.CommitmentLevel,
		IsPublic:        input.IsPublic,
	})
	if err != nil {
		return nil, err
	}

	s.invalidatePool(ctx)
	return card, nil
}

// DeleteCard removes a card the viewer owns.
func (s *CardService) DeleteCard(ctx context.Context, viewerUID, id string) error {
	existing, err := s.cards.GetCard(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerUID != viewerUID {
		return ErrForbidden
	}

	if err := s.cards.DeleteCard(ctx, id); err != nil {
		return err
	}

	s.invalidatePool(ctx)
	return nil
}

// validateCardInput normalizes tags in place and checks the data-model
// invariants the storage layer assumes.
func validateCardInput(input *CardInput) error {
	input.LookingForRoles = matching.NormalizeTagSet(input.LookingForRoles)
	input.RequiredSkills = matching.NormalizeTagSet(input.RequiredSkills)

	switch input.EventType {
	case model.EventHackathon, model.EventSports, model.EventProject, model.EventOther:
	default:
		return &ValidationError{Msg: fmt.Sprintf("unknown event type %q", input.EventType)}
	}

	switch input.HostelStatus {
	case model.HostelHosteler, model.HostelDayScholar:
	default:
		return &ValidationError{Msg: fmt.Sprintf("unknown hostel status %q", input.HostelStatus)}
	}

	if input.CommitmentLevel.Index() == -1 {
		return &ValidationError{Msg: fmt.Sprintf("unknown commitment level %q", input.CommitmentLevel)}
	}

	if input.EventName == "" {
		return &ValidationError{Msg: "event name is required"}
	}

	if utf8.RuneCountInString(input.ShortGoal) > maxShortGoalLength {
		return &ValidationError{Msg: fmt.Sprintf("short goal must be at most %d characters", maxShortGoalLength)}
	}

	start, okStart := matching.ParseClockTime(input.Availability.StartTime)
	end, okEnd := matching.ParseClockTime(input.Availability.EndTime)
	if !okStart || !okEnd {
		return &ValidationError{Msg: "availability times must be in 24-hour HH:MM format"}
	}
	if end <= start {
		return &ValidationError{Msg: "availability end time must be later than start time"}
	}

	return nil
}

func (s *CardService) invalidatePool(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate public card cache")
	}
}
