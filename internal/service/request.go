package service

import (
	"context"
	"fmt"

	"campus-teamup/internal/model"
	"campus-teamup/internal/repository"
)

type requestStore interface {
	CreateRequest(ctx context.Context, params repository.CreateRequestParams) (*model.ConnectionRequest, error)
	GetRequest(ctx context.Context, id string) (*model.ConnectionRequest, error)
	ListBySender(ctx context.Context, uid string, limit int) ([]model.ConnectionRequest, error)
	ListByRecipient(ctx context.Context, uid string, limit int) ([]model.ConnectionRequest, error)
	UpdateRequestStatus(ctx context.Context, id string, status model.RequestStatus) (*model.ConnectionRequest, error)
	CreateConnection(ctx context.Context, requestID, uidA, uidB string) (*model.Connection, error)
}

type cardGetter interface {
	GetCard(ctx context.Context, id string) (*model.IntentCard, error)
}

const requestListLimit = 50

// RequestService owns the connection-request lifecycle: create as pending,
// recipient-only accept/reject, and connection materialization on accept.
type RequestService struct {
	requests requestStore
	cards    cardGetter
}

// NewRequestService creates a new request service.
func NewRequestService(requests requestStore, cards cardGetter) *RequestService {
	return &RequestService{requests: requests, cards: cards}
}

// CreateRequest sends a connection request from one of the sender's cards to
// another user's public card.
func (s *RequestService) CreateRequest(ctx context.Context, sender model.Profile, fromCardID, toCardID string) (*model.ConnectionRequest, error) {
	fromCard, err := s.cards.GetCard(ctx, fromCardID)
	if err != nil {
		return nil, err
	}
	if fromCard.OwnerUID != sender.UID {
		return nil, ErrForbidden
	}

	toCard, err := s.cards.GetCard(ctx, toCardID)
	if err != nil {
		return nil, err
	}
	if !toCard.IsPublic {
		return nil, repository.ErrNotFound
	}
	if toCard.OwnerUID == sender.UID {
		return nil, &ValidationError{Msg: "cannot send a request to your own card"}
	}

	return s.requests.CreateRequest(ctx, repository.CreateRequestParams{
		From: model.Profile{
			UID:      sender.UID,
			Name:     sender.Name,
			PhotoURL: sender.PhotoURL,
		},
		To: model.Profile{
			UID:      toCard.OwnerUID,
			Name:     toCard.OwnerName,
			PhotoURL: toCard.OwnerPhotoURL,
		},
		FromIntentCardID: fromCardID,
		ToIntentCardID:   toCardID,
	})
}

// ListIncoming returns requests addressed to the viewer, newest first.
func (s *RequestService) ListIncoming(ctx context.Context, viewerUID string) ([]model.ConnectionRequest, error) {
	return s.requests.ListByRecipient(ctx, viewerUID, requestListLimit)
}

// ListOutgoing returns requests sent by the viewer, newest first.
func (s *RequestService) ListOutgoing(ctx context.Context, viewerUID string) ([]model.ConnectionRequest, error) {
	return s.requests.ListBySender(ctx, viewerUID, requestListLimit)
}

// Respond lets the recipient accept or reject a pending request. Accepting
// also materializes the connection record.
func (s *RequestService) Respond(ctx context.Context, viewerUID, requestID string, status model.RequestStatus) (*model.ConnectionRequest, error) {
	if status != model.RequestAccepted && status != model.RequestRejected {
		return nil, &ValidationError{Msg: fmt.Sprintf("status must be %q or %q", model.RequestAccepted, model.RequestRejected)}
	}

	req, err := s.requests.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ToUID != viewerUID {
		return nil, ErrForbidden
	}
	if req.Status != model.RequestPending {
		return nil, &ValidationError{Msg: fmt.Sprintf("request is already %s", req.Status)}
	}

	updated, err := s.requests.UpdateRequestStatus(ctx, requestID, status)
	if err != nil {
		return nil, err
	}

	if status == model.RequestAccepted {
		if _, err := s.requests.CreateConnection(ctx, requestID, req.FromUID, req.ToUID); err != nil {
			return nil, fmt.Errorf("materialize connection: %w", err)
		}
	}

	return updated, nil
}
