package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"campus-teamup/internal/model"
	"campus-teamup/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestStore struct {
	requests    map[string]model.ConnectionRequest
	connections []model.Connection
	nextID      int
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{requests: make(map[string]model.ConnectionRequest)}
}

func (f *fakeRequestStore) CreateRequest(_ context.Context, params repository.CreateRequestParams) (*model.ConnectionRequest, error) {
	f.nextID++
	req := model.ConnectionRequest{
		ID:               fmt.Sprintf("req-%d", f.nextID),
		FromUID:          params.From.UID,
		FromName:         params.From.Name,
		FromPhotoURL:     params.From.PhotoURL,
		ToUID:            params.To.UID,
		ToName:           params.To.Name,
		ToPhotoURL:       params.To.PhotoURL,
		FromIntentCardID: params.FromIntentCardID,
		ToIntentCardID:   params.ToIntentCardID,
		Status:           model.RequestPending,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	f.requests[req.ID] = req
	return &req, nil
}

func (f *fakeRequestStore) GetRequest(_ context.Context, id string) (*model.ConnectionRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &req, nil
}

func (f *fakeRequestStore) ListBySender(_ context.Context, uid string, _ int) ([]model.ConnectionRequest, error) {
	out := make([]model.ConnectionRequest, 0)
	for _, req := range f.requests {
		if req.FromUID == uid {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeRequestStore) ListByRecipient(_ context.Context, uid string, _ int) ([]model.ConnectionRequest, error) {
	out := make([]model.ConnectionRequest, 0)
	for _, req := range f.requests {
		if req.ToUID == uid {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeRequestStore) UpdateRequestStatus(_ context.Context, id string, status model.RequestStatus) (*model.ConnectionRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	req.Status = status
	f.requests[id] = req
	return &req, nil
}

func (f *fakeRequestStore) CreateConnection(_ context.Context, requestID, uidA, uidB string) (*model.Connection, error) {
	if uidB < uidA {
		uidA, uidB = uidB, uidA
	}
	conn := model.Connection{
		ID:        requestID + "-conn",
		UIDs:      [2]string{uidA, uidB},
		RequestID: requestID,
		CreatedAt: time.Now(),
	}
	f.connections = append(f.connections, conn)
	return &conn, nil
}

func requestTestCards() *fakeCardPool {
	photo := "https://example.com/bob.png"
	return &fakeCardPool{cards: map[string]model.IntentCard{
		"mine": {
			ID: "mine", OwnerUID: "alice", OwnerName: "Alice", IsPublic: true,
		},
		"theirs": {
			ID: "theirs", OwnerUID: "bob", OwnerName: "Bob", OwnerPhotoURL: &photo, IsPublic: true,
		},
		"private": {
			ID: "private", OwnerUID: "bob", OwnerName: "Bob", IsPublic: false,
		},
	}}
}

func TestCreateRequest(t *testing.T) {
	store := newFakeRequestStore()
	svc := NewRequestService(store, requestTestCards())

	sender := model.Profile{UID: "alice", Name: "Alice"}
	req, err := svc.CreateRequest(context.Background(), sender, "mine", "theirs")
	require.NoError(t, err)

	assert.Equal(t, model.RequestPending, req.Status)
	assert.Equal(t, "alice", req.FromUID)
	assert.Equal(t, "bob", req.ToUID)
	assert.Equal(t, "Bob", req.ToName)
	require.NotNil(t, req.ToPhotoURL)
	assert.Equal(t, "https://example.com/bob.png", *req.ToPhotoURL)
}

func TestCreateRequestRequiresCardOwnership(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore(), requestTestCards())

	sender := model.Profile{UID: "mallory", Name: "Mallory"}
	_, err := svc.CreateRequest(context.Background(), sender, "mine", "theirs")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateRequestRejectsOwnCard(t *testing.T) {
	cards := requestTestCards()
	secondCard := model.IntentCard{ID: "mine-2", OwnerUID: "alice", OwnerName: "Alice", IsPublic: true}
	cards.cards["mine-2"] = secondCard

	svc := NewRequestService(newFakeRequestStore(), cards)

	sender := model.Profile{UID: "alice", Name: "Alice"}
	_, err := svc.CreateRequest(context.Background(), sender, "mine", "mine-2")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateRequestHidesPrivateCards(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore(), requestTestCards())

	sender := model.Profile{UID: "alice", Name: "Alice"}
	_, err := svc.CreateRequest(context.Background(), sender, "mine", "private")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRespondAcceptCreatesConnection(t *testing.T) {
	store := newFakeRequestStore()
	svc := NewRequestService(store, requestTestCards())

	sender := model.Profile{UID: "alice", Name: "Alice"}
	req, err := svc.CreateRequest(context.Background(), sender, "mine", "theirs")
	require.NoError(t, err)

	updated, err := svc.Respond(context.Background(), "bob", req.ID, model.RequestAccepted)
	require.NoError(t, err)
	assert.Equal(t, model.RequestAccepted, updated.Status)

	require.Len(t, store.connections, 1)
	assert.Equal(t, [2]string{"alice", "bob"}, store.connections[0].UIDs)
	assert.Equal(t, req.ID, store.connections[0].RequestID)
}

func TestRespondRejectSkipsConnection(t *testing.T) {
	store := newFakeRequestStore()
	svc := NewRequestService(store, requestTestCards())

	sender := model.Profile{UID: "alice", Name: "Alice"}
	req, err := svc.CreateRequest(context.Background(), sender, "mine", "theirs")
	require.NoError(t, err)

	updated, err := svc.Respond(context.Background(), "bob", req.ID, model.RequestRejected)
	require.NoError(t, err)
	assert.Equal(t, model.RequestRejected, updated.Status)
	assert.Empty(t, store.connections)
}

func TestRespondRecipientOnly(t *testing.T) {
	store := newFakeRequestStore()
	svc := NewRequestService(store, requestTestCards())

	sender := model.Profile{UID: "alice", Name: "Alice"}
	req, err := svc.CreateRequest(context.Background(), sender, "mine", "theirs")
	require.NoError(t, err)

	// The sender cannot accept their own request.
	_, err = svc.Respond(context.Background(), "alice", req.ID, model.RequestAccepted)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRespondPendingOnly(t *testing.T) {
	store := newFakeRequestStore()
	svc := NewRequestService(store, requestTestCards())

	sender := model.Profile{UID: "alice", Name: "Alice"}
	req, err := svc.CreateRequest(context.Background(), sender, "mine", "theirs")
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), "bob", req.ID, model.RequestRejected)
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), "bob", req.ID, model.RequestAccepted)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestRespondRejectsUnknownStatus(t *testing.T) {
	svc := NewRequestService(newFakeRequestStore(), requestTestCards())

	_, err := svc.Respond(context.Background(), "bob", "whatever", model.RequestPending)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
