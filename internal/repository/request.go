package repository

import (
	"context"
	"errors"
	"fmt"

	"campus-teamup/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const requestColumns = `id::text, from_uid, from_name, from_photo_url,
       to_uid, to_name, to_photo_url,
       from_intent_card_id::text, to_intent_card_id::text,
       status, created_at, updated_at`

// RequestRepository persists connection requests and the connections
// materialized from accepted ones.
type RequestRepository struct {
	pool *pgxpool.Pool
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

// CreateRequestParams carries the identities needed to build a request.
// Status always defaults to pending.
type CreateRequestParams struct {
	From             model.Profile
	To               model.Profile
	FromIntentCardID string
	ToIntentCardID   string
}

// CreateRequest inserts a new pending connection request.
func (r *RequestRepository) CreateRequest(ctx context.Context, params CreateRequestParams) (*model.ConnectionRequest, error) {
	id := uuid.New().String()
	row := r.pool.QueryRow(ctx,
		`INSERT INTO connection_requests (
		   id, from_uid, from_name, from_photo_url,
		   to_uid, to_name, to_photo_url,
		   from_intent_card_id, to_intent_card_id, status
		 ) VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8::uuid, $9::uuid, 'pending')
		 RETURNING `+requestColumns,
		id, params.From.UID, params.From.Name, params.From.PhotoURL,
		params.To.UID, params.To.Name, params.To.PhotoURL,
		params.FromIntentCardID, params.ToIntentCardID,
	)

	req, err := scanRequest(row)
	if err != nil {
		return nil, fmt.Errorf("createRequest: %w", err)
	}
	return req, nil
}

// GetRequest retrieves a request by ID
func (r *RequestRepository) GetRequest(ctx context.Context, id string) (*model.ConnectionRequest, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+requestColumns+` FROM connection_requests WHERE id = $1::uuid`, id)

	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getRequest: %w", err)
	}
	return req, nil
}

// ListBySender returns requests sent by the given user, newest first.
func (r *RequestRepository) ListBySender(ctx context.Context, uid string, limit int) ([]model.ConnectionRequest, error) {
	return r.list(ctx, `from_uid`, uid, limit)
}

// ListByRecipient returns requests addressed to the given user, newest first.
func (r *RequestRepository) ListByRecipient(ctx context.Context, uid string, limit int) ([]model.ConnectionRequest, error) {
	return r.list(ctx, `to_uid`, uid, limit)
}

func (r *RequestRepository) list(ctx context.Context, column, uid string, limit int) ([]model.ConnectionRequest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+requestColumns+` FROM connection_requests
		 WHERE `+column+` = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		uid, limit)
	if err != nil {
		return nil, fmt.Errorf("listRequests query: %w", err)
	}
	defer rows.Close()

	reqs := make([]model.ConnectionRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		reqs = append(reqs, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reqs, nil
}

// UpdateRequestStatus transitions a request to the given status.
func (r *RequestRepository) UpdateRequestStatus(ctx context.Context, id string, status model.RequestStatus) (*model.ConnectionRequest, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE connection_requests
		 SET status = $2, updated_at = NOW()
		 WHERE id = $1::uuid
		 RETURNING `+requestColumns,
		id, status)

	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updateRequestStatus: %w", err)
	}
	return req, nil
}

// CreateConnection materializes the connection record for an accepted
// request. The uid pair is stored in lexicographic order.
func (r *RequestRepository) CreateConnection(ctx context.Context, requestID, uidA, uidB string) (*model.Connection, error) {
	if uidB < uidA {
		uidA, uidB = uidB, uidA
	}

	id := uuid.New().String()
	var conn model.Connection
	err := r.pool.QueryRow(ctx,
		`INSERT INTO connections (id, uid_a, uid_b, request_id)
		 VALUES ($1::uuid, $2, $3, $4::uuid)
		 RETURNING id::text, uid_a, uid_b, request_id::text, created_at`,
		id, uidA, uidB, requestID,
	).Scan(&conn.ID, &conn.UIDs[0], &conn.UIDs[1], &conn.RequestID, &conn.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("createConnection: %w", err)
	}
	return &conn, nil
}

func scanRequest(row pgx.Row) (*model.ConnectionRequest, error) {
	var req model.ConnectionRequest
	err := row.Scan(
		&req.ID, &req.FromUID, &req.FromName, &req.FromPhotoURL,
		&req.ToUID, &req.ToName, &req.ToPhotoURL,
		&req.FromIntentCardID, &req.ToIntentCardID,
		&req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
