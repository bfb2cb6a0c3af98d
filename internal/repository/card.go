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

const cardColumns = `id::text, owner_uid, owner_name, owner_email, owner_photo_url,
       event_type, event_name, short_goal, looking_for_roles, required_skills,
       weekdays, weekends, start_time, end_time, hostel_status, commitment_level,
       is_public, created_at, updated_at`

// CardRepository persists intent cards.
type CardRepository struct {
	pool *pgxpool.Pool
}

// NewCardRepository creates a new card repository
func NewCardRepository(pool *pgxpool.Pool) *CardRepository {
	return &CardRepository{pool: pool}
}

// CreateCardParams carries the owner-independent card fields for creation.
type CreateCardParams struct {
	Owner           model.Profile
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

// CreateCard inserts a new intent card and returns the stored row.
func (r *CardRepository) CreateCard(ctx context.Context, params CreateCardParams) (*model.IntentCard, error) {
	id := uuid.New().String()
	row := r.pool.QueryRow(ctx,
		`INSERT INTO intent_cards (
		   id, owner_uid, owner_name, owner_email, owner_photo_url,
		   event_type, event_name, short_goal, looking_for_roles, required_skills,
		   weekdays, weekends, start_time, end_time, hostel_status, commitment_level,
		   is_public
		 ) VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		 RETURNING `+cardColumns,
		id, params.Owner.UID, params.Owner.Name, params.Owner.Email, params.Owner.PhotoURL,
		params.EventType, params.EventName, params.ShortGoal, params.LookingForRoles, params.RequiredSkills,
		params.Availability.Weekdays, params.Availability.Weekends,
		params.Availability.StartTime, params.Availability.EndTime,
		params.HostelStatus, params.CommitmentLevel, params.IsPublic,
	)

	card, err := scanCard(row)
	if err != nil {
		return nil, fmt.Errorf("createCard: %w", err)
	}
	return card, nil
}

// GetCard retrieves a card by ID
func (r *CardRepository) GetCard(ctx context.Context, id string) (*model.IntentCard, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM intent_cards WHERE id = $1::uuid`, id)

	card, err := scanCard(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getCard: %w", err)
	}
	return card, nil
}

// UpdateCardParams carries the mutable card fields.
type UpdateCardParams struct {
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

// UpdateCard updates a card's mutable fields and returns the stored row.
// Owner identity fields never change here.
func (r *CardRepository) UpdateCard(ctx context.Context, id string, params UpdateCardParams) (*model.IntentCard, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE intent_cards SET
		   event_type = $2, event_name = $3, short_goal = $4,
		   looking_for_roles = $5, required_skills = $6,
		   weekdays = $7, weekends = $8, start_time = $9, end_time = $10,
		   hostel_status = $11, commitment_level = $12, is_public = $13,
		   updated_at = NOW()
		 WHERE id = $1::uuid
		 RETURNING `+cardColumns,
		id, params.EventType, params.EventName, params.ShortGoal,
		params.LookingForRoles, params.RequiredSkills,
		params.Availability.Weekdays, params.Availability.Weekends,
		params.Availability.StartTime, params.Availability.EndTime,
		params.HostelStatus, params.CommitmentLevel, params.IsPublic,
	)

	card, err := scanCard(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updateCard: %w", err)
	}
	return card, nil
}

// DeleteCard removes a card by ID
func (r *CardRepository) DeleteCard(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM intent_cards WHERE id = $1::uuid`, id)
	if err != nil {
		return fmt.Errorf("deleteCard: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListOwnedCards returns the given user's cards, newest first.
func (r *CardRepository) ListOwnedCards(ctx context.Context, ownerUID string, limit int) ([]model.IntentCard, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cardColumns+` FROM intent_cards
		 WHERE owner_uid = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		ownerUID, limit)
	if err != nil {
		return nil, fmt.Errorf("listOwnedCards query: %w", err)
	}
	defer rows.Close()

	return collectCards(rows)
}

// ListPublicCards returns public cards owned by someone other than
// excludeUID. These are the only matchable candidates.
func (r *CardRepository) ListPublicCards(ctx context.Context, excludeUID string, limit int) ([]model.IntentCard, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cardColumns+` FROM intent_cards
		 WHERE is_public = TRUE AND owner_uid <> $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		excludeUID, limit)
	if err != nil {
		return nil, fmt.Errorf("listPublicCards query: %w", err)
	}
	defer rows.Close()

	return collectCards(rows)
}

func scanCard(row pgx.Row) (*model.IntentCard, error) {
	var c model.IntentCard
	err := row.Scan(
		&c.ID, &c.OwnerUID, &c.OwnerName, &c.OwnerEmail, &c.OwnerPhotoURL,
		&c.EventType, &c.EventName, &c.ShortGoal, &c.LookingForRoles, &c.RequiredSkills,
		&c.Availability.Weekdays, &c.Availability.Weekends,
		&c.Availability.StartTime, &c.Availability.EndTime,
		&c.HostelStatus, &c.CommitmentLevel,
		&c.IsPublic, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCards(rows pgx.Rows) ([]model.IntentCard, error) {
	cards := make([]model.IntentCard, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}
