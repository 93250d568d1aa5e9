package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goprotex/Disaster-Response/internal/models"
)

var (
	ErrRequestNotFound = errors.New("request not found")
	// ErrRequestNotOpen means the open-only claim transition was refused.
	ErrRequestNotOpen = errors.New("request is no longer open")
)

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

const requestColumns = `
	id, title, description, category, urgency, status,
	contact_name, contact_phone, is_contact_shared,
	photo_urls, exif_data, gps_lat, gps_lng, photo_taken_time,
	created_by, claimed_by, created_at, updated_at
`

func (r *RequestRepository) Create(ctx context.Context, req models.Request) error {
	const query = `
		INSERT INTO requests (
			id, title, description, category, urgency, status,
			contact_name, contact_phone, is_contact_shared,
			photo_urls, exif_data, gps_lat, gps_lng, photo_taken_time,
			created_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9,
			$10, $11, $12, $13, $14,
			$15, NOW(), NOW()
		)
	`

	exifJSON, err := json.Marshal(req.ExifData)
	if err != nil {
		return fmt.Errorf("encode exif data: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		req.ID,
		req.Title,
		req.Description,
		req.Category,
		req.Urgency,
		req.Status,
		req.ContactName,
		req.ContactPhone,
		req.IsContactShared,
		req.PhotoURLs,
		string(exifJSON),
		req.GPSLat,
		req.GPSLng,
		req.PhotoTakenTime,
		req.CreatedBy,
	)
	return err
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (models.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Request{}, ErrRequestNotFound
		}
		return models.Request{}, err
	}
	return req, nil
}

// RequestFilter narrows List; nil fields match everything.
type RequestFilter struct {
	Category *models.Category
	Urgency  *models.Urgency
	Status   *models.RequestStatus
	Limit    int
	Offset   int
}

func (r *RequestRepository) List(ctx context.Context, filter RequestFilter) ([]models.Request, error) {
	var (
		conditions []string
		args       []any
	)

	addCondition := func(column string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.Category != nil {
		addCondition("category", *filter.Category)
	}
	if filter.Urgency != nil {
		addCondition("urgency", *filter.Urgency)
	}
	if filter.Status != nil {
		addCondition("status", *filter.Status)
	}

	query := `SELECT ` + requestColumns + ` FROM requests`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// Claim flips an open request to claimed in one conditional update, so two
// volunteers racing for the same request cannot both win.
func (r *RequestRepository) Claim(ctx context.Context, id string, claimerID string) error {
	const query = `
		UPDATE requests
		SET status = $2, claimed_by = $3, updated_at = NOW()
		WHERE id = $1 AND status = $4
	`

	cmd, err := r.pool.Exec(ctx, query, id, models.StatusClaimed, claimerID, models.StatusOpen)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrRequestNotOpen
}

func scanRequest(row pgx.Row) (models.Request, error) {
	var req models.Request
	err := row.Scan(
		&req.ID,
		&req.Title,
		&req.Description,
		&req.Category,
		&req.Urgency,
		&req.Status,
		&req.ContactName,
		&req.ContactPhone,
		&req.IsContactShared,
		&req.PhotoURLs,
		&req.ExifData,
		&req.GPSLat,
		&req.GPSLng,
		&req.PhotoTakenTime,
		&req.CreatedBy,
		&req.ClaimedBy,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	return req, err
}
