package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goprotex/Disaster-Response/internal/models"
)

var ErrOfferNotFound = errors.New("offer not found")

type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

func (r *OfferRepository) Create(ctx context.Context, offer models.Offer) error {
	const query = `
		INSERT INTO offers (
			id, description, category, contact_name, contact_phone,
			gps_lat, gps_lng, created_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		offer.ID,
		offer.Description,
		offer.Category,
		offer.ContactName,
		offer.ContactPhone,
		offer.GPSLat,
		offer.GPSLng,
		offer.CreatedBy,
	)
	return err
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (models.Offer, error) {
	const query = `
		SELECT id, description, category, contact_name, contact_phone,
		       gps_lat, gps_lng, created_by, created_at, updated_at
		FROM offers WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	offer, err := scanOffer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Offer{}, ErrOfferNotFound
		}
		return models.Offer{}, err
	}
	return offer, nil
}

func (r *OfferRepository) List(ctx context.Context, limit int) ([]models.Offer, error) {
	const query = `
		SELECT id, description, category, contact_name, contact_phone,
		       gps_lat, gps_lng, created_by, created_at, updated_at
		FROM offers
		ORDER BY created_at DESC
		LIMIT $1
	`

	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}

func scanOffer(row pgx.Row) (models.Offer, error) {
	var offer models.Offer
	err := row.Scan(
		&offer.ID,
		&offer.Description,
		&offer.Category,
		&offer.ContactName,
		&offer.ContactPhone,
		&offer.GPSLat,
		&offer.GPSLng,
		&offer.CreatedBy,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	)
	return offer, err
}
