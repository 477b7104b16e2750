package repository

import (
	"context"
	"fmt"

	"surveyquote-api/internal/models"
	"surveyquote-api/internal/postcode"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the repository interface for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListOutcodes returns the outcode reference table in priority order. The
// resolver treats row order as declaration order, so the ordering here is
// part of the contract.
func (r *Repository) ListOutcodes(ctx context.Context) ([]postcode.Record, error) {
	sql := `
		SELECT
			outcode,
			label,
			latitude,
			longitude,
			priority,
			areas
		FROM outcodes
		ORDER BY priority, position
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query outcodes: %w", err)
	}
	defer rows.Close()

	var records []postcode.Record
	for rows.Next() {
		var rec postcode.Record
		err := rows.Scan(
			&rec.Outcode,
			&rec.Label,
			&rec.Latitude,
			&rec.Longitude,
			&rec.Priority,
			&rec.Areas,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan outcode: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return records, nil
}

// ListAreas returns the service-area table in declaration order.
func (r *Repository) ListAreas(ctx context.Context) ([]postcode.Area, error) {
	sql := `
		SELECT
			slug,
			label,
			outcode
		FROM service_areas
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query service areas: %w", err)
	}
	defer rows.Close()

	var areas []postcode.Area
	for rows.Next() {
		var a postcode.Area
		if err := rows.Scan(&a.ID, &a.Label, &a.Outcode); err != nil {
			return nil, fmt.Errorf("repository: failed to scan service area: %w", err)
		}
		areas = append(areas, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return areas, nil
}

// InsertEnquiry stores a submitted enquiry and returns its id.
func (r *Repository) InsertEnquiry(ctx context.Context, enquiry models.Enquiry) (int64, error) {
	sql := `
		INSERT INTO enquiries (
			name, email, phone, address, postcode, message,
			survey_type, survey_label, bedrooms, property_value,
			distance_band, quote_total, quote_min, quote_max, extras
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, sql,
		enquiry.Name,
		enquiry.Email,
		enquiry.Phone,
		enquiry.Address,
		enquiry.Postcode,
		enquiry.Message,
		enquiry.SurveyType,
		enquiry.SurveyLabel,
		enquiry.Bedrooms,
		enquiry.PropertyValue,
		enquiry.DistanceBand,
		enquiry.QuoteTotal,
		enquiry.QuoteMin,
		enquiry.QuoteMax,
		enquiry.Extras,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to insert enquiry: %w", err)
	}

	return id, nil
}
