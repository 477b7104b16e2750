//go:build integration

package repository

import (
	"context"
	"testing"

	"surveyquote-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections"),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	_, err = pool.Exec(ctx, `
		CREATE TABLE outcodes (
			outcode TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			priority INT NOT NULL,
			position INT NOT NULL,
			areas TEXT[] NOT NULL DEFAULT '{}'
		);

		CREATE TABLE service_areas (
			id BIGSERIAL PRIMARY KEY,
			slug TEXT NOT NULL,
			label TEXT NOT NULL,
			outcode TEXT NOT NULL REFERENCES outcodes(outcode),
			position INT NOT NULL
		);

		CREATE TABLE enquiries (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			address TEXT,
			postcode TEXT,
			message TEXT,
			survey_type TEXT NOT NULL,
			survey_label TEXT,
			bedrooms INT,
			property_value DOUBLE PRECISION,
			distance_band TEXT,
			quote_total DOUBLE PRECISION,
			quote_min DOUBLE PRECISION,
			quote_max DOUBLE PRECISION,
			extras TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		INSERT INTO outcodes (outcode, label, latitude, longitude, priority, position, areas) VALUES
		('CH5', 'Deeside & Connah''s Quay', 53.2080, -3.0498, 0, 0, ARRAY['Connah''s Quay', 'Shotton']),
		('CH6', 'Flint', 53.2480, -3.1280, 1, 1, ARRAY['Flint', 'Bagillt']),
		('CW6', 'Tarporley', 53.1590, -2.6660, 4, 2, ARRAY['Tarporley', 'Kelsall']);

		INSERT INTO service_areas (slug, label, outcode, position) VALUES
		('connahs-quay', 'Connah''s Quay', 'CH5', 0),
		('shotton', 'Shotton', 'CH5', 1),
		('flint', 'Flint', 'CH6', 2),
		('tarporley', 'Tarporley', 'CW6', 3);
	`)
	require.NoError(t, err)

	return pool
}

func TestRepository_ListOutcodes(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	records, err := repo.ListOutcodes(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "CH5", records[0].Outcode)
	assert.Equal(t, 0, records[0].Priority)
	assert.Equal(t, []string{"Connah's Quay", "Shotton"}, records[0].Areas)
	assert.Equal(t, "CW6", records[2].Outcode)
	assert.InDelta(t, -2.6660, records[2].Longitude, 1e-9)
}

func TestRepository_ListAreas(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	areas, err := repo.ListAreas(ctx)
	require.NoError(t, err)
	require.Len(t, areas, 4)

	assert.Equal(t, "connahs-quay", areas[0].ID)
	assert.Equal(t, "CH5", areas[0].Outcode)
	assert.Equal(t, "tarporley", areas[3].ID)
}

func TestRepository_InsertEnquiry(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	id, err := repo.InsertEnquiry(ctx, models.Enquiry{
		Name:          "Jo Davies",
		Email:         "jo@example.com",
		Phone:         "01244 000000",
		Address:       "1 High Street, Connah's Quay",
		Postcode:      "CH5 4HS",
		SurveyType:    "level2",
		SurveyLabel:   "RICS Level 2 Home Survey",
		Bedrooms:      3,
		PropertyValue: 250000,
		DistanceBand:  "within-10-miles",
		QuoteTotal:    545,
		QuoteMin:      515,
		QuoteMax:      575,
		Extras:        []string{"thermal"},
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	var stored string
	err = pool.QueryRow(ctx, "SELECT survey_type FROM enquiries WHERE id = $1", id).Scan(&stored)
	require.NoError(t, err)
	assert.Equal(t, "level2", stored)
}
