package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"surveyquote-api/internal/config"
	"surveyquote-api/internal/postcode"

	"github.com/jackc/pgx/v5"
)

type OutcodeRow struct {
	Outcode  string
	Label    string
	Lat      float64
	Lon      float64
	Priority int
	Areas    []string
}

func main() {
	file := flag.String("file", "", "Path to the outcode CSV file to import (omit to load the embedded table)")
	flag.Parse()

	var rows []OutcodeRow
	var err error
	if *file != "" {
		fmt.Printf("Starting import from file: %s\n", *file)
		rows, err = parseCSV(*file)
		if err != nil {
			fmt.Printf("Error parsing CSV: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println("No --file given, importing the embedded outcode table")
		rows = embeddedRows()
	}

	fmt.Printf("Parsed %d outcodes\n", len(rows))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	// Ensure tables exist
	err = createTablesIfNotExist(conn)
	if err != nil {
		fmt.Printf("Error creating tables: %v\n", err)
		os.Exit(1)
	}

	// Insert rows
	err = insertRows(conn, rows)
	if err != nil {
		fmt.Printf("Error inserting rows: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	err = verifyImport(conn, len(rows))
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d outcodes\n", len(rows))
}

// parseCSV reads rows of: outcode,label,latitude,longitude,priority,areas.
// The areas column is a |-separated list of place names.
func parseCSV(filePath string) ([]OutcodeRow, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows []OutcodeRow
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 5 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 5 columns", len(record))
		}

		lat, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[2])
		}

		lon, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[3])
		}

		priority, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("invalid priority: %s", record[4])
		}

		row := OutcodeRow{
			Outcode:  strings.ToUpper(strings.TrimSpace(record[0])),
			Label:    record[1],
			Lat:      lat,
			Lon:      lon,
			Priority: priority,
		}
		if len(record) > 5 && record[5] != "" {
			row.Areas = strings.Split(record[5], "|")
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func embeddedRows() []OutcodeRow {
	rows := make([]OutcodeRow, len(postcode.DefaultRecords))
	for i, rec := range postcode.DefaultRecords {
		rows[i] = OutcodeRow{
			Outcode:  rec.Outcode,
			Label:    rec.Label,
			Lat:      rec.Latitude,
			Lon:      rec.Longitude,
			Priority: rec.Priority,
			Areas:    rec.Areas,
		}
	}
	return rows
}

func createTablesIfNotExist(conn *pgx.Conn) error {
	query := `
	CREATE TABLE IF NOT EXISTS outcodes (
		outcode TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		priority INT NOT NULL,
		position INT NOT NULL,
		areas TEXT[] NOT NULL DEFAULT '{}'
	);
	CREATE TABLE IF NOT EXISTS service_areas (
		id BIGSERIAL PRIMARY KEY,
		slug TEXT NOT NULL,
		label TEXT NOT NULL,
		outcode TEXT NOT NULL REFERENCES outcodes(outcode),
		position INT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS enquiries (
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
	TRUNCATE service_areas, outcodes;
	`
	_, err := conn.Exec(context.Background(), query)
	return err
}

func insertRows(conn *pgx.Conn, rows []OutcodeRow) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"outcodes"},
		[]string{"outcode", "label", "latitude", "longitude", "priority", "position", "areas"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]interface{}, error) {
			r := rows[i]
			return []interface{}{r.Outcode, r.Label, r.Lat, r.Lon, r.Priority, i, r.Areas}, nil
		}),
	)
	if err != nil {
		return err
	}

	position := 0
	for _, row := range rows {
		for _, area := range row.Areas {
			_, err := conn.Exec(context.Background(),
				"INSERT INTO service_areas (slug, label, outcode, position) VALUES ($1, $2, $3, $4)",
				slugify(area), area, row.Outcode, position,
			)
			if err != nil {
				return fmt.Errorf("failed to insert area %q: %w", area, err)
			}
			position++
		}
	}

	return nil
}

// slugify turns a place name into its stable identifier ("Connah's Quay" ->
// "connahs-quay").
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func verifyImport(conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM outcodes").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count outcodes: %w", err)
	}

	if count != expectedCount {
		return fmt.Errorf("outcode count mismatch: expected %d, got %d", expectedCount, count)
	}

	var areaCount int
	err = conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM service_areas").Scan(&areaCount)
	if err != nil {
		return fmt.Errorf("failed to count service areas: %w", err)
	}

	fmt.Printf("Imported %d outcodes and %d service areas\n", count, areaCount)
	return nil
}
