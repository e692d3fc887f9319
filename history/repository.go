// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

// Package history is an optional, CLI-only log of past discovery
// results. The discovery core never touches it: persistence is strictly
// a collaborator feature layered on top of the stateless pipeline.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/uber/h3-go/v4"

	"github.com/mothupally/RoamRelic/discovery"
	"github.com/mothupally/RoamRelic/spatial"
)

// cellResolution is the H3 resolution used to index saved places.
// Resolution 7 cells are ~5 km² , a good match for "near this
// coordinate" queries over city-scale heritage sites.
const cellResolution = 7

// Entry is one saved place from a past discovery call.
type Entry struct {
	ID            int           `json:"id"`
	PlaceID       string        `json:"place_id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Point         spatial.Point `json:"point"`
	ImageURL      string        `json:"image_url"`
	DistanceLabel string        `json:"distance_label"`
	Anchor        spatial.Point `json:"anchor"`
	Cell          int64         `json:"-"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Repository handles persistence of discovery results.
type Repository interface {
	// CreateSchema creates the discoveries table
	CreateSchema() error

	// SaveDiscovery appends the places of one discovery call
	SaveDiscovery(anchor spatial.Point, places []discovery.Place) error

	// ListEntries returns saved entries, newest first
	ListEntries(limit, offset int) ([]*Entry, error)

	// ListNear returns saved entries whose H3 cell neighbors the coordinate
	ListNear(coord spatial.Point, ringSize int) ([]*Entry, error)

	// CountEntries returns the total number of saved entries
	CountEntries() (int, error)

	// DB returns the underlying database connection
	DB() *sql.DB
}

type sqlHistoryRepository struct {
	db *sql.DB
}

// NewRepository creates a new discovery history repository.
func NewRepository(db *sql.DB) Repository {
	return &sqlHistoryRepository{db: db}
}

// DB returns the underlying database connection for advanced queries.
func (r *sqlHistoryRepository) DB() *sql.DB {
	return r.db
}

func (r *sqlHistoryRepository) CreateSchema() error {
	// DuckDB needs to load the spatial extension
	_, err := r.db.Exec(`INSTALL spatial; LOAD spatial;`)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		CREATE SEQUENCE IF NOT EXISTS discoveries_seq START 1;

		CREATE TABLE IF NOT EXISTS discoveries (
			id INTEGER PRIMARY KEY DEFAULT nextval('discoveries_seq'),
			place_id VARCHAR NOT NULL,
			name VARCHAR NOT NULL,
			description TEXT NOT NULL,
			point POINT_2D NOT NULL,
			image_url VARCHAR NOT NULL,
			distance_label VARCHAR NOT NULL,
			anchor POINT_2D NOT NULL,
			h3_res7 UBIGINT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)

	return err
}

func placeCell(p discovery.Place) (int64, error) {
	latLng := h3.NewLatLng(p.Latitude, p.Longitude)

	cell, err := h3.LatLngToCell(latLng, cellResolution)
	if err != nil {
		return 0, fmt.Errorf("converting to h3 cell at res %d: %w", cellResolution, err)
	}

	return int64(cell), nil
}

func (r *sqlHistoryRepository) SaveDiscovery(anchor spatial.Point, places []discovery.Place) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO discoveries(
			place_id,
			name,
			description,
			point,
			image_url,
			distance_label,
			anchor,
			h3_res7,
			created_at
		)
		VALUES (?, ?, ?, ST_Point(?, ?), ?, ?, ST_Point(?, ?), ?, ?)
	`)
	if err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			err = rErr
		}

		return err
	}
	defer stmt.Close()

	now := time.Now()

	for _, place := range places {
		cell, err := placeCell(place)
		if err != nil {
			if rErr := tx.Rollback(); rErr != nil {
				err = rErr
			}

			return err
		}

		_, err = stmt.Exec(
			place.ID,
			place.Name,
			place.Description,
			place.Longitude,
			place.Latitude,
			place.ImageURL,
			place.DistanceLabel,
			anchor.Lng,
			anchor.Lat,
			cell,
			now,
		)
		if err != nil {
			if rErr := tx.Rollback(); rErr != nil {
				err = rErr
			}

			return err
		}
	}

	return tx.Commit()
}

func (r *sqlHistoryRepository) scanEntries(rows *sql.Rows) ([]*Entry, error) {
	var entries []*Entry

	for rows.Next() {
		entry := &Entry{}

		var cell sql.NullInt64

		err := rows.Scan(
			&entry.ID,
			&entry.PlaceID,
			&entry.Name,
			&entry.Description,
			&entry.Point,
			&entry.ImageURL,
			&entry.DistanceLabel,
			&entry.Anchor,
			&cell,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if cell.Valid {
			entry.Cell = cell.Int64
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

const entryColumns = `
	id, place_id, name, description, point,
	image_url, distance_label, anchor, h3_res7, created_at
`

func (r *sqlHistoryRepository) ListEntries(limit, offset int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(
		`SELECT `+entryColumns+` FROM discoveries ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

func (r *sqlHistoryRepository) ListNear(coord spatial.Point, ringSize int) ([]*Entry, error) {
	origin, err := h3.LatLngToCell(h3.NewLatLng(coord.Lat, coord.Lng), cellResolution)
	if err != nil {
		return nil, fmt.Errorf("converting to h3 cell: %w", err)
	}

	cells, err := h3.GridDisk(origin, ringSize)
	if err != nil {
		return nil, fmt.Errorf("computing grid disk: %w", err)
	}

	placeholders := ""
	args := make([]any, 0, len(cells))

	for i, cell := range cells {
		if i > 0 {
			placeholders += ", "
		}

		placeholders += "?"

		args = append(args, int64(cell))
	}

	rows, err := r.db.Query(
		`SELECT `+entryColumns+` FROM discoveries WHERE h3_res7 IN (`+placeholders+`) ORDER BY created_at DESC, id DESC`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

func (r *sqlHistoryRepository) CountEntries() (int, error) {
	var count int

	err := r.db.QueryRow(`SELECT COUNT(*) FROM discoveries`).Scan(&count)

	return count, err
}
