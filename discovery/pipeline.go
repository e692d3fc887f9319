// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"context"
	"log"
	"time"

	"github.com/mothupally/RoamRelic/spatial"
)

// Defaults for the provider interface. The radius and keyword are part
// of the discovery contract, not tunables exposed to callers of
// Discover.
const (
	DefaultPlacesEndpoint = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	DefaultPhotoEndpoint  = "https://maps.googleapis.com/maps/api/place/photo"
	DefaultRadiusMeters   = 50000
	DefaultKeyword        = "historical heritage monument fort palace temple"
	DefaultAttemptTimeout = 10 * time.Second
)

// Config carries everything the pipeline reads from its environment.
// It is threaded explicitly so the inner components stay pure.
type Config struct {
	// APIKey for the places provider. Empty means degraded mode: the
	// pipeline answers from the seed dataset without touching the
	// network.
	APIKey string

	// PlacesEndpoint is the nearby-search endpoint.
	PlacesEndpoint string

	// PhotoEndpoint is the photo-fetch endpoint.
	PhotoEndpoint string

	// RadiusMeters is the search radius.
	RadiusMeters int

	// Keyword biases the provider search towards the heritage domain.
	Keyword string

	// AttemptTimeout bounds each individual proxy attempt.
	AttemptTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.PlacesEndpoint == "" {
		c.PlacesEndpoint = DefaultPlacesEndpoint
	}

	if c.PhotoEndpoint == "" {
		c.PhotoEndpoint = DefaultPhotoEndpoint
	}

	if c.RadiusMeters == 0 {
		c.RadiusMeters = DefaultRadiusMeters
	}

	if c.Keyword == "" {
		c.Keyword = DefaultKeyword
	}

	if c.AttemptTimeout == 0 {
		c.AttemptTimeout = DefaultAttemptTimeout
	}

	return c
}

// Pipeline composes fetching, filtering and normalization behind a
// single total operation. It holds no mutable state: every call
// recomputes from scratch, and concurrent callers are independent.
type Pipeline struct {
	config     Config
	fetcher    *Fetcher
	normalizer *Normalizer
}

// NewPipeline creates a discovery pipeline from the given configuration.
func NewPipeline(config Config) *Pipeline {
	config = config.withDefaults()

	return &Pipeline{
		config:     config,
		fetcher:    NewFetcher(config),
		normalizer: NewNormalizer(config.APIKey, config.PhotoEndpoint),
	}
}

// Discover returns heritage places near the coordinate. It never fails:
// provider candidates when a proxy path works, an empty list when the
// provider genuinely has nothing relevant, and the seed dataset when no
// key is configured or every access path is down.
func (p *Pipeline) Discover(ctx context.Context, lat, lng float64) []Place {
	anchor := spatial.Point{Lat: lat, Lng: lng}

	if p.config.APIKey == "" {
		log.Print("No places API key configured, answering from seed dataset")

		return SeedPlaces(anchor)
	}

	candidates, err := p.fetcher.FetchRaw(ctx, anchor)
	if err != nil {
		log.Printf("Live discovery failed, falling back to seed dataset: %v", err)

		return SeedPlaces(anchor)
	}

	// An empty-but-successful provider answer is a valid terminal
	// state, distinct from exhaustion: no fallback here.
	places := make([]Place, 0, len(candidates))

	for _, c := range candidates {
		if !IsRelevant(c) {
			continue
		}

		places = append(places, p.normalizer.Normalize(c, anchor))
	}

	return places
}
