// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"github.com/mothupally/RoamRelic/spatial"
)

// Category classifies a Place. Provider-sourced and seeded results are
// always heritage sites.
type Category string

const (
	CategoryHeritage Category = "heritage"
)

// Place is the normalized output entity of a discovery call. It is
// constructed once and never mutated afterwards.
type Place struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	ImageURL      string         `json:"image_url"`
	Category      Category       `json:"category"`
	DistanceLabel string         `json:"distance_label"`
	Metadata      *PlaceMetadata `json:"metadata,omitempty"`
}

// PlaceMetadata carries the raw provider attributes that are kept out
// of the human-readable description.
type PlaceMetadata struct {
	Rating            *float64 `json:"rating,omitempty"`
	RatingCount       *int     `json:"rating_count,omitempty"`
	OperationalStatus string   `json:"operational_status,omitempty"`
	OpenNow           *bool    `json:"open_now,omitempty"`
	TypeTags          []string `json:"type_tags,omitempty"`
	FormattedAddress  string   `json:"formatted_address,omitempty"`
	AreaName          string   `json:"area_name,omitempty"`
}

// Point returns the place coordinate.
func (p *Place) Point() spatial.Point {
	return spatial.Point{Lat: p.Latitude, Lng: p.Longitude}
}

// Candidate is a single raw result from the places provider, reduced to
// a provider-neutral shape before filtering and normalization.
type Candidate struct {
	ID                string
	DisplayName       string
	TypeTags          []string
	Location          spatial.Point
	Rating            *float64
	RatingCount       *int
	OperationalStatus string
	FormattedAddress  string
	AreaName          string
	OpenNow           *bool
	PhotoReference    string
}

// nearbySearchResponse is the Google Places Nearby Search envelope.
type nearbySearchResponse struct {
	Status       string        `json:"status"` // OK, ZERO_RESULTS, REQUEST_DENIED, ...
	ErrorMessage string        `json:"error_message,omitempty"`
	Results      []placeResult `json:"results"`
}

type placeResult struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	BusinessStatus   *string       `json:"business_status,omitempty"`
	Geometry         geometry      `json:"geometry"`
	OpeningHours     *openingHours `json:"opening_hours,omitempty"`
	Photos           []photo       `json:"photos,omitempty"`
	Rating           *float64      `json:"rating,omitempty"`
	Types            []string      `json:"types"`
	UserRatingsTotal *int          `json:"user_ratings_total,omitempty"`
	Vicinity         *string       `json:"vicinity,omitempty"`
	FormattedAddress *string       `json:"formatted_address,omitempty"`
}

type geometry struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type openingHours struct {
	OpenNow bool `json:"open_now"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

// toCandidate reduces a provider result to the neutral Candidate shape.
func (r *placeResult) toCandidate() Candidate {
	c := Candidate{
		ID:          r.PlaceID,
		DisplayName: r.Name,
		TypeTags:    r.Types,
		Location: spatial.Point{
			Lat: r.Geometry.Location.Lat,
			Lng: r.Geometry.Location.Lng,
		},
		Rating:      r.Rating,
		RatingCount: r.UserRatingsTotal,
	}

	if r.BusinessStatus != nil {
		c.OperationalStatus = *r.BusinessStatus
	}

	if r.FormattedAddress != nil {
		c.FormattedAddress = *r.FormattedAddress
	}

	if r.Vicinity != nil {
		c.AreaName = *r.Vicinity
	}

	if r.OpeningHours != nil {
		openNow := r.OpeningHours.OpenNow
		c.OpenNow = &openNow
	}

	if len(r.Photos) > 0 {
		c.PhotoReference = r.Photos[0].PhotoReference
	}

	return c
}
