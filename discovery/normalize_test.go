// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mothupally/RoamRelic/spatial"
)

func newTestNormalizer(apiKey string) *Normalizer {
	return NewNormalizer(apiKey, DefaultPhotoEndpoint)
}

func TestNormalizeWorshipSiteWithoutPhoto(t *testing.T) {
	rating := 4.7
	ratingCount := 1200
	openNow := true

	c := Candidate{
		ID:                "abc123",
		DisplayName:       "Mecca Masjid",
		TypeTags:          []string{"place_of_worship", "mosque"},
		Location:          spatial.Point{Lat: 17.3604, Lng: 78.4736},
		Rating:            &rating,
		RatingCount:       &ratingCount,
		OperationalStatus: "OPERATIONAL",
		OpenNow:           &openNow,
		AreaName:          "Old City",
	}

	place := newTestNormalizer("some-key").Normalize(c, spatial.Point{Lat: 17.3850, Lng: 78.4867})

	assert.Equal(t, "abc123", place.ID)
	assert.Equal(t, CategoryHeritage, place.Category)
	assert.Equal(t, imageWorship, place.ImageURL)
	assert.Contains(t, place.Description, "place of worship")
	assert.Contains(t, place.Description, "Located in Old City.")

	// Raw metadata stays out of the description text.
	lowered := strings.ToLower(place.Description)
	assert.NotContains(t, lowered, "rated")
	assert.NotContains(t, lowered, "status")
	assert.NotContains(t, lowered, "operational")

	require.NotNil(t, place.Metadata)
	assert.Equal(t, &rating, place.Metadata.Rating)
	assert.Equal(t, &ratingCount, place.Metadata.RatingCount)
	assert.Equal(t, "OPERATIONAL", place.Metadata.OperationalStatus)
	assert.Equal(t, []string{"place_of_worship", "mosque"}, place.Metadata.TypeTags)
}

func TestNormalizePhotoURL(t *testing.T) {
	c := Candidate{
		ID:             "with-photo",
		DisplayName:    "Salar Jung Museum",
		TypeTags:       []string{"museum"},
		Location:       spatial.Point{Lat: 17.3713, Lng: 78.4804},
		PhotoReference: "ref-42",
	}

	place := newTestNormalizer("my-key").Normalize(c, spatial.Point{Lat: 17.3850, Lng: 78.4867})

	assert.Contains(t, place.ImageURL, DefaultPhotoEndpoint+"?")
	assert.Contains(t, place.ImageURL, "maxwidth=400")
	assert.Contains(t, place.ImageURL, "photoreference=ref-42")
	assert.Contains(t, place.ImageURL, "key=my-key")
}

func TestNormalizePhotoRequiresKey(t *testing.T) {
	c := Candidate{
		ID:             "no-key",
		DisplayName:    "Salar Jung Museum",
		TypeTags:       []string{"museum"},
		PhotoReference: "ref-42",
	}

	place := newTestNormalizer("").Normalize(c, spatial.Point{})

	// No key configured: the photo reference is unusable, fall back to
	// the museum image.
	assert.Equal(t, imageMuseum, place.ImageURL)
}

func TestNormalizeImageFallbackByName(t *testing.T) {
	tests := []struct {
		name      string
		place     string
		wantImage string
	}{
		{"charminar by name", "Charminar", imageCharminar},
		{"palace by name", "Falaknuma Palace", imagePalace},
		{"fort by name", "Warangal Fort", imageFort},
		{"generic default", "Salarjung Bhavan", imageDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Candidate{DisplayName: tt.place, TypeTags: []string{"premise"}}
			place := newTestNormalizer("").Normalize(c, spatial.Point{})
			assert.Equal(t, tt.wantImage, place.ImageURL)
		})
	}
}

func TestNormalizeDescriptionTable(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		fragment string
	}{
		{"attraction", []string{"tourist_attraction"}, "heritage attraction"},
		{"museum", []string{"museum"}, "heritage attraction"},
		{"worship", []string{"hindu_temple"}, "place of worship"},
		{"landmark", []string{"landmark"}, "landmark of the region"},
		{"generic", []string{"premise"}, "historical interest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Candidate{DisplayName: "Some Site", TypeTags: tt.tags}
			place := newTestNormalizer("").Normalize(c, spatial.Point{})
			assert.Contains(t, place.Description, tt.fragment)
		})
	}
}

func TestNormalizeLocationClauseFromAddress(t *testing.T) {
	c := Candidate{
		DisplayName:      "Paigah Tombs",
		TypeTags:         []string{"premise"},
		FormattedAddress: "Owaisi Nagar, Santosh Nagar, Hyderabad, Telangana 500059, India",
	}

	place := newTestNormalizer("").Normalize(c, spatial.Point{})

	// Second-to-last comma segment of the formatted address.
	assert.Contains(t, place.Description, "Located in Telangana 500059.")
}

func TestNormalizeDistanceLabel(t *testing.T) {
	anchor := spatial.Point{Lat: 17.3850, Lng: 78.4867}
	c := Candidate{
		DisplayName: "Charminar",
		TypeTags:    []string{"tourist_attraction"},
		Location:    spatial.Point{Lat: anchor.Lat + 0.01, Lng: anchor.Lng}, // ~1.11 km due north
	}

	place := newTestNormalizer("").Normalize(c, anchor)

	assert.Equal(t, "1.1km", place.DistanceLabel)
}

func TestNormalizeGeneratedID(t *testing.T) {
	c := Candidate{
		DisplayName: "Qutb Shahi Tombs",
		Location:    spatial.Point{Lat: 17.3949, Lng: 78.3949},
	}

	place := newTestNormalizer("").Normalize(c, spatial.Point{})

	require.NotEmpty(t, place.ID)
	assert.Equal(t, "qutb-shahi-tombs-17.39490-78.39490", place.ID)
}
