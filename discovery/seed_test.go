// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mothupally/RoamRelic/spatial"
)

func TestSeedPlacesDeterministic(t *testing.T) {
	anchor := spatial.Point{Lat: 17.3850, Lng: 78.4867}

	first := SeedPlaces(anchor)
	second := SeedPlaces(anchor)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("SeedPlaces not deterministic (-first +second):\n%s", diff)
	}
}

func TestSeedPlacesShape(t *testing.T) {
	anchor := spatial.Point{Lat: 48.8566, Lng: 2.3522}

	places := SeedPlaces(anchor)

	if len(places) != 5 {
		t.Fatalf("SeedPlaces returned %d entries, want 5", len(places))
	}

	seen := map[string]bool{}

	for _, place := range places {
		if seen[place.ID] {
			t.Errorf("duplicate seed id %q", place.ID)
		}

		seen[place.ID] = true

		if place.Name == "" || place.Description == "" || place.ImageURL == "" || place.DistanceLabel == "" {
			t.Errorf("seed %q is not fully populated: %+v", place.ID, place)
		}

		if place.Metadata == nil || place.Metadata.Rating == nil {
			t.Errorf("seed %q is missing curated metadata", place.ID)
		}

		if dLat := place.Latitude - anchor.Lat; dLat > 0.02 || dLat < -0.02 {
			t.Errorf("seed %q latitude offset %f too large", place.ID, dLat)
		}

		if dLng := place.Longitude - anchor.Lng; dLng > 0.02 || dLng < -0.02 {
			t.Errorf("seed %q longitude offset %f too large", place.ID, dLng)
		}
	}
}

func TestSeedPlacesFollowAnchor(t *testing.T) {
	// The same dataset must render sensibly anywhere, not only around
	// its home region.
	anchors := []spatial.Point{
		{Lat: 17.3850, Lng: 78.4867},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 0, Lng: 0},
	}

	for _, anchor := range anchors {
		for _, place := range SeedPlaces(anchor) {
			d := spatial.DistanceMeters(anchor, place.Point())
			if d > 5000 {
				t.Errorf("seed %q is %dm from anchor %v, want < 5000m", place.ID, d, anchor)
			}
		}
	}
}
