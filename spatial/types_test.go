// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"testing"
)

func TestDistanceMetersZeroForSamePoint(t *testing.T) {
	points := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 17.3850, Lng: 78.4867},
		{Lat: -34.9011, Lng: -56.1645},
		{Lat: 89.9, Lng: 179.9},
	}

	for _, p := range points {
		if d := DistanceMeters(p, p); d != 0 {
			t.Errorf("DistanceMeters(%v, %v) = %d, want 0", p, p, d)
		}

		if label := FormatDistance(DistanceMeters(p, p)); label != "0m" {
			t.Errorf("FormatDistance for identical points = %q, want \"0m\"", label)
		}
	}
}

func TestDistanceMetersSymmetric(t *testing.T) {
	pairs := []struct {
		name string
		a, b Point
	}{
		{"hyderabad to delhi", Point{17.3850, 78.4867}, Point{28.6139, 77.2090}},
		{"across equator", Point{-1.0, 30.0}, Point{1.0, 30.0}},
		{"across antimeridian", Point{10.0, 179.5}, Point{10.0, -179.5}},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			ab := DistanceMeters(tt.a, tt.b)
			ba := DistanceMeters(tt.b, tt.a)

			if ab != ba {
				t.Errorf("DistanceMeters not symmetric: %d vs %d", ab, ba)
			}

			if ab <= 0 {
				t.Errorf("DistanceMeters = %d, want > 0 for distinct points", ab)
			}
		})
	}
}

func TestDistanceMetersKnownValue(t *testing.T) {
	// One degree of latitude is ~111.2 km on the 6371 km sphere.
	a := Point{Lat: 17.0, Lng: 78.0}
	b := Point{Lat: 18.0, Lng: 78.0}

	d := DistanceMeters(a, b)
	if d < 111100 || d > 111300 {
		t.Errorf("DistanceMeters one degree latitude = %d, want ~111195", d)
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters int
		want   string
	}{
		{0, "0m"},
		{1, "1m"},
		{999, "999m"},
		{1000, "1000m"}, // boundary: exactly 1000 stays in meters
		{1001, "1.0km"},
		{1112, "1.1km"},
		{1500, "1.5km"},
		{49999, "50.0km"},
	}

	for _, tt := range tests {
		if got := FormatDistance(tt.meters); got != tt.want {
			t.Errorf("FormatDistance(%d) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}
