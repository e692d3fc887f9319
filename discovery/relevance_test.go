// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"testing"
)

func TestIsRelevant(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		want      bool
	}{
		{
			name: "allow-listed tag",
			candidate: Candidate{
				DisplayName: "City Gallery",
				TypeTags:    []string{"museum"},
			},
			want: true,
		},
		{
			name: "generic point_of_interest tag passes",
			candidate: Candidate{
				DisplayName: "Lumbini Park",
				TypeTags:    []string{"point_of_interest"},
			},
			want: true,
		},
		{
			name: "keyword in name without relevant tags",
			candidate: Candidate{
				DisplayName: "Golconda Fort",
				TypeTags:    []string{"premise"},
			},
			want: true,
		},
		{
			name: "keyword in area name",
			candidate: Candidate{
				DisplayName: "Unnamed Site",
				AreaName:    "Heritage District",
				TypeTags:    []string{"premise"},
			},
			want: true,
		},
		{
			name: "no tags no keywords",
			candidate: Candidate{
				DisplayName: "Pizza Corner",
				AreaName:    "Hitech City",
				TypeTags:    []string{"restaurant", "food"},
			},
			want: false,
		},
		{
			name:      "empty candidate",
			candidate: Candidate{},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRelevant(tt.candidate); got != tt.want {
				t.Errorf("IsRelevant(%q) = %v, want %v", tt.candidate.DisplayName, got, tt.want)
			}
		})
	}
}

func TestIsRelevantCaseInvariant(t *testing.T) {
	variants := []string{
		"golconda fort",
		"Golconda Fort",
		"GOLCONDA FORT",
		"gOlCoNdA fOrT",
	}

	for _, name := range variants {
		c := Candidate{DisplayName: name, TypeTags: []string{"premise"}}
		if !IsRelevant(c) {
			t.Errorf("IsRelevant(%q) = false, want true regardless of casing", name)
		}
	}
}
