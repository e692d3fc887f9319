// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/mothupally/RoamRelic/spatial"
	"github.com/mothupally/RoamRelic/utils/textutils"
)

// Static fallback images, used when the provider has no photo for a
// candidate or no API key is configured. Selection must stay
// deterministic for identical input.
const (
	imageMuseum    = "https://images.unsplash.com/photo-1566127992631-137a642a90f4?w=400"
	imageWorship   = "https://images.unsplash.com/photo-1609920658906-8223bd289001?w=400"
	imageLandmark  = "https://images.unsplash.com/photo-1587474260584-136574528ed5?w=400"
	imageFort      = "https://images.unsplash.com/photo-1600100397608-f010f2e7f1dc?w=400"
	imagePalace    = "https://images.unsplash.com/photo-1585135497273-1a86b09fe70e?w=400"
	imageCharminar = "https://images.unsplash.com/photo-1572445271230-a78b5944a659?w=400"
	imageDefault   = "https://images.unsplash.com/photo-1564507592333-c60657eea523?w=400"
)

// Normalizer turns raw candidates into Place entities. The key and
// photo endpoint are needed only for provider photo URLs; everything
// else is pure.
type Normalizer struct {
	apiKey        string
	photoEndpoint string
}

// NewNormalizer creates a normalizer. An empty apiKey disables provider
// photo URLs and forces the static image fallback.
func NewNormalizer(apiKey, photoEndpoint string) *Normalizer {
	return &Normalizer{
		apiKey:        apiKey,
		photoEndpoint: photoEndpoint,
	}
}

// Normalize builds an immutable Place from a filtered candidate. Raw
// rating/status metadata never leaks into the description text; it is
// surfaced only through the structured Metadata field.
func (n *Normalizer) Normalize(c Candidate, requester spatial.Point) Place {
	return Place{
		ID:            candidateID(c),
		Name:          c.DisplayName,
		Description:   describe(c),
		Latitude:      c.Location.Lat,
		Longitude:     c.Location.Lng,
		ImageURL:      n.resolveImage(c),
		Category:      CategoryHeritage,
		DistanceLabel: spatial.FormatDistance(spatial.DistanceMeters(requester, c.Location)),
		Metadata: &PlaceMetadata{
			Rating:            c.Rating,
			RatingCount:       c.RatingCount,
			OperationalStatus: c.OperationalStatus,
			OpenNow:           c.OpenNow,
			TypeTags:          c.TypeTags,
			FormattedAddress:  c.FormattedAddress,
			AreaName:          c.AreaName,
		},
	}
}

func candidateID(c Candidate) string {
	if c.ID != "" {
		return c.ID
	}

	return fmt.Sprintf("%s-%.5f-%.5f", textutils.Slugify(c.DisplayName), c.Location.Lat, c.Location.Lng)
}

func hasTag(c Candidate, tags ...string) bool {
	for _, tag := range tags {
		if slices.Contains(c.TypeTags, tag) {
			return true
		}
	}

	return false
}

// describe builds the human-readable description from a small decision
// table keyed on type tags, plus a location clause.
func describe(c Candidate) string {
	var sentence string

	switch {
	case hasTag(c, "tourist_attraction", "museum"):
		sentence = fmt.Sprintf("%s is a notable heritage attraction worth exploring.", c.DisplayName)
	case hasTag(c, "place_of_worship", "hindu_temple", "church", "mosque", "synagogue"):
		sentence = fmt.Sprintf("%s is a historic place of worship with cultural significance.", c.DisplayName)
	case hasTag(c, "landmark", "monument"):
		sentence = fmt.Sprintf("%s is a recognized landmark of the region.", c.DisplayName)
	default:
		sentence = fmt.Sprintf("%s is a heritage site of historical interest.", c.DisplayName)
	}

	if area := locationClause(c); area != "" {
		sentence += fmt.Sprintf(" Located in %s.", area)
	}

	return sentence
}

// locationClause prefers the provider area name and falls back to the
// second-to-last comma-delimited segment of the formatted address,
// which for Google addresses is usually the city.
func locationClause(c Candidate) string {
	if c.AreaName != "" {
		return c.AreaName
	}

	if c.FormattedAddress == "" {
		return ""
	}

	parts := strings.Split(c.FormattedAddress, ",")
	if len(parts) < 2 {
		return strings.TrimSpace(c.FormattedAddress)
	}

	return strings.TrimSpace(parts[len(parts)-2])
}

// resolveImage applies the image policy: a provider photo URL when a
// photo reference and key are available, otherwise a static image
// picked by tag, then by name, then a generic default.
func (n *Normalizer) resolveImage(c Candidate) string {
	if c.PhotoReference != "" && n.apiKey != "" {
		params := url.Values{}
		params.Set("maxwidth", "400")
		params.Set("photoreference", c.PhotoReference)
		params.Set("key", n.apiKey)

		return n.photoEndpoint + "?" + params.Encode()
	}

	switch {
	case hasTag(c, "museum"):
		return imageMuseum
	case hasTag(c, "place_of_worship", "hindu_temple", "church", "mosque", "synagogue"):
		return imageWorship
	case hasTag(c, "landmark", "monument"):
		return imageLandmark
	case hasTag(c, "fort"):
		return imageFort
	}

	name := textutils.LowerASCIIFolding(c.DisplayName)

	switch {
	case strings.Contains(name, "charminar"):
		return imageCharminar
	case strings.Contains(name, "palace"):
		return imagePalace
	case strings.Contains(name, "fort"):
		return imageFort
	}

	return imageDefault
}
