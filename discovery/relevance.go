// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"strings"

	"github.com/mothupally/RoamRelic/utils/textutils"
)

// relevantTypes is the tag allow-list. Google tags broadly with
// point_of_interest/establishment, so in practice the keyword match
// below is the real discriminator.
var relevantTypes = map[string]bool{
	"tourist_attraction": true,
	"museum":             true,
	"place_of_worship":   true,
	"hindu_temple":       true,
	"church":             true,
	"mosque":             true,
	"synagogue":          true,
	"monument":           true,
	"landmark":           true,
	"point_of_interest":  true,
	"establishment":      true,
}

// heritageKeywords match against the case-folded display name and area
// name of a candidate.
var heritageKeywords = []string{
	"fort",
	"palace",
	"temple",
	"monument",
	"shrine",
	"memorial",
	"tomb",
	"masjid",
	"mandir",
	"gurudwara",
	"minar",
	"qila",
	"stupa",
	"historic",
	"heritage",
	"ancient",
	"cultural",
	"archaeological",
	"ruins",
	"citadel",
}

// IsRelevant classifies a candidate as belonging to the heritage
// domain. The heuristic favors recall: dropping a genuine heritage site
// is the failure mode to minimize, a few generic attractions slipping
// through is acceptable.
func IsRelevant(c Candidate) bool {
	for _, tag := range c.TypeTags {
		if relevantTypes[tag] {
			return true
		}
	}

	haystack := textutils.LowerASCIIFolding(c.DisplayName + " " + c.AreaName)
	for _, keyword := range heritageKeywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}

	return false
}
