// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mothupally/RoamRelic/discovery"
	"github.com/mothupally/RoamRelic/spatial"
)

var seedsOptions = struct {
	lat float64
	lon float64
}{}

var seedsCmd = &cobra.Command{
	Use:   "seeds",
	Short: "Print the deterministic offline dataset for a coordinate",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		places := discovery.SeedPlaces(spatial.Point{
			Lat: seedsOptions.lat,
			Lng: seedsOptions.lon,
		})

		data, err := json.MarshalIndent(places, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling seed places: %w", err)
		}

		fmt.Println(string(data))

		return nil
	},
}

func init() {
	seedsCmd.Flags().Float64Var(&seedsOptions.lat, "lat", 17.3850, "latitude of the anchor")
	seedsCmd.Flags().Float64Var(&seedsOptions.lon, "lon", 78.4867, "longitude of the anchor")

	rootCmd.AddCommand(seedsCmd)
}
