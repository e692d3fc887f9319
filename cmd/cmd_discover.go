// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mothupally/RoamRelic/discovery"
	"github.com/mothupally/RoamRelic/history"
	"github.com/mothupally/RoamRelic/spatial"
	"github.com/mothupally/RoamRelic/utils/textutils"
)

var discoverOptions = struct {
	lat       float64
	lon       float64
	asJSON    bool
	save      bool
	dbPath    string
	batchFile string
}{}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover heritage places near a coordinate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		pipeline := discovery.NewPipeline(discovery.Config{
			APIKey: discovery.ResolveAPIKey(cmd.Context()),
		})

		var repo history.Repository

		if discoverOptions.save {
			db, err := sql.Open("duckdb", discoverOptions.dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer db.Close()

			repo = history.NewRepository(db)
			if err := repo.CreateSchema(); err != nil {
				return fmt.Errorf("creating history schema: %w", err)
			}
		}

		if discoverOptions.batchFile != "" {
			return discoverBatch(cmd, pipeline, repo)
		}

		return discoverOne(cmd, pipeline, repo, discoverOptions.lat, discoverOptions.lon)
	},
}

func discoverOne(cmd *cobra.Command, pipeline *discovery.Pipeline, repo history.Repository, lat, lon float64) error {
	places := pipeline.Discover(cmd.Context(), lat, lon)

	if repo != nil {
		anchor := spatial.Point{Lat: lat, Lng: lon}
		if err := repo.SaveDiscovery(anchor, places); err != nil {
			return fmt.Errorf("saving discovery: %w", err)
		}
	}

	if discoverOptions.asJSON {
		data, err := json.MarshalIndent(places, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling places: %w", err)
		}

		fmt.Println(string(data))

		return nil
	}

	for _, place := range places {
		fmt.Printf("%-28s %8s  %s\n", place.Name, place.DistanceLabel, place.Description)
	}

	fmt.Printf("%s places near (%.4f, %.4f)\n", textutils.FormatInt(int64(len(places))), lat, lon)

	return nil
}

// discoverBatch walks a file of "lat,lon" lines, one discovery per line.
func discoverBatch(cmd *cobra.Command, pipeline *discovery.Pipeline, repo history.Repository) error {
	f, err := os.Open(discoverOptions.batchFile) // #nosec G304 - filepath is provided by the operator
	if err != nil {
		return fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	var coords []spatial.Point

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		coord, err := parseCoordinate(line)
		if err != nil {
			return fmt.Errorf("parsing batch line %q: %w", line, err)
		}

		coords = append(coords, coord)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading batch file: %w", err)
	}

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(len(coords),
			progressbar.OptionSetDescription("Discovering"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	total := 0

	for _, coord := range coords {
		places := pipeline.Discover(cmd.Context(), coord.Lat, coord.Lng)
		total += len(places)

		if repo != nil {
			if err := repo.SaveDiscovery(coord, places); err != nil {
				return fmt.Errorf("saving discovery for (%.4f, %.4f): %w", coord.Lat, coord.Lng, err)
			}
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	fmt.Printf("%s places across %s coordinates\n",
		textutils.FormatInt(int64(total)),
		textutils.FormatInt(int64(len(coords))))

	return nil
}

func parseCoordinate(s string) (spatial.Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return spatial.Point{}, fmt.Errorf("expected \"lat,lon\", got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return spatial.Point{}, fmt.Errorf("latitude: %w", err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return spatial.Point{}, fmt.Errorf("longitude: %w", err)
	}

	return spatial.Point{Lat: lat, Lng: lon}, nil
}

func init() {
	discoverCmd.Flags().Float64Var(&discoverOptions.lat, "lat", 17.3850, "latitude of the search anchor")
	discoverCmd.Flags().Float64Var(&discoverOptions.lon, "lon", 78.4867, "longitude of the search anchor")
	discoverCmd.Flags().BoolVar(&discoverOptions.asJSON, "json", false, "print places as JSON")
	discoverCmd.Flags().BoolVar(&discoverOptions.save, "save", false, "record results in the local history database")
	discoverCmd.Flags().StringVar(&discoverOptions.dbPath, "db", "roamrelic.duckdb", "path of the history database")
	discoverCmd.Flags().StringVar(&discoverOptions.batchFile, "batch", "", "file with one \"lat,lon\" per line")

	rootCmd.AddCommand(discoverCmd)
}
