// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/spf13/cobra"

	"github.com/mothupally/RoamRelic/history"
	"github.com/mothupally/RoamRelic/utils/textutils"
)

var historyOptions = struct {
	dbPath string
	near   string
	limit  int
}{}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past discovery results saved with --save",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if _, err := os.Stat(historyOptions.dbPath); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("history database not found at %s - run 'discover --save' first", historyOptions.dbPath)
		}

		db, err := sql.Open("duckdb", historyOptions.dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		repo := history.NewRepository(db)
		if err := repo.CreateSchema(); err != nil {
			return fmt.Errorf("creating history schema: %w", err)
		}

		var entries []*history.Entry

		if historyOptions.near != "" {
			coord, err := parseCoordinate(historyOptions.near)
			if err != nil {
				return fmt.Errorf("parsing --near: %w", err)
			}

			entries, err = repo.ListNear(coord, 2)
			if err != nil {
				return fmt.Errorf("listing entries near %s: %w", historyOptions.near, err)
			}
		} else {
			entries, err = repo.ListEntries(historyOptions.limit, 0)
			if err != nil {
				return fmt.Errorf("listing entries: %w", err)
			}
		}

		for _, entry := range entries {
			fmt.Printf("%s  %-28s %8s  (%.4f, %.4f)\n",
				entry.CreatedAt.Format("2006-01-02 15:04"),
				entry.Name,
				entry.DistanceLabel,
				entry.Point.Lat,
				entry.Point.Lng,
			)
		}

		count, err := repo.CountEntries()
		if err != nil {
			return fmt.Errorf("counting entries: %w", err)
		}

		fmt.Printf("%s of %s saved places shown\n",
			textutils.FormatInt(int64(len(entries))),
			textutils.FormatInt(int64(count)))

		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyOptions.dbPath, "db", "roamrelic.duckdb", "path of the history database")
	historyCmd.Flags().StringVar(&historyOptions.near, "near", "", "only entries near \"lat,lon\"")
	historyCmd.Flags().IntVar(&historyOptions.limit, "limit", 50, "maximum entries to list")

	rootCmd.AddCommand(historyCmd)
}
