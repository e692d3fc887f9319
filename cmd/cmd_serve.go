// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mothupally/RoamRelic/discovery"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the discovery HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		pipeline := discovery.NewPipeline(discovery.Config{
			APIKey: discovery.ResolveAPIKey(cmd.Context()),
		})

		r := gin.Default()
		registerRoutes(r, pipeline)

		fmt.Printf("Discovery API listening on %s\n", serveAddr)

		return r.Run(serveAddr)
	},
}

func registerRoutes(r *gin.Engine, pipeline *discovery.Pipeline) {
	r.GET("/api/places", func(c *gin.Context) {
		lat, err := strconv.ParseFloat(c.Query("lat"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be a number"})

			return
		}

		lon, err := strconv.ParseFloat(c.Query("lon"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lon must be a number"})

			return
		}

		// Discovery is total: past coordinate parsing there is no
		// error path.
		c.JSON(http.StatusOK, pipeline.Discover(c.Request.Context(), lat, lon))
	})

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": Version})
	})
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")

	rootCmd.AddCommand(serveCmd)
}
