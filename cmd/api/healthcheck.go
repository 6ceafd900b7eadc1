package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"zoo-management/internal/config"
	"zoo-management/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

// healthcheck sirve de probe para contenedores sin curl.
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Exit 0 if the local API answers GET /health",
	RunE: func(cmd *cobra.Command, _ []string) error {
		port, err := config.LoadPort(cmd.Flags())
		if err != nil {
			return err
		}
		return probe(cmd.Context(), "http://127.0.0.1:"+strconv.Itoa(port), 3*time.Second)
	},
}

func probe(ctx context.Context, baseURL string, timeout time.Duration) error {
	c, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return err
	}
	if err := c.DoJSON(ctx, http.MethodGet, "/health", nil, nil); err != nil {
		return fmt.Errorf("healthcheck: %w", err)
	}
	return nil
}
