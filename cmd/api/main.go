package main

import (
	"fmt"
	"os"

	"zoo-management/internal/config"

	"github.com/spf13/cobra"
)

// version se pisa en build con -ldflags "-X main.version=..."
var version = "dev"

var envFile string

var rootCmd = &cobra.Command{
	Use:   "zoo-api",
	Short: "Zoo management API: CRUD for animal records",
	Long: `zoo-api serves the animal records API over HTTP, with Swagger UI
mounted at /api-docs. Without a sub-command it behaves like "serve".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		_, err := config.LoadEnvFile(envFile)
		return err
	},
	RunE: runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "zoo-api", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default: .env if present)")
	config.BindFlags(rootCmd.Flags())
	config.BindFlags(serveCmd.Flags())
	healthcheckCmd.Flags().Int("port", 0, "port of the local API (env PORT, default 3000)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(healthcheckCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
