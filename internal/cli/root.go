// Package cli implements the webmon terminal client.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL string
	apiKey string
	client *apiClient
)

var rootCmd = &cobra.Command{
	Use:   "webmon",
	Short: "Watch and manage the website response monitor",
	Long: `webmon talks to the monitor API: add or remove websites, trigger a
check cycle and render the latest status board in the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		client = newAPIClient(apiURL, apiKey)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaultURL := os.Getenv("WEBMON_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "monitor API URL")
	rootCmd.PersistentFlags().StringVar(&apiKey, "key", os.Getenv("WEBMON_API_KEY"), "API key (admin key for writes)")
}
