package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/cli/style"
)

var addThreshold float64

var addCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a website to monitor (or update its latency threshold)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().Float64Var(&addThreshold, "threshold", 0,
		"average-latency alert threshold in seconds (0 = server default)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	resp, err := client.UpsertTarget(args[0], addThreshold)
	if err != nil {
		return err
	}

	fmt.Printf("Monitoring %s (threshold %.2fs)\n",
		style.Bold.Render(resp.Target.URL), resp.Target.LatencyThresholdSeconds)
	fmt.Println(boardRow(resp.Result))
	return nil
}
