package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/cli/style"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a check cycle now and show the results",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	results, err := client.RunCycle()
	if err != nil {
		fmt.Println(style.ErrorBox.Render("Check failed: " + err.Error()))
		return err
	}
	renderBoard(os.Stdout, results)
	return nil
}
