package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <url>",
	Short:   "Stop monitoring a website",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if err := client.RemoveTarget(args[0]); err != nil {
		return err
	}
	fmt.Printf("No longer monitoring %s\n", args[0])
	return nil
}
