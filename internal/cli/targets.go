package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/cli/style"
)

var targetsCmd = &cobra.Command{
	Use:     "targets",
	Short:   "List the configured websites",
	Aliases: []string{"ls"},
	RunE:    runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	targets, err := client.ListTargets()
	if err != nil {
		fmt.Println(style.ErrorBox.Render("Cannot reach monitor API at " + apiURL))
		return err
	}
	if len(targets) == 0 {
		fmt.Println(style.DimText.Render("Nothing is monitored yet. Add a target with `webmon add <url>`."))
		return nil
	}

	fmt.Println(style.TableHeader.Render(fmt.Sprintf("  %-42s %-10s %s", "URL", "THRESHOLD", "ADDED")))
	for _, t := range targets {
		fmt.Printf("  %-42s %-10s %s\n",
			t.URL,
			fmt.Sprintf("%.2fs", t.EffectiveThreshold()),
			style.DimText.Render(t.CreatedAt.Local().Format(timeLayout)),
		)
	}
	return nil
}
