package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/cli/style"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/status"
)

// timeLayout matches the board of the original web UI.
const timeLayout = "2006-01-02 15:04:05"

var boardCmd = &cobra.Command{
	Use:     "board",
	Short:   "Show the latest probe results",
	Aliases: []string{"status", "b"},
	RunE:    runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	results, err := client.Results()
	if err != nil {
		fmt.Println(style.ErrorBox.Render("Cannot reach monitor API at " + apiURL))
		return err
	}
	renderBoard(os.Stdout, results)
	return nil
}

func renderBoard(w io.Writer, results []domain.ProbeResult) {
	fmt.Fprintln(w, style.Title.Render("WEBSITE MONITOR"))

	if len(results) == 0 {
		fmt.Fprintln(w, style.DimText.Render("No results yet. Add a target with `webmon add <url>`."))
		return
	}

	fmt.Fprintln(w, style.TableHeader.Render(fmt.Sprintf("    %-42s %-5s %-24s %-6s %-9s %-19s  %s",
		"URL", "CODE", "DESCRIPTION", "STATE", "LATENCY", "CHECKED", "ERROR")))
	for _, r := range results {
		fmt.Fprintln(w, boardRow(r))
	}
}

// boardRow pads the plain cells first, then colors them, so ANSI escapes
// never skew the column widths.
func boardRow(r domain.ProbeResult) string {
	state := stateCell(r)
	stateStyled := style.Unhealthy.Render(fmt.Sprintf("%-6s", state))
	if r.Healthy() {
		stateStyled = style.Healthy.Render(fmt.Sprintf("%-6s", state))
	}

	code := fmt.Sprintf("%-5s", codeCell(r))
	if r.StatusCode != nil {
		code = codeStyle(*r.StatusCode).Render(code)
	} else {
		code = style.DimText.Render(code)
	}

	return fmt.Sprintf("  %s %-42s %s %-24s %s %-9s %-19s  %s",
		style.StatusDot(r.Healthy()),
		r.URL,
		code,
		r.StatusDescription,
		stateStyled,
		latencyCell(r),
		checkedCell(r),
		style.DimText.Render(r.Error),
	)
}

func codeStyle(code int) lipgloss.Style {
	switch status.FamilyOf(code) {
	case status.FamilySuccess:
		return style.Healthy
	case status.FamilyRedirection, status.FamilyInformational:
		return style.Warning
	default:
		return style.Unhealthy
	}
}

func codeCell(r domain.ProbeResult) string {
	if r.StatusCode == nil {
		return "-"
	}
	return strconv.Itoa(*r.StatusCode)
}

func stateCell(r domain.ProbeResult) string {
	if r.Healthy() {
		return "OK"
	}
	return "Error"
}

func latencyCell(r domain.ProbeResult) string {
	if r.AvgLatencySeconds == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2fs", *r.AvgLatencySeconds)
}

func checkedCell(r domain.ProbeResult) string {
	return r.CheckedAt.Local().Format(timeLayout)
}
