package style

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary = lipgloss.Color("#7C3AED")
	Green   = lipgloss.Color("#10B981")
	Red     = lipgloss.Color("#EF4444")
	Yellow  = lipgloss.Color("#F59E0B")
	Dim     = lipgloss.Color("#6B7280")
	White   = lipgloss.Color("#F9FAFB")

	// Text styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Bold = lipgloss.NewStyle().Bold(true).Foreground(White)

	Healthy   = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Unhealthy = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Warning   = lipgloss.NewStyle().Foreground(Yellow)
	DimText   = lipgloss.NewStyle().Foreground(Dim)

	TableHeader = lipgloss.NewStyle().Bold(true).Foreground(Primary)

	// Status indicators
	DotHealthy   = Healthy.Render("●")
	DotUnhealthy = Unhealthy.Render("●")

	// Error box
	ErrorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1).
			MarginTop(1)
)

func StatusDot(healthy bool) string {
	if healthy {
		return DotHealthy
	}
	return DotUnhealthy
}
