package display

import "github.com/charmbracelet/lipgloss"

// Styles contains styling for the terminal renderer
type Styles struct {
	Prompt      lipgloss.Style
	Error       lipgloss.Style
	Win         lipgloss.Style
	Lose        lipgloss.Style
	Tie         lipgloss.Style
	Banner      lipgloss.Style
	Info        lipgloss.Style
	Separator   lipgloss.Style
	CardRed     lipgloss.Style
	CardWhite   lipgloss.Style
	PlayerPanel lipgloss.Style
	DealerPanel lipgloss.Style
	Bankroll    lipgloss.Style
	GameOver    lipgloss.Style
}

// DefaultStyles creates the default set of styles
func DefaultStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Lose: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Tie: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")).
			Bold(true),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D063F5")).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardWhite: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		PlayerPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1),
		DealerPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D063F5")).
			Padding(0, 1),
		Bankroll: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		GameOver: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
	}
}
