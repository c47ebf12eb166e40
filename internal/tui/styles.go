package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

// cardColors maps palette tags to terminal colors
var cardColors = map[string]lipgloss.Color{
	"Card-1": lipgloss.Color("203"),
	"Card-2": lipgloss.Color("214"),
	"Card-3": lipgloss.Color("227"),
	"Card-4": lipgloss.Color("114"),
	"Card-5": lipgloss.Color("81"),
	"Card-6": lipgloss.Color("141"),
	"Card-7": lipgloss.Color("211"),
}

// CardColor returns the terminal color for a palette tag. Unknown tags render gray.
func CardColor(color string) lipgloss.Color {
	if c, ok := cardColors[color]; ok {
		return c
	}
	return lipgloss.Color("240")
}

// Swatch renders a colored block for a palette tag
func Swatch(color string) string {
	return lipgloss.NewStyle().Foreground(CardColor(color)).Render("■")
}
