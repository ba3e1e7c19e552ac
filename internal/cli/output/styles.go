package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by text output.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	FilePath lipgloss.Style
	Check    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles builds styles bound to a lipgloss renderer.
func NewStyles(lip *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1:  lip.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2:  lip.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:     lip.NewStyle().Bold(true),
		Muted:    lip.NewStyle().Foreground(lipgloss.Color("8")),
		FilePath: lip.NewStyle().Bold(true).Underline(true),
		Check:    lip.NewStyle().Foreground(lipgloss.Color("13")),
		Success:  lip.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:  lip.NewStyle().Foreground(lipgloss.Color("11")),
		Error:    lip.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}
