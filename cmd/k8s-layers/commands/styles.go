package commands

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Width(16)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7AA2F7"))
	defaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ECE6A")).Bold(true)
)

func field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value)) + "\n"
}
