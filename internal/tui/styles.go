package tui

import "github.com/charmbracelet/lipgloss"

var (
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	activeTag     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("36"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	focusedPane = paneStyle.BorderForeground(lipgloss.Color("62"))
)
