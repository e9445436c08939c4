package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleName   = lipgloss.NewStyle().Padding(0, 1)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1).Align(lipgloss.Right)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
	styleRoot   = lipgloss.NewStyle().Foreground(colorGray).Italic(true)
)
