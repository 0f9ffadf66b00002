package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPink).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	priceStyle    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Background(colorSurface0).Foreground(colorLavender).Bold(true)
	rowStyle      = lipgloss.NewStyle().Foreground(colorText)
	helpStyle     = lipgloss.NewStyle().Foreground(colorOverlay0).MarginTop(1)
	statusStyle   = lipgloss.NewStyle().Foreground(colorBlue)
	errorStyle    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	focusedField  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorLavender).Padding(0, 1).Width(40)
	blurredField  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorOverlay0).Padding(0, 1).Width(40)
	detailBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorPink).Padding(1, 3)
	placeholderFg = lipgloss.NewStyle().Foreground(colorOverlay0)
)
