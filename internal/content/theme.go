package content

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorAxis    lipgloss.Color = "#585b70"
	colorBlue    lipgloss.Color = "#89b4fa"
	colorGreen   lipgloss.Color = "#a6e3a1"
	colorPeach   lipgloss.Color = "#fab387"
	colorMauve   lipgloss.Color = "#cba6f7"
	colorOverlay lipgloss.Color = "#7f849c"
)
