package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	ColorRed     = lipgloss.Color("#FF0000")
	ColorGreen   = lipgloss.Color("#00FF00")
	ColorYellow  = lipgloss.Color("#FFFF00")
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorMagenta = lipgloss.Color("#FF00FF")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	PanelTitleActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorCyan)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorGray).
				Italic(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)
)

// Status badge styles, keyed by the badge class of a recording status.
var (
	BadgeSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorGreen).
				Bold(true)

	BadgeWarningStyle = lipgloss.NewStyle().
				Foreground(ColorYellow).
				Bold(true)

	BadgeDangerStyle = lipgloss.NewStyle().
				Foreground(ColorRed).
				Bold(true)

	BadgeInfoStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)
)

// Badge returns the style for a badge class (success, warning, danger, info).
func Badge(class string) lipgloss.Style {
	switch class {
	case "success":
		return BadgeSuccessStyle
	case "warning":
		return BadgeWarningStyle
	case "danger":
		return BadgeDangerStyle
	default:
		return BadgeInfoStyle
	}
}

// Sentiment styles, keyed by sentiment class.
var (
	SentimentPositiveStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	SentimentNeutralStyle = lipgloss.NewStyle().
				Foreground(ColorYellow)

	SentimentNegativeStyle = lipgloss.NewStyle().
				Foreground(ColorRed)
)

// Sentiment returns the style for a sentiment class (positive, neutral,
// negative).
func Sentiment(class string) lipgloss.Style {
	switch class {
	case "positive":
		return SentimentPositiveStyle
	case "negative":
		return SentimentNegativeStyle
	default:
		return SentimentNeutralStyle
	}
}

// Toast notification styles, keyed by notification type.
var (
	ToastSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorGreen).
				Bold(true)

	ToastErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	ToastWarningStyle = lipgloss.NewStyle().
				Foreground(ColorYellow).
				Bold(true)

	ToastInfoStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)
)

// Toast returns the style for a notification type (success, error, warning,
// info).
func Toast(kind string) lipgloss.Style {
	switch kind {
	case "success":
		return ToastSuccessStyle
	case "error":
		return ToastErrorStyle
	case "warning":
		return ToastWarningStyle
	default:
		return ToastInfoStyle
	}
}

// Form styles.
var (
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	FieldLabelActiveStyle = lipgloss.NewStyle().
				Foreground(ColorCyan).
				Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	ButtonActiveStyle = lipgloss.NewStyle().
				Foreground(ColorCyan).
				Bold(true).
				Underline(true)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorDimGray)
)

// Progress bar styles for the upload page.
var (
	ProgressFillStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(ColorGray)
)

// Chart styles for the dashboard meters.
var (
	ChartBarStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ChartLabelStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

// Connection status styles for the 4COM page.
var (
	StatusConnectedStyle = lipgloss.NewStyle().
				Foreground(ColorGreen).
				Bold(true)

	StatusDisconnectedStyle = lipgloss.NewStyle().
				Foreground(ColorRed).
				Bold(true)
)
