package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	CineRed   = lipgloss.Color("#E50914")
	DarkRed   = lipgloss.Color("#B81C24")
	SlateDark = lipgloss.Color("#1F2937")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
	Green     = lipgloss.Color("#10B981")
	Yellow    = lipgloss.Color("#F5BE47")
	Blue      = lipgloss.Color("#3B82F6")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(CineRed)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(CineRed)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(CineRed).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(DarkRed).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(CineRed).
			Bold(true).
			Padding(0, 2)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(CineRed)

	FilterStyle = lipgloss.NewStyle().
			Foreground(White)
)

// Status label colors keyed by watchlist status
var (
	StatusPlanStyle     = lipgloss.NewStyle().Foreground(Blue)
	StatusWatchingStyle = lipgloss.NewStyle().Foreground(Yellow)
	StatusWatchedStyle  = lipgloss.NewStyle().Foreground(Green)
)

// Bar styles for the stats charts
var (
	BarStyle      = lipgloss.NewStyle().Foreground(CineRed)
	BarAltStyle   = lipgloss.NewStyle().Foreground(DarkRed)
	BarLabelStyle = lipgloss.NewStyle().Foreground(LightGray)
)
