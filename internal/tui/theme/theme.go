// Package theme defines color themes for the spendr dashboard and tables.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceBright lipgloss.Color // Selected row, empty meter track
	Border        lipgloss.Color // Card borders
	BorderAccent  lipgloss.Color // Focused cards, dialogs
	TextDim       lipgloss.Color // Hints
	TextMuted     lipgloss.Color // Labels, secondary values
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color // Active tab, headers, key hints
	AccentBright  lipgloss.Color
	Green         lipgloss.Color // Amounts
	GreenBright   lipgloss.Color // Totals, success
	Orange        lipgloss.Color // Warnings
	Red           lipgloss.Color // Errors, month-over-month increase
	Blue          lipgloss.Color // Daily and monthly charts
	Yellow        lipgloss.Color // Busy indicator
	Magenta       lipgloss.Color // Weekday bars
	Cyan          lipgloss.Color

	// Categories colors category slices, legends and meters in order of
	// spending.
	Categories []lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    "#100F0F",
	Surface:       "#1C1B1A",
	SurfaceBright: "#343331",
	Border:        "#403E3C",
	BorderAccent:  "#3AA99F",
	TextDim:       "#575653",
	TextMuted:     "#878580",
	TextPrimary:   "#FFFCF0",
	Accent:        "#3AA99F",
	AccentBright:  "#5BC8BE",
	Green:         "#879A39",
	GreenBright:   "#A3B859",
	Orange:        "#DA702C",
	Red:           "#D14D41",
	Blue:          "#4385BE",
	Yellow:        "#D0A215",
	Magenta:       "#CE5D97",
	Cyan:          "#24837B",
	Categories: []lipgloss.Color{
		"#3AA99F", "#DA702C", "#4385BE", "#879A39",
		"#CE5D97", "#D0A215", "#8B7EC8", "#D14D41",
	},
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    "#1E1E2E",
	Surface:       "#313244",
	SurfaceBright: "#585B70",
	Border:        "#585B70",
	BorderAccent:  "#89B4FA",
	TextDim:       "#6C7086",
	TextMuted:     "#A6ADC8",
	TextPrimary:   "#CDD6F4",
	Accent:        "#89B4FA",
	AccentBright:  "#B4D0FB",
	Green:         "#A6E3A1",
	GreenBright:   "#C6F6C1",
	Orange:        "#FAB387",
	Red:           "#F38BA8",
	Blue:          "#89B4FA",
	Yellow:        "#F9E2AF",
	Magenta:       "#F5C2E7",
	Cyan:          "#94E2D5",
	Categories: []lipgloss.Color{
		"#89B4FA", "#FAB387", "#A6E3A1", "#F5C2E7",
		"#F9E2AF", "#94E2D5", "#CBA6F7", "#F38BA8",
	},
}

// TokyoNight is a cool blue/purple theme inspired by Tokyo city lights.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    "#1A1B26",
	Surface:       "#24283B",
	SurfaceBright: "#414868",
	Border:        "#565F89",
	BorderAccent:  "#7AA2F7",
	TextDim:       "#565F89",
	TextMuted:     "#A9B1D6",
	TextPrimary:   "#C0CAF5",
	Accent:        "#7AA2F7",
	AccentBright:  "#A9C1FF",
	Green:         "#9ECE6A",
	GreenBright:   "#B9E87A",
	Orange:        "#FF9E64",
	Red:           "#F7768E",
	Blue:          "#7AA2F7",
	Yellow:        "#E0AF68",
	Magenta:       "#BB9AF7",
	Cyan:          "#7DCFFF",
	Categories: []lipgloss.Color{
		"#7AA2F7", "#FF9E64", "#9ECE6A", "#BB9AF7",
		"#E0AF68", "#7DCFFF", "#2AC3DE", "#F7768E",
	},
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    "0",
	Surface:       "0",
	SurfaceBright: "8",
	Border:        "8",
	BorderAccent:  "6",
	TextDim:       "8",
	TextMuted:     "7",
	TextPrimary:   "15",
	Accent:        "6",
	AccentBright:  "14",
	Green:         "2",
	GreenBright:   "10",
	Orange:        "3",
	Red:           "1",
	Blue:          "4",
	Yellow:        "3",
	Magenta:       "5",
	Cyan:          "6",
	Categories: []lipgloss.Color{
		"6", "3", "4", "2", "5", "14", "12", "1",
	},
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Lookup returns the theme with the given name.
func Lookup(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return FlexokiDark
}

// Names lists the available theme names.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// CategoryColor picks the color of the i-th category. The palette cycles.
func (t Theme) CategoryColor(i int) lipgloss.Color {
	if len(t.Categories) == 0 {
		return t.Accent
	}
	if i < 0 {
		i = -i
	}
	return t.Categories[i%len(t.Categories)]
}
