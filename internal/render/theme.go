package render

import "github.com/charmbracelet/lipgloss"

// Theme holds the ANSI 256 palette used by the text renderer.
type Theme struct {
	Title       lipgloss.Color
	FaintText   lipgloss.Color
	Header      lipgloss.Color
	ZebraStripe lipgloss.Color
	Border      lipgloss.Color
	Skeleton    lipgloss.Color

	// Tones maps the semantic cell tones to colors.
	Tones map[string]lipgloss.Color
}

var DefaultTheme = Theme{
	Title:       lipgloss.Color("255"),
	FaintText:   lipgloss.Color("245"),
	Header:      lipgloss.Color("110"),
	ZebraStripe: lipgloss.Color("235"),
	Border:      lipgloss.Color("240"),
	Skeleton:    lipgloss.Color("238"),
	Tones: map[string]lipgloss.Color{
		"green":   lipgloss.Color("35"),
		"emerald": lipgloss.Color("36"),
		"yellow":  lipgloss.Color("178"),
		"amber":   lipgloss.Color("214"),
		"orange":  lipgloss.Color("208"),
		"red":     lipgloss.Color("196"),
		"rose":    lipgloss.Color("204"),
		"blue":    lipgloss.Color("33"),
		"purple":  lipgloss.Color("135"),
		"indigo":  lipgloss.Color("63"),
		"slate":   lipgloss.Color("67"),
		"gray":    lipgloss.Color("244"),
	},
}

// ToneColor reports the color for a tone. Unknown tones render unstyled.
func (theme Theme) ToneColor(tone string) (lipgloss.Color, bool) {
	color, ok := theme.Tones[tone]
	return color, ok
}
