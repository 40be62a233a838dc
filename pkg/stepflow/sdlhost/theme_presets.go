package sdlhost

// DefaultFontPath is where the stock theme looks for its font.
const DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"

// DarkTheme is a teal-on-charcoal theme.
func DarkTheme(fontPath string) Theme {
	return Theme{
		BackgroundColor: HexToColor(0x1E1E1E),
		CardColor:       HexToColor(0x2D2D2D),
		TextColor:       HexToColor(0xFFFFFF),
		HintColor:       HexToColor(0x9E9E9E),
		AccentColor:     HexToColor(0x008080),
		MutedColor:      HexToColor(0x555555),
		FontPath:        fontPath,
		TitleFontSize:   42,
		BodyFontSize:    26,
		Padding:         UniformPadding(32),
	}
}

// LightTheme is the same layout on a white background.
func LightTheme(fontPath string) Theme {
	theme := DarkTheme(fontPath)
	theme.BackgroundColor = HexToColor(0xFFFFFF)
	theme.CardColor = HexToColor(0xF2F2F2)
	theme.TextColor = HexToColor(0x000000)
	theme.HintColor = HexToColor(0x555555)
	theme.MutedColor = HexToColor(0xC8C8C8)
	return theme
}
