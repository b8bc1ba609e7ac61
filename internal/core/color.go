package core

// Color is a palette entry for a screen cell or a window sprite.
// The terminal host maps it to an ANSI code, the window host to RGB.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
	colorCount
)

// ANSI returns the terminal 256-colour code for this entry.
// The default entry returns an empty string.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorBrightRed:
		return "9"
	case ColorBrightYellow:
		return "11"
	case ColorBrightCyan:
		return "14"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}

var palette = [colorCount][3]uint8{
	ColorDefault:      {20, 20, 20},
	ColorRed:          {205, 49, 49},
	ColorGreen:        {13, 188, 121},
	ColorYellow:       {229, 229, 16},
	ColorBlue:         {36, 114, 200},
	ColorMagenta:      {188, 63, 188},
	ColorCyan:         {17, 168, 205},
	ColorWhite:        {229, 229, 229},
	ColorBrightRed:    {241, 76, 76},
	ColorBrightYellow: {245, 245, 67},
	ColorBrightCyan:   {41, 184, 219},
	ColorOrange:       {255, 135, 0},
	ColorGray:         {138, 138, 138},
}

// RGB returns the 8-bit red, green and blue components.
func (c Color) RGB() (r, g, b uint8) {
	if c >= colorCount {
		c = ColorDefault
	}
	p := palette[c]
	return p[0], p[1], p[2]
}
