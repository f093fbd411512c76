package render

// Palette maps particle color indices to RGB. Index PaletteAccent is
// reserved for accent particles and is replaced by the configured accent
// color at startup.
type Palette [PaletteSize]RGB

const (
	PaletteSize   = 5
	PaletteAccent = PaletteSize - 1
)

// Base field tones: cool and dim so connection lines and accents read on top.
// Minimum channel floors prevent perceptual blackout at low alpha.
var basePalette = Palette{
	{90, 120, 210},  // Soft blue
	{70, 170, 190},  // Teal
	{130, 100, 200}, // Violet
	{150, 160, 180}, // Dust gray
	{255, 170, 80},  // Accent slot, replaced via NewPalette
}

// NewPalette returns the base palette with the accent slot set
func NewPalette(accent RGB) Palette {
	p := basePalette
	p[PaletteAccent] = accent
	return p
}
