package model

// ChecklistColor is the closed palette a checklist can be tinted with.
// The wire form is the symbolic name, e.g. "SOFT_BLUE".
type ChecklistColor string

const (
	ColorSoftBlue      ChecklistColor = "SOFT_BLUE"
	ColorCalmGreen     ChecklistColor = "CALM_GREEN"
	ColorGentlePurple  ChecklistColor = "GENTLE_PURPLE"
	ColorWarmPeach     ChecklistColor = "WARM_PEACH"
	ColorCoolMint      ChecklistColor = "COOL_MINT"
	ColorLightLavender ChecklistColor = "LIGHT_LAVENDER"
	ColorPaleYellow    ChecklistColor = "PALE_YELLOW"
	ColorSoftRose      ChecklistColor = "SOFT_ROSE"
)

type colorInfo struct {
	hex         string
	displayName string
}

var colorInfos = map[ChecklistColor]colorInfo{
	ColorSoftBlue:      {"#A8D5E2", "Soft Blue"},
	ColorCalmGreen:     {"#C8E6C9", "Calm Green"},
	ColorGentlePurple:  {"#D1C4E9", "Gentle Purple"},
	ColorWarmPeach:     {"#FFE0B2", "Warm Peach"},
	ColorCoolMint:      {"#B2DFDB", "Cool Mint"},
	ColorLightLavender: {"#E1BEE7", "Light Lavender"},
	ColorPaleYellow:    {"#FFF9C4", "Pale Yellow"},
	ColorSoftRose:      {"#F8BBD0", "Soft Rose"},
}

// ChecklistColors lists the palette in display order.
func ChecklistColors() []ChecklistColor {
	return []ChecklistColor{
		ColorSoftBlue, ColorCalmGreen, ColorGentlePurple, ColorWarmPeach,
		ColorCoolMint, ColorLightLavender, ColorPaleYellow, ColorSoftRose,
	}
}

// Valid reports whether c is a member of the palette.
func (c ChecklistColor) Valid() bool {
	_, ok := colorInfos[c]
	return ok
}

// Hex returns the color's hex value, e.g. "#A8D5E2".
func (c ChecklistColor) Hex() string { return colorInfos[c].hex }

// DisplayName returns the human-readable color name.
func (c ChecklistColor) DisplayName() string { return colorInfos[c].displayName }
