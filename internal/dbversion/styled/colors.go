package styled

import (
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/text"
)

// SuccessColor is used for the version line of a reachable database.
func SuccessColor() *color.Color {
	return color.New(color.FgGreen)
}

// FailureColor is used for the error line of an unreachable database.
func FailureColor() *color.Color {
	return color.New(color.FgRed, color.Bold)
}

// DimmedColor returns a dimmed *color.Color to print secondary information.
func DimmedColor() *color.Color {
	return color.RGB(128, 128, 128)
}

// DisableColors turns off the colors of both fatih/color and go-pretty.
func DisableColors() {
	color.NoColor = true
	text.DisableColors()
}
