package game

import (
	"cmp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/zombieconga/geometry"
)

// getCurrentMousePosition returns the cursor position kept inside the screen
func getCurrentMousePosition(size Size) geometry.Vector {
	mouseX, mouseY := ebiten.CursorPosition()
	return geometry.Vector{
		X: clampValue(float64(mouseX), 0, size.Width),
		Y: clampValue(float64(mouseY), 0, size.Height),
	}
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}
