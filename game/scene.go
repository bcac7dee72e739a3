package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/zombieconga/geometry"
)

type Size struct {
	Width  float64
	Height float64
}

func (s Size) Center() geometry.Vector {
	return geometry.Vector{X: s.Width / 2, Y: s.Height / 2}
}

// Scene is one screen of the game. Update runs once per tick with the cursor
// position in screen coordinates. Reset replays the scene from the start.
type Scene interface {
	Update(cursor geometry.Vector) error
	Draw(screen *ebiten.Image)
	Done() bool
	Reset()
}
