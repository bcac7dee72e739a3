package assets

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	ZombieSize   = 48
	ConfettiSize = 10
)

var (
	TitleFont *text.GoTextFace
	HintFont  *text.GoTextFace

	spritesOnce    sync.Once
	zombieSprite   *ebiten.Image
	confettiSprite *ebiten.Image
)

func init() {
	TitleFont = loadFace(gobold.TTF, 64)
	HintFont = loadFace(goregular.TTF, 24)
}

// ZombieSprite is drawn facing along +X so it can be rotated by its heading
func ZombieSprite() *ebiten.Image {
	spritesOnce.Do(buildSprites)
	return zombieSprite
}

// ConfettiSprite is white so callers can tint it
func ConfettiSprite() *ebiten.Image {
	spritesOnce.Do(buildSprites)
	return confettiSprite
}

func loadFace(ttf []byte, size float64) *text.GoTextFace {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(err)
	}
	return &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
}

func buildSprites() {
	const half = ZombieSize / 2

	zombieSprite = ebiten.NewImage(ZombieSize, ZombieSize)
	vector.DrawFilledCircle(zombieSprite, half, half, half, color.RGBA{90, 160, 70, 255}, true)
	// Eyes sit on the leading (+X) side
	vector.DrawFilledCircle(zombieSprite, half+10, half-8, 5, color.RGBA{240, 240, 200, 255}, true)
	vector.DrawFilledCircle(zombieSprite, half+10, half+8, 5, color.RGBA{240, 240, 200, 255}, true)
	vector.DrawFilledCircle(zombieSprite, half+12, half-8, 2, color.RGBA{150, 0, 0, 255}, true)
	vector.DrawFilledCircle(zombieSprite, half+12, half+8, 2, color.RGBA{150, 0, 0, 255}, true)

	confettiSprite = ebiten.NewImage(ConfettiSize, ConfettiSize)
	vector.DrawFilledRect(confettiSprite, 0, 0, ConfettiSize, ConfettiSize, color.White, false)
}
