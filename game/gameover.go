package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/meghashyamc/zombieconga/assets"
	"github.com/meghashyamc/zombieconga/geometry"
	"github.com/meghashyamc/zombieconga/logger"
	"github.com/meghashyamc/zombieconga/motion"
)

const (
	wonMessage  = "You Win!"
	lostMessage = "You Lose!"
	restartHint = "Press R to play again"

	zombieSpeed    = 180.0       // pixels per second
	zombieTurnRate = 4 * math.Pi // radians per second
	zombieMinPace  = 0.25        // fraction of zombieSpeed while facing away

	confettiCount      = 60
	confettiGravity    = 90.0 // pixels per second squared
	confettiMinSpeed   = 40
	confettiMaxSpeed   = 140
	confettiMaxSpin    = 6.0
	defaultShowingTime = 3 * time.Second
)

var (
	wonColor  = color.RGBA{80, 220, 100, 255}
	lostColor = color.RGBA{230, 50, 50, 255}

	confettiPalette = []color.RGBA{
		{255, 90, 90, 255},
		{255, 210, 60, 255},
		{90, 200, 255, 255},
		{170, 110, 255, 255},
		{110, 240, 140, 255},
	}
)

type confetto struct {
	motion.Actor
	spin float64
	tint color.RGBA
}

// GameOverScene is shown when a round ends. The won flag picks the presentation:
// a confetti shower for a win, a zombie chasing the cursor for a loss.
type GameOverScene struct {
	size     Size
	won      bool
	timer    *motion.Timer
	rng      *geometry.Rand
	logger   logger.Logger
	zombie   motion.Actor
	confetti []*confetto
}

type GameOverOption func(*GameOverScene)

// WithDuration sets how long the scene plays before it reports Done
func WithDuration(d time.Duration) GameOverOption {
	return func(s *GameOverScene) {
		s.timer = motion.NewTimer(d)
	}
}

func WithRand(rng *geometry.Rand) GameOverOption {
	return func(s *GameOverScene) {
		s.rng = rng
	}
}

func WithLogger(l logger.Logger) GameOverOption {
	return func(s *GameOverScene) {
		s.logger = l
	}
}

func NewGameOverScene(size Size, won bool, opts ...GameOverOption) *GameOverScene {
	s := &GameOverScene{
		size:  size,
		won:   won,
		timer: motion.NewTimer(defaultShowingTime),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = geometry.DefaultRand()
	}
	if s.logger == nil {
		s.logger = logger.New()
	}

	s.place()
	s.logger.Debug("game over scene created", "won", won, "width", size.Width, "height", size.Height)
	return s
}

// Reset rewinds the timer and puts the zombie or the confetti back at their start
func (s *GameOverScene) Reset() {
	s.timer.Reset()
	s.place()
	s.logger.Debug("game over scene reset", "won", s.won)
}

func (s *GameOverScene) place() {
	if s.won {
		s.confetti = make([]*confetto, 0, confettiCount)
		for iter := 0; iter < confettiCount; iter++ {
			c := &confetto{}
			s.launch(c, -s.size.Height)
			s.confetti = append(s.confetti, c)
		}
		return
	}

	// Zombie shambles in from the left edge
	s.zombie = motion.Actor{
		Position: geometry.Vector{X: -assets.ZombieSize, Y: s.size.Height / 2},
	}
}

func (s *GameOverScene) Won() bool {
	return s.won
}

func (s *GameOverScene) Done() bool {
	return s.timer.IsReady()
}

func (s *GameOverScene) Message() string {
	if s.won {
		return wonMessage
	}
	return lostMessage
}

func (s *GameOverScene) Update(cursor geometry.Vector) error {
	wasDone := s.Done()
	s.timer.Update()
	if !wasDone && s.Done() {
		s.logger.Debug("game over scene finished", "won", s.won)
	}

	dt := motion.FrameTime.Seconds()
	if s.won {
		s.updateConfetti(dt)
		return nil
	}

	s.updateZombie(cursor, dt)
	return nil
}

func (s *GameOverScene) updateZombie(cursor geometry.Vector, dt float64) {
	offset := cursor.Subtract(s.zombie.Position)
	if offset.Length() > 0 {
		s.zombie.TurnToward(offset.ToAngle(), zombieTurnRate, dt)
	}

	// Shuffles slower while still turning to face the cursor
	facing := geometry.VectorFromAngle(s.zombie.Rotation)
	pace := max(zombieMinPace, 1-facing.AngleTo(offset)/math.Pi)
	s.zombie.MoveToward(cursor, zombieSpeed*pace, dt)
}

func (s *GameOverScene) updateConfetti(dt float64) {
	for _, c := range s.confetti {
		c.Velocity.Y += confettiGravity * dt
		c.Drift(dt)
		c.Rotation += c.spin * dt
		s.bounceOffSides(c)

		// Pieces that fall out of view rain down again from above the screen
		if c.Position.Y > s.size.Height+assets.ConfettiSize {
			s.launch(c, -assets.ConfettiSize)
		}
	}
}

// bounceOffSides mirrors a piece's sideways motion when it drifts into a screen edge
func (s *GameOverScene) bounceOffSides(c *confetto) {
	var wall geometry.Vector
	switch {
	case c.Position.X < 0:
		wall = geometry.Vector{X: 1}
	case c.Position.X > s.size.Width:
		wall = geometry.Vector{X: -1}
	default:
		return
	}

	c.Position.X = clampValue(c.Position.X, 0, s.size.Width)
	if c.Velocity.DotProduct(wall) < 0 {
		c.Velocity = c.Velocity.Reflect(wall)
	}
}

// launch places c at a random column above the screen, no higher than top,
// falling at a random downward angle
func (s *GameOverScene) launch(c *confetto, top float64) {
	c.Position = geometry.Vector{
		X: s.rng.Range(0, s.size.Width),
		Y: s.rng.Range(top, 0),
	}
	direction := geometry.VectorFromAngle(s.rng.Uniform(math.Pi/3, 2*math.Pi/3))
	c.Velocity = direction.MultiplyScalar(s.rng.Range(confettiMinSpeed, confettiMaxSpeed))
	c.Rotation = s.rng.Uniform(-math.Pi, math.Pi)
	c.spin = s.rng.Uniform(-confettiMaxSpin, confettiMaxSpin)
	c.tint = confettiPalette[int(s.rng.Range(0, float64(len(confettiPalette))))]
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	if s.won {
		sprite := assets.ConfettiSprite()
		for _, c := range s.confetti {
			op := spriteOptions(sprite, c.Actor)
			op.ColorScale.ScaleWithColor(c.tint)
			screen.DrawImage(sprite, op)
		}
	} else {
		sprite := assets.ZombieSprite()
		screen.DrawImage(sprite, spriteOptions(sprite, s.zombie))
	}

	messageColor := lostColor
	if s.won {
		messageColor = wonColor
	}

	// Headline fades in over the first half of the scene
	center := s.size.Center()
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(center.X, center.Y-40)
	op.ColorScale.ScaleWithColor(messageColor)
	op.ColorScale.ScaleAlpha(float32(min(s.timer.Progress()*2, 1)))
	text.Draw(screen, s.Message(), assets.TitleFont, op)

	if s.Done() {
		op2 := &text.DrawOptions{}
		op2.PrimaryAlign = text.AlignCenter
		op2.GeoM.Translate(center.X, center.Y+40)
		op2.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, restartHint, assets.HintFont, op2)
	}
}

// spriteOptions centres sprite on the actor and rotates it to the actor's heading
func spriteOptions(sprite *ebiten.Image, a motion.Actor) *ebiten.DrawImageOptions {
	bounds := sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Rotate(a.Rotation)
	op.GeoM.Translate(a.Position.X, a.Position.Y)
	return op
}
