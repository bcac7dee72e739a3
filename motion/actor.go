package motion

import "github.com/meghashyamc/zombieconga/geometry"

// Actor is anything on screen that moves and turns: position in pixels,
// velocity in pixels per second and rotation in radians.
type Actor struct {
	Position geometry.Vector
	Velocity geometry.Vector
	Rotation float64
}

// MoveToward steers the actor straight at target at the given speed for dt seconds.
// It lands on target instead of overshooting and stops once there.
func (a *Actor) MoveToward(target geometry.Vector, speed, dt float64) {
	offset := target.Subtract(a.Position)
	step := speed * dt
	if offset.Length() <= step {
		a.Position = target
		a.Velocity = geometry.Vector{}
		return
	}

	a.Velocity = offset.Normalize().MultiplyScalar(speed)
	a.Position = a.Position.Add(a.Velocity.MultiplyScalar(dt))
}

// Drift moves the actor along its current velocity for dt seconds
func (a *Actor) Drift(dt float64) {
	a.Position = a.Position.Add(a.Velocity.MultiplyScalar(dt))
}

// TurnToward rotates toward angle by at most turnRate*dt radians
func (a *Actor) TurnToward(angle, turnRate, dt float64) {
	a.Rotation = geometry.RotateToward(a.Rotation, angle, turnRate*dt)
}
