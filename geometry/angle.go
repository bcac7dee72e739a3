package geometry

import "math"

const fullTurn = 2 * math.Pi

// Sign returns 1 for zero and positive values, -1 otherwise
func Sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

// ShortestAngleBetween returns the signed rotation in radians that takes heading a
// to heading b along the shorter arc. The result is always in (-π, π]; a half
// turn is reported as +π.
func ShortestAngleBetween(a, b float64) float64 {
	angle := math.Mod(b-a, fullTurn)
	if angle > math.Pi {
		angle -= fullTurn
	} else if angle <= -math.Pi {
		angle += fullTurn
	}
	return angle
}

// RotateToward turns current toward target along the shortest arc by at most
// maxStep radians. It stops exactly on target rather than overshooting.
func RotateToward(current, target, maxStep float64) float64 {
	diff := ShortestAngleBetween(current, target)
	step := math.Min(math.Abs(maxStep), math.Abs(diff))
	return current + Sign(diff)*step
}
