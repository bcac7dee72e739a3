package geometry

import (
	"math"
)

// Vector is a 2D point or displacement. Operations never mutate the receiver.
type Vector struct {
	X float64
	Y float64
}

// VectorFromAngle returns the unit vector pointing at angle radians
func VectorFromAngle(angle float64) Vector {
	return Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) MultiplyScalar(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// Length calculates the euclidean length of a vector
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the direction of v.
// The zero vector has no direction and normalizes to itself.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{0, 0}
	}
	return Vector{v.X / length, v.Y / length}
}

// ToAngle returns the heading of v in radians, in (-π, π]
func (v Vector) ToAngle() float64 {
	return math.Atan2(v.Y, v.X)
}

// DotProduct calculates the dot product of two vectors
func (v Vector) DotProduct(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// reflected = incident - 2*(incident·normal)*normal
func (v Vector) Reflect(normal Vector) Vector {
	dotProduct := v.DotProduct(normal)

	return Vector{
		X: v.X - 2*dotProduct*normal.X,
		Y: v.Y - 2*dotProduct*normal.Y,
	}
}

// AngleTo calculates the unsigned angle between this vector and another vector in radians
func (v Vector) AngleTo(other Vector) float64 {
	if v.Length() == 0 || other.Length() == 0 {
		return 0
	}

	// cos(θ) = Â · B̂
	cosTheta := v.Normalize().DotProduct(other.Normalize())

	// Clamp to [-1, 1] to absorb rounding
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	return math.Acos(cosTheta)
}

// Distance returns the length of the segment between a and b
func Distance(a, b Vector) float64 {
	return b.Subtract(a).Length()
}
