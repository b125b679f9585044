package match

import (
	"fmt"
	"math"
)

// HalfLength is the half extent of the field along X. Y (and Z in 3D
// matches) use the per-match bound.
const HalfLength = 100.0

// MaxGoals is the size of the fixed goal table.
const MaxGoals = 6

type Vec3 struct{ X, Y, Z float64 }

func (a Vec3) Add(b Vec3) Vec3       { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3       { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Dot(b Vec3) float64    { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) Len() float64          { return math.Sqrt(a.Dot(a)) }
func (a Vec3) Scale(s float64) Vec3  { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Planar(b Vec3) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }
func (a Vec3) IsZero() bool          { return a.X == 0 && a.Y == 0 && a.Z == 0 }
func (a Vec3) Norm() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Bounds holds the half extents of the field per axis.
type Bounds struct{ X, Y, Z float64 }

func (b Bounds) Clamp(p Vec3) Vec3 {
	return Vec3{clamp(p.X, b.X), clamp(p.Y, b.Y), clamp(p.Z, b.Z)}
}

func clamp(v, bound float64) float64 {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}
	return v
}

func Distance(a, b Vec3) float64 { return a.Sub(b).Len() }

// DistanceToSegment is the distance from p to the closest point of the
// segment a-b (not its infinite extension).
func DistanceToSegment(p, a, b Vec3) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return Distance(p, a)
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Distance(p, a.Add(ab.Scale(t)))
}

// Direction returns the unit vector from -> to, or the zero vector when
// both points coincide.
func Direction(from, to Vec3) Vec3 { return to.Sub(from).Norm() }

func ClampedMove(pos, delta Vec3, b Bounds) Vec3 { return b.Clamp(pos.Add(delta)) }

// GoalCoordinates looks up one of the six goal slots: two per axis.
func GoalCoordinates(idx int, b Bounds) (Vec3, error) {
	switch idx {
	case 0:
		return Vec3{Y: -b.Y}, nil
	case 1:
		return Vec3{Y: b.Y}, nil
	case 2:
		return Vec3{X: b.X}, nil
	case 3:
		return Vec3{X: -b.X}, nil
	case 4:
		return Vec3{Z: b.Z}, nil
	case 5:
		return Vec3{Z: -b.Z}, nil
	}
	return Vec3{}, fmt.Errorf("goal %d: %w", idx, ErrInvalidGoalIndex)
}
