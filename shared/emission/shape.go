// Package emission describes particle emission shapes and samples spawn
// positions and velocities from them. Shapes are a closed set of variants
// selected by ShapeKind; adding a shape means adding a variant and a case in
// Program.Sample.
package emission

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidShape = errors.New("emission: invalid shape")

// Vec3 is a point or direction in an emitter's local space. Y is the emitter's
// "up" axis; Z points out of the 2D plane and is dropped on placement.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota + 1
	ShapeCone
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeCone:
		return "cone"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// ParseShapeKind maps a configuration name to a ShapeKind.
func ParseShapeKind(name string) (ShapeKind, error) {
	switch name {
	case "circle":
		return ShapeCircle, nil
	case "cone":
		return ShapeCone, nil
	}
	return 0, fmt.Errorf("%w: unknown shape %q", ErrInvalidShape, name)
}

// Circle emits in the XY plane around the origin, outward from the centre.
type Circle struct {
	Radius  float64
	Surface bool // rim only; otherwise uniform over the disk
}

// Cone is a (possibly truncated) cone whose apex-side cap sits at the origin
// and whose base is Height units along +Y.
type Cone struct {
	Height     float64
	BaseRadius float64
	TopRadius  float64 // 0 = apex
}

// Shape is a tagged union; only the field matching Kind is read.
type Shape struct {
	Kind   ShapeKind
	Circle Circle
	Cone   Cone
}

func CircleShape(c Circle) Shape {
	return Shape{Kind: ShapeCircle, Circle: c}
}

func ConeShape(c Cone) Shape {
	return Shape{Kind: ShapeCone, Cone: c}
}

func (s Shape) validate() error {
	switch s.Kind {
	case ShapeCircle:
		if s.Circle.Radius < 0 || math.IsNaN(s.Circle.Radius) {
			return fmt.Errorf("%w: circle radius %v", ErrInvalidShape, s.Circle.Radius)
		}
	case ShapeCone:
		c := s.Cone
		if c.Height <= 0 || math.IsNaN(c.Height) {
			return fmt.Errorf("%w: cone height %v", ErrInvalidShape, c.Height)
		}
		if c.BaseRadius < 0 || c.TopRadius < 0 {
			return fmt.Errorf("%w: cone radii %v/%v", ErrInvalidShape, c.BaseRadius, c.TopRadius)
		}
	default:
		return fmt.Errorf("%w: kind %v", ErrInvalidShape, s.Kind)
	}
	return nil
}
