package emission

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Source supplies uniform samples in [0, 1). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	Float64() float64
}

// Spawner controls how many particles an instance emits.
type Spawner struct {
	Rate  float64 // particles per second while the instance lives
	Burst int     // particles emitted once at spawn
}

// Gradient interpolates an RGBA colour (0..1 channels) over a particle's life.
type Gradient struct {
	Start, End [4]float64
	Ease       ease.TweenFunc // nil = linear
}

// At evaluates the gradient at life fraction f in [0, 1].
func (g Gradient) At(f float64) [4]float64 {
	fn := g.Ease
	if fn == nil {
		fn = ease.Linear
	}
	f = clamp01(f)
	var out [4]float64
	for i := range out {
		out[i] = float64(fn(float32(f), float32(g.Start[i]), float32(g.End[i]-g.Start[i]), 1))
	}
	return out
}

// SizeCurve interpolates particle size over life.
type SizeCurve struct {
	Start, End float64
	Ease       ease.TweenFunc
}

func (s SizeCurve) At(f float64) float64 {
	fn := s.Ease
	if fn == nil {
		fn = ease.Linear
	}
	return float64(fn(float32(clamp01(f)), float32(s.Start), float32(s.End-s.Start), 1))
}

// Descriptor is the immutable specification of an effect.
type Descriptor struct {
	Name             string
	Capacity         int
	Spawner          Spawner
	ParticleLifetime float64
	Shape            Shape
	SpeedMin         float64
	SpeedMax         float64
	Color            Gradient
	Size             SizeCurve
}

// Program is a validated descriptor ready for sampling. It is never mutated
// after Compile and may be shared by any number of effect instances.
type Program struct {
	desc Descriptor
}

// Compile validates d.
func Compile(d Descriptor) (*Program, error) {
	if err := d.Shape.validate(); err != nil {
		return nil, fmt.Errorf("emission: compile %q: %w", d.Name, err)
	}
	if d.SpeedMin < 0 || d.SpeedMax < d.SpeedMin {
		return nil, fmt.Errorf("emission: compile %q: %w: speed range [%v, %v]", d.Name, ErrInvalidShape, d.SpeedMin, d.SpeedMax)
	}
	if d.ParticleLifetime <= 0 {
		return nil, fmt.Errorf("emission: compile %q: %w: particle lifetime %v", d.Name, ErrInvalidShape, d.ParticleLifetime)
	}
	if d.Capacity <= 0 {
		return nil, fmt.Errorf("emission: compile %q: %w: capacity %d", d.Name, ErrInvalidShape, d.Capacity)
	}
	if d.Spawner.Rate < 0 || d.Spawner.Burst < 0 {
		return nil, fmt.Errorf("emission: compile %q: %w: spawner %+v", d.Name, ErrInvalidShape, d.Spawner)
	}
	return &Program{desc: d}, nil
}

// Descriptor returns a copy of the compiled descriptor.
func (p *Program) Descriptor() Descriptor {
	return p.desc
}

// Sample is one particle's local spawn position and velocity.
type Sample struct {
	Position Vec3
	Velocity Vec3
}

// Sample draws one particle. It reads only p and src, so concurrent calls with
// independent sources are safe.
func (p *Program) Sample(src Source) Sample {
	return p.SampleUnits(src.Float64(), src.Float64(), src.Float64(), src.Float64())
}

// SampleUnits maps four uniform [0, 1) numbers to a particle: u1 height (or
// unused for circles), u2 radius, u3 azimuth, u4 speed.
func (p *Program) SampleUnits(u1, u2, u3, u4 float64) Sample {
	speed := p.desc.SpeedMin + (p.desc.SpeedMax-p.desc.SpeedMin)*u4
	theta := u3 * 2 * math.Pi
	sin, cos := math.Sincos(theta)

	switch p.desc.Shape.Kind {
	case ShapeCircle:
		c := p.desc.Shape.Circle
		r := c.Radius
		if !c.Surface {
			r *= math.Sqrt(u2)
		}
		return Sample{
			Position: Vec3{X: r * cos, Y: r * sin},
			Velocity: Vec3{X: cos * speed, Y: sin * speed},
		}
	case ShapeCone:
		return sampleCone(p.desc.Shape.Cone, u1, u2, sin, cos, speed)
	}
	return Sample{}
}

// sampleCone places a point uniformly by volume. The cross-section area grows
// with the square of the distance from the apex, so the height fraction is the
// cube root of a uniform draw; within a disk area grows with r², so the radius
// fraction is a square root.
func sampleCone(c Cone, u1, u2, sin, cos, speed float64) Sample {
	alphaH := math.Cbrt(u1)
	h := c.Height * alphaH
	r0 := c.TopRadius + (c.BaseRadius-c.TopRadius)*alphaH
	r := r0 * math.Sqrt(u2)

	pos := Vec3{X: r * cos, Y: h, Z: r * sin}

	// toward the lateral surface at the same height and azimuth
	out := Vec3{X: (r0 - r) * cos, Z: (r0 - r) * sin}
	l := out.Len()
	if l == 0 {
		out = Vec3{X: cos, Z: sin}
	} else {
		out = out.Scale(1 / l)
	}

	return Sample{Position: pos, Velocity: out.Scale(speed)}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
