package emission

import (
	"errors"
	"math"
	"math/rand/v2"
	"sort"
	"testing"
)

const samples = 20000

func mustCompile(t *testing.T, d Descriptor) *Program {
	t.Helper()
	p, err := Compile(d)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return p
}

func coneDescriptor(h0, rb, rt float64) Descriptor {
	return Descriptor{
		Name:             "cone",
		Capacity:         16,
		ParticleLifetime: 1,
		Shape:            ConeShape(Cone{Height: h0, BaseRadius: rb, TopRadius: rt}),
		SpeedMin:         2,
		SpeedMax:         5,
	}
}

// ksDistance returns the Kolmogorov-Smirnov distance between the empirical
// distribution of xs and cdf.
func ksDistance(xs []float64, cdf func(float64) float64) float64 {
	sort.Float64s(xs)
	n := float64(len(xs))
	var d float64
	for i, x := range xs {
		f := cdf(x)
		d = math.Max(d, math.Abs(float64(i+1)/n-f))
		d = math.Max(d, math.Abs(f-float64(i)/n))
	}
	return d
}

func TestConeSamplerUniformByVolume(t *testing.T) {
	const h0, rb = 20.0, 12.0
	p := mustCompile(t, coneDescriptor(h0, rb, 0))
	rng := rand.New(rand.NewPCG(1, 2))

	heights := make([]float64, 0, samples)
	radii := make([]float64, 0, samples)
	var band []float64
	for i := 0; i < samples; i++ {
		s := p.Sample(rng)
		alphaH := s.Position.Y / h0
		heights = append(heights, alphaH)

		r0 := rb * alphaH
		if r0 < 1e-9 {
			continue
		}
		alphaR := math.Hypot(s.Position.X, s.Position.Z) / r0
		radii = append(radii, alphaR)
		if alphaH >= 0.7 && alphaH < 0.8 {
			band = append(band, alphaR)
		}
	}

	cube := func(x float64) float64 { return x * x * x }
	square := func(x float64) float64 { return x * x }
	linear := func(x float64) float64 { return x }

	if d := ksDistance(heights, cube); d > 0.02 {
		t.Fatalf("height fraction CDF deviates from x^3: D=%v", d)
	}
	if d := ksDistance(heights, linear); d < 0.2 {
		t.Fatalf("height fraction should not look uniform: D=%v", d)
	}
	if d := ksDistance(radii, square); d > 0.02 {
		t.Fatalf("radius fraction CDF deviates from x^2: D=%v", d)
	}
	if d := ksDistance(radii, linear); d < 0.15 {
		t.Fatalf("radius fraction should not look uniform: D=%v", d)
	}
	if len(band) < 1000 {
		t.Fatalf("expected a populated height band, got %d samples", len(band))
	}
	if d := ksDistance(band, square); d > 0.05 {
		t.Fatalf("radius fraction at fixed height deviates from x^2: D=%v", d)
	}
}

func TestConeSamplerStaysInsideTruncatedCone(t *testing.T) {
	const h0, rb, rt = 10.0, 8.0, 2.0
	p := mustCompile(t, coneDescriptor(h0, rb, rt))
	rng := rand.New(rand.NewPCG(7, 7))

	for i := 0; i < 2000; i++ {
		s := p.Sample(rng)
		if s.Position.Y < 0 || s.Position.Y > h0 {
			t.Fatalf("height %v outside [0, %v]", s.Position.Y, h0)
		}
		alphaH := s.Position.Y / h0
		r0 := rt + (rb-rt)*alphaH
		if r := math.Hypot(s.Position.X, s.Position.Z); r > r0+1e-9 {
			t.Fatalf("radius %v outside boundary %v", r, r0)
		}
		speed := s.Velocity.Len()
		if speed < 2-1e-9 || speed > 5+1e-9 {
			t.Fatalf("speed %v outside [2, 5]", speed)
		}
		if s.Velocity.Y != 0 {
			t.Fatalf("outward direction should be horizontal, got %+v", s.Velocity)
		}
	}
}

func TestConeOutwardDirection(t *testing.T) {
	p := mustCompile(t, coneDescriptor(10, 4, 0))

	cases := []struct {
		name           string
		u1, u2, u3, u4 float64
		wantX, wantZ   float64
	}{
		{"azimuth_zero", 0.5, 0.25, 0, 0, 1, 0},
		{"azimuth_quarter", 0.5, 0.25, 0.25, 0, 0, 1},
		{"on_boundary_falls_back_to_radial", 0.5, 1, 0.5, 0, -1, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := p.SampleUnits(c.u1, c.u2, c.u3, c.u4)
			dir := s.Velocity.Scale(1 / s.Velocity.Len())
			if math.Abs(dir.X-c.wantX) > 1e-9 || math.Abs(dir.Z-c.wantZ) > 1e-9 {
				t.Fatalf("direction %+v, want (%v, 0, %v)", dir, c.wantX, c.wantZ)
			}
			if math.Abs(s.Velocity.Len()-2) > 1e-9 {
				t.Fatalf("u4=0 should give SpeedMin, got %v", s.Velocity.Len())
			}
		})
	}
}

func TestCircleSampler(t *testing.T) {
	rim := mustCompile(t, Descriptor{
		Name: "rim", Capacity: 1, ParticleLifetime: 1,
		Shape:    CircleShape(Circle{Radius: 3, Surface: true}),
		SpeedMin: 1, SpeedMax: 1,
	})
	disk := mustCompile(t, Descriptor{
		Name: "disk", Capacity: 1, ParticleLifetime: 1,
		Shape:    CircleShape(Circle{Radius: 3}),
		SpeedMin: 1, SpeedMax: 1,
	})
	rng := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 500; i++ {
		s := rim.Sample(rng)
		if r := math.Hypot(s.Position.X, s.Position.Y); math.Abs(r-3) > 1e-9 {
			t.Fatalf("rim sample at radius %v", r)
		}
		if math.Abs(s.Velocity.Len()-1) > 1e-9 {
			t.Fatalf("rim speed %v", s.Velocity.Len())
		}
		d := disk.Sample(rng)
		if r := math.Hypot(d.Position.X, d.Position.Y); r > 3 {
			t.Fatalf("disk sample at radius %v", r)
		}
	}
}

func TestCompileRejectsInvalid(t *testing.T) {
	base := coneDescriptor(10, 4, 0)
	cases := []struct {
		name   string
		mutate func(d *Descriptor)
	}{
		{"zero_height", func(d *Descriptor) { d.Shape.Cone.Height = 0 }},
		{"negative_radius", func(d *Descriptor) { d.Shape.Cone.BaseRadius = -1 }},
		{"inverted_speed", func(d *Descriptor) { d.SpeedMin, d.SpeedMax = 5, 1 }},
		{"no_lifetime", func(d *Descriptor) { d.ParticleLifetime = 0 }},
		{"no_capacity", func(d *Descriptor) { d.Capacity = 0 }},
		{"unknown_kind", func(d *Descriptor) { d.Shape.Kind = 0 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := base
			c.mutate(&d)
			if _, err := Compile(d); !errors.Is(err, ErrInvalidShape) {
				t.Fatalf("expected ErrInvalidShape, got %v", err)
			}
		})
	}
}

func TestParseShapeKind(t *testing.T) {
	if k, err := ParseShapeKind("cone"); err != nil || k != ShapeCone {
		t.Fatalf("cone: %v %v", k, err)
	}
	if _, err := ParseShapeKind("torus"); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
}

func TestGradient(t *testing.T) {
	g := Gradient{Start: [4]float64{0.5, 0.5, 1, 1}, End: [4]float64{0.5, 0.5, 1, 0}}
	mid := g.At(0.5)
	if math.Abs(mid[3]-0.5) > 1e-6 || math.Abs(mid[2]-1) > 1e-6 {
		t.Fatalf("unexpected midpoint %v", mid)
	}
	if end := g.At(2); math.Abs(end[3]) > 1e-6 {
		t.Fatalf("fraction should clamp, got %v", end)
	}
	s := SizeCurve{Start: 3, End: 1}
	if math.Abs(s.At(0.5)-2) > 1e-6 {
		t.Fatalf("unexpected size %v", s.At(0.5))
	}
}
