package gamemath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestReflect(t *testing.T) {
	cases := []struct {
		name string
		d, n Vec2
		want Vec2
	}{
		{"off_floor", V(1, -1), V(0, 1), V(1, 1)},
		{"head_on", V(0, -3), V(0, 1), V(0, 3)},
		{"off_right_wall", V(2, 1), V(-1, 0), V(-2, 1)},
		{"grazing", V(5, 0), V(0, 1), V(5, 0)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Reflect(c.d, c.n)
			if !ApproxEqual(r, c.want, eps) {
				t.Fatalf("Reflect(%v, %v) = %v, want %v", c.d, c.n, r, c.want)
			}
			if math.Abs(r.Magnitude()-c.d.Magnitude()) > eps {
				t.Fatalf("|r| = %v, |d| = %v", r.Magnitude(), c.d.Magnitude())
			}
		})
	}
}

func TestReflectZero(t *testing.T) {
	if r := Reflect(Vec2{}, V(0, 1)); r != (Vec2{}) {
		t.Fatalf("expected zero, got %v", r)
	}
}

func TestHeading(t *testing.T) {
	if got := Heading(V(1, 1), math.Pi/2); math.Abs(got-(math.Pi/4-math.Pi/2)) > eps {
		t.Fatalf("unexpected heading %v", got)
	}
	if got := Heading(V(0, 1), math.Pi/2); math.Abs(got) > eps {
		t.Fatalf("up vector with up-facing asset should be 0, got %v", got)
	}
}

func TestTurnTowards(t *testing.T) {
	cases := []struct {
		name               string
		from, target, step float64
		want               float64
	}{
		{"reaches", 0, 0.5, 1, 0.5},
		{"limited", 0, 2, 0.5, 0.5},
		{"negative", 0, -2, 0.5, -0.5},
		{"short_arc_across_pi", 3, -3, 0.1, WrapAngle(3.1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := TurnTowards(c.from, c.target, c.step)
			if math.Abs(got-c.want) > eps {
				t.Fatalf("TurnTowards(%v, %v, %v) = %v, want %v", c.from, c.target, c.step, got, c.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if _, ok := Normalize(Vec2{}); ok {
		t.Fatalf("zero vector should not normalize")
	}
	n, ok := Normalize(V(3, 4))
	if !ok || !ApproxEqual(n, V(0.6, 0.8), eps) {
		t.Fatalf("unexpected %v %v", n, ok)
	}
}
