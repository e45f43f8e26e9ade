package systems

import (
	"errors"
	"testing"

	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = make(map[string][]byte)
	}
	m.items[key] = data
	return nil
}

func restoreTuning(t *testing.T) {
	t.Helper()
	prev := cfg.CurrentTuning()
	t.Cleanup(func() {
		if err := cfg.ApplyTuning(prev); err != nil {
			t.Errorf("restore tuning: %v", err)
		}
	})
}

func useStore(t *testing.T, s Store) {
	t.Helper()
	prev := store
	SetStore(s)
	t.Cleanup(func() { SetStore(prev) })
}

func TestApplyTuning(t *testing.T) {
	restoreTuning(t)
	e := newTestScene(t, 0.1, nil)
	fx := components.Effects.Get(components.Effects.MustFirst(e.World))
	oldTrail := fx.Trail

	next := cfg.CurrentTuning()
	next.Projectile.Speed = 250
	next.Trail.Rate = 50
	if err := ApplyTuning(e, next); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if cfg.Projectile.Speed != 250 {
		t.Fatalf("projectile speed not applied")
	}
	if fx.Trail == oldTrail {
		t.Fatalf("trail should be re-registered under a new handle")
	}
	p, err := fx.Registry.Program(fx.Trail)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if p.Descriptor().Spawner.Rate != 50 {
		t.Fatalf("new trail program should use the tuned rate")
	}
}

func TestApplyTuningRejectsInvalidEffects(t *testing.T) {
	restoreTuning(t)
	e := newTestScene(t, 0.1, nil)
	fx := components.Effects.Get(components.Effects.MustFirst(e.World))
	oldTrail, oldSpeed := fx.Trail, cfg.Projectile.Speed

	tests := []struct {
		name   string
		mutate func(t *cfg.Tuning)
	}{
		{name: "unknown_shape", mutate: func(t *cfg.Tuning) { t.Debris.Shape = "hexagon" }},
		{name: "flat_cone", mutate: func(t *cfg.Tuning) { t.Debris.Height = 0 }},
		{name: "no_capacity", mutate: func(t *cfg.Tuning) { t.Trail.Capacity = 0 }},
		{name: "negative_speed", mutate: func(t *cfg.Tuning) { t.Projectile.Speed = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := cfg.CurrentTuning()
			next.Projectile.Speed = oldSpeed + 1
			tt.mutate(&next)

			if err := ApplyTuning(e, next); !errors.Is(err, cfg.ErrInvalidTuning) {
				t.Fatalf("expected ErrInvalidTuning, got %v", err)
			}
			if cfg.Projectile.Speed != oldSpeed {
				t.Fatalf("rejected tuning must not be applied")
			}
			if fx.Trail != oldTrail {
				t.Fatalf("rejected tuning must not re-register effects")
			}
		})
	}
}

func TestSavedTuningRoundTrip(t *testing.T) {
	restoreTuning(t)
	s := &memStore{}
	useStore(t, s)

	if got, err := LoadSavedTuning(); got != nil || err != nil {
		t.Fatalf("empty store should load nothing, got %v %v", got, err)
	}

	want := cfg.CurrentTuning()
	want.Impact.Lifetime = 2.5
	want.Collision.Backend = cfg.BackendChipmunk
	if err := SaveTuning(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(s.items[tuningKey]) == 0 {
		t.Fatalf("nothing written under %q", tuningKey)
	}

	got, err := LoadSavedTuning()
	if err != nil || got == nil {
		t.Fatalf("load: %v %v", got, err)
	}
	if got.Impact.Lifetime != 2.5 || got.Collision.Backend != cfg.BackendChipmunk {
		t.Fatalf("loaded %+v", got)
	}
}

func TestSavedTuningUnavailable(t *testing.T) {
	useStore(t, nil)
	if err := SaveTuning(cfg.CurrentTuning()); err != nil {
		t.Fatalf("saving without a store should be a no-op, got %v", err)
	}
	if got, err := LoadSavedTuning(); got != nil || err != nil {
		t.Fatalf("loading without a store should be a no-op, got %v %v", got, err)
	}

	useStore(t, &memStore{loadErr: errors.New("disk gone")})
	if got, err := LoadSavedTuning(); got != nil || err != nil {
		t.Fatalf("a failing store should fall back to defaults, got %v %v", got, err)
	}

	useStore(t, &memStore{items: map[string][]byte{tuningKey: []byte("projectile: [")}})
	if _, err := LoadSavedTuning(); err == nil {
		t.Fatalf("corrupt saved tuning should report an error")
	}
}

func TestApplySavedTuning(t *testing.T) {
	restoreTuning(t)
	s := &memStore{}
	useStore(t, s)

	before := cfg.CurrentTuning()
	bad := before
	bad.Impact.Lifetime = before.Impact.Lifetime + 1
	bad.Collision.Backend = cfg.BackendChipmunk
	bad.Debris.Shape = "torus"
	if err := SaveTuning(bad); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := ApplySavedTuning(); !errors.Is(err, cfg.ErrInvalidTuning) {
		t.Fatalf("a save with an unknown debris shape should be rejected, got %v", err)
	}
	if got := cfg.CurrentTuning(); got != before {
		t.Fatalf("rejected save changed the configuration:\n got %+v\nwant %+v", got, before)
	}

	good := before
	good.Impact.Lifetime = before.Impact.Lifetime + 1
	good.Collision.Backend = cfg.BackendChipmunk
	if err := SaveTuning(good); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := ApplySavedTuning(); err != nil {
		t.Fatalf("apply saved: %v", err)
	}
	if cfg.Collision.Backend != cfg.BackendChipmunk || cfg.Impact.Lifetime != good.Impact.Lifetime {
		t.Fatalf("saved tuning not applied: backend %q lifetime %v", cfg.Collision.Backend, cfg.Impact.Lifetime)
	}

	useStore(t, nil)
	if err := ApplySavedTuning(); err != nil {
		t.Fatalf("nothing to apply without a store, got %v", err)
	}
}
