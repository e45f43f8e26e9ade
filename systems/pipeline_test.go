package systems

import (
	"errors"
	"slices"
	"testing"

	"github.com/automoto/tracer/archetypes"
	"github.com/automoto/tracer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func noop(*ecs.ECS) {}

func TestPipelineOrder(t *testing.T) {
	tests := []struct {
		name    string
		build   func(p *Pipeline)
		want    []string
		wantErr error
	}{
		{
			name: "declaration_order_when_unconstrained",
			build: func(p *Pipeline) {
				p.Add("a", noop)
				p.Add("b", noop)
				p.Add("c", noop)
			},
			want: []string{"a", "b", "c"},
		},
		{
			name: "after_moves_a_stage_back",
			build: func(p *Pipeline) {
				p.Add("flush", noop).After("move", "lifetimes")
				p.Add("lifetimes", noop).After("move")
				p.Add("move", noop)
			},
			want: []string{"move", "lifetimes", "flush"},
		},
		{
			name: "cycle",
			build: func(p *Pipeline) {
				p.Add("a", noop).After("b")
				p.Add("b", noop).After("a")
			},
			wantErr: ErrPipelineCycle,
		},
		{
			name: "unknown_stage",
			build: func(p *Pipeline) {
				p.Add("a", noop).After("missing")
			},
			wantErr: ErrUnknownStage,
		},
		{
			name: "duplicate_stage",
			build: func(p *Pipeline) {
				p.Add("a", noop)
				p.Add("a", noop)
			},
			wantErr: ErrDuplicateStage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPipeline()
			tt.build(p)
			got, err := p.Order()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Fatalf("order %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimulationPipelineOrder(t *testing.T) {
	got, err := NewSimulationPipeline().Order()
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	index := func(name string) int {
		i := slices.Index(got, name)
		if i < 0 {
			t.Fatalf("stage %q missing from %v", name, got)
		}
		return i
	}
	before := [][2]string{
		{StageMove, StageOrient},
		{StageOrient, StageLegs},
		{StageMove, StageLegs},
		{StageOrient, StageShoot},
		{StageProjectiles, StageLifetimes},
		{StageProjectiles, StageEffects},
	}
	for _, pair := range before {
		if index(pair[0]) >= index(pair[1]) {
			t.Fatalf("%s should run before %s: %v", pair[0], pair[1], got)
		}
	}
	if got[len(got)-1] != StageFlush {
		t.Fatalf("flush should run last: %v", got)
	}
}

func TestFlushCommands(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	cmds := archetypes.Commands.Spawn(e)
	buf := components.Commands.Get(cmds)

	a := e.World.Create(components.Transform)
	b := e.World.Create(components.Transform)

	buf.Destroy(a)
	buf.Destroy(a)
	buf.Destroy(b)
	spawned := 0
	buf.Spawn(func(e *ecs.ECS) {
		if e.World.Valid(a) || e.World.Valid(b) {
			t.Errorf("spawns should run after destroys")
		}
		spawned++
	})
	if d, s := buf.Pending(); d != 3 || s != 1 {
		t.Fatalf("pending = %d destroys, %d spawns", d, s)
	}

	FlushCommands(e)

	if spawned != 1 {
		t.Fatalf("spawn ran %d times", spawned)
	}
	if d, s := buf.Pending(); d != 0 || s != 0 {
		t.Fatalf("buffer should be drained, pending %d/%d", d, s)
	}

	// destroying an entity that is already gone is a no-op
	buf.Destroy(a)
	FlushCommands(e)
}
