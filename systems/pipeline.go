package systems

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yohamta/donburi/ecs"
)

var (
	ErrPipelineCycle  = errors.New("systems: pipeline has a dependency cycle")
	ErrUnknownStage   = errors.New("systems: pipeline references an unknown stage")
	ErrDuplicateStage = errors.New("systems: pipeline stage declared twice")
)

// Stage is one named system in a Pipeline.
type Stage struct {
	name  string
	run   ecs.System
	after []string
}

// After declares that the stage runs after each of the named stages.
func (s *Stage) After(names ...string) *Stage {
	s.after = append(s.after, names...)
	return s
}

// Pipeline collects systems with an explicit partial order and installs them
// into an ECS in a topological order. Stages with no ordering between them
// keep their declaration order.
type Pipeline struct {
	stages []*Stage
}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Add declares a stage.
func (p *Pipeline) Add(name string, run ecs.System) *Stage {
	s := &Stage{name: name, run: run}
	p.stages = append(p.stages, s)
	return s
}

// Order resolves the run order of the declared stages.
func (p *Pipeline) Order() ([]string, error) {
	sorted, err := p.sort()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(sorted))
	for i, s := range sorted {
		names[i] = s.name
	}
	return names, nil
}

// Install adds every stage to e in resolved order.
func (p *Pipeline) Install(e *ecs.ECS) error {
	sorted, err := p.sort()
	if err != nil {
		return err
	}
	for _, s := range sorted {
		e.AddSystem(s.run)
	}
	return nil
}

func (p *Pipeline) sort() ([]*Stage, error) {
	index := make(map[string]int, len(p.stages))
	for i, s := range p.stages {
		if _, dup := index[s.name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStage, s.name)
		}
		index[s.name] = i
	}

	indegree := make([]int, len(p.stages))
	dependents := make([][]int, len(p.stages))
	for i, s := range p.stages {
		for _, dep := range s.after {
			j, ok := index[dep]
			if !ok {
				return nil, fmt.Errorf("%w: %q runs after %q", ErrUnknownStage, s.name, dep)
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	// Kahn's algorithm, always taking the earliest declared ready stage.
	done := make([]bool, len(p.stages))
	out := make([]*Stage, 0, len(p.stages))
	for len(out) < len(p.stages) {
		next := -1
		for i := range p.stages {
			if !done[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			var stuck []string
			for i, s := range p.stages {
				if !done[i] {
					stuck = append(stuck, s.name)
				}
			}
			return nil, fmt.Errorf("%w: %s", ErrPipelineCycle, strings.Join(stuck, ", "))
		}
		done[next] = true
		out = append(out, p.stages[next])
		for _, d := range dependents[next] {
			indegree[d]--
		}
	}
	return out, nil
}

// Stage names of the simulation pipeline
const (
	StageDebug       = "debug"
	StageMove        = "move"
	StageOrient      = "orient"
	StageLegs        = "legs"
	StageShoot       = "shoot"
	StageProjectiles = "projectiles"
	StageLifetimes   = "lifetimes"
	StageEffects     = "effects"
	StageFlush       = "flush"
)

// NewSimulationPipeline declares the per-tick simulation. Input polling is
// installed ahead of it by the scene. Structural changes queued by any stage
// are applied by the flush stage, which runs last.
func NewSimulationPipeline() *Pipeline {
	p := NewPipeline()
	p.Add(StageDebug, UpdateDebug)
	p.Add(StageMove, UpdatePlayerMovement)
	p.Add(StageOrient, OrientPlayer).After(StageMove)
	p.Add(StageLegs, OrientLegs).After(StageMove, StageOrient)
	p.Add(StageShoot, UpdateShooting).After(StageOrient)
	p.Add(StageProjectiles, UpdateProjectiles)
	p.Add(StageLifetimes, UpdateLifetimes).After(StageProjectiles)
	p.Add(StageEffects, UpdateEffects).After(StageProjectiles)
	p.Add(StageFlush, FlushCommands).After(
		StageDebug, StageLegs, StageShoot, StageLifetimes, StageEffects,
	)
	return p
}
