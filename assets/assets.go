package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/tracer/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const LevelsDir = "levels"

// LoadArenas parses every embedded arena.
func LoadArenas() (map[string]*leveldata.Arena, []string, error) {
	return leveldata.LoadAllArenas(assetFS, LevelsDir)
}

// LoadArena returns the embedded arena with the given stem name.
func LoadArena(name string) (*leveldata.Arena, error) {
	arena, err := leveldata.LoadArena(assetFS, fmt.Sprintf("%s/%s.tmx", LevelsDir, name))
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return arena, nil
}
