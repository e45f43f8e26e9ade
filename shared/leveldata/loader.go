package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from a TMX file
const (
	WallsGroup  = "walls"
	PlayerGroup = "player"
)

var ErrNoSpawn = errors.New("leveldata: no player spawn")

// LoadArena parses a TMX file and returns its walls and player spawn. It takes
// an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}
	halfW, halfH := arena.Width/2, arena.Height/2

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case WallsGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.Walls = append(arena.Walls, WallRect{
					X: o.X - halfW,
					Y: halfH - (o.Y + o.Height),
					W: o.Width,
					H: o.Height,
				})
			}
		case PlayerGroup:
			if len(og.Objects) == 0 || spawnFound {
				continue
			}
			o := og.Objects[0]
			arena.Spawn = SpawnPoint{X: o.X - halfW, Y: halfH - o.Y}
			spawnFound = true
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}

	// Sort walls left-to-right for a stable registration order
	sort.Slice(arena.Walls, func(i, j int) bool {
		if arena.Walls[i].X != arena.Walls[j].X {
			return arena.Walls[i].X < arena.Walls[j].X
		}
		return arena.Walls[i].Y < arena.Walls[j].Y
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns them keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
