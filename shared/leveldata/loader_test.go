package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="75" height="50" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="walls">
  <object id="1" x="350" y="475" width="500" height="50"/>
  <object id="2" x="0" y="0" width="20" height="800"/>
 </objectgroup>
 <objectgroup id="2" name="player">
  <object id="3" x="600" y="100">
   <point/>
  </object>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="walls">
  <object id="1" x="0" y="0" width="16" height="16"/>
 </objectgroup>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/arena.tmx": {Data: []byte(arenaTMX)},
	}

	arena, err := LoadArena(fsys, "levels/arena.tmx")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if arena.Name != "arena" || arena.Width != 1200 || arena.Height != 800 {
		t.Fatalf("unexpected header %+v", arena)
	}
	if arena.Spawn != (SpawnPoint{X: 0, Y: 300}) {
		t.Fatalf("spawn = %+v, want (0, 300)", arena.Spawn)
	}

	want := []WallRect{
		{X: -600, Y: -400, W: 20, H: 800},
		{X: -250, Y: -125, W: 500, H: 50},
	}
	if len(arena.Walls) != len(want) {
		t.Fatalf("expected %d walls, got %d", len(want), len(arena.Walls))
	}
	for i, w := range want {
		if arena.Walls[i] != w {
			t.Errorf("wall %d = %+v, want %+v", i, arena.Walls[i], w)
		}
	}
}

func TestLoadArenaWithoutSpawn(t *testing.T) {
	fsys := fstest.MapFS{"a.tmx": {Data: []byte(noSpawnTMX)}}
	if _, err := LoadArena(fsys, "a.tmx"); !errors.Is(err, ErrNoSpawn) {
		t.Fatalf("expected ErrNoSpawn, got %v", err)
	}
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(arenaTMX)},
		"levels/a.tmx": {Data: []byte(arenaTMX)},
	}
	arenas, names, err := LoadAllArenas(fsys, "levels")
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" || arenas["b"] == nil {
		t.Fatalf("unexpected result %v %v", names, arenas)
	}

	if _, _, err := LoadAllArenas(fstest.MapFS{}, "levels"); err == nil {
		t.Fatalf("expected error for empty directory")
	}
}
