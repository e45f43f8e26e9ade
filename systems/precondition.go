package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/tracer/tags"
	"github.com/yohamta/donburi"
)

var ErrPlayerCount = errors.New("systems: exactly one player is required")

// PlayerCountError reports how many players were found instead of one.
type PlayerCountError struct {
	Count int
}

func (e *PlayerCountError) Error() string {
	return fmt.Sprintf("%v, found %d", ErrPlayerCount, e.Count)
}

func (e *PlayerCountError) Unwrap() error {
	return ErrPlayerCount
}

// RequireSinglePlayer checks the one-player invariant the player and shooting
// systems rely on. It runs once after the scene is built.
func RequireSinglePlayer(w donburi.World) error {
	count := 0
	tags.Player.Each(w, func(*donburi.Entry) {
		count++
	})
	if count != 1 {
		return &PlayerCountError{Count: count}
	}
	return nil
}
