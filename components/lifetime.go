package components

import "github.com/yohamta/donburi"

// DecayMode says which system charges a lifetime.
type DecayMode int

const (
	DecayPerTick  DecayMode = iota // the lifetime system subtracts dt every tick
	DecayOnTravel                  // the motion system charges dt when it moves the entity
)

// ExpiryCause is logged when a lifetime runs out.
type ExpiryCause int

const (
	ExpiryTimeout ExpiryCause = iota
	ExpiryDisplay
)

func (c ExpiryCause) String() string {
	switch c {
	case ExpiryTimeout:
		return "timeout"
	case ExpiryDisplay:
		return "display"
	}
	return "unknown"
}

// LifetimeData counts down seconds until the entity is destroyed.
type LifetimeData struct {
	Remaining float64
	Decay     DecayMode
	Cause     ExpiryCause
}

var Lifetime = donburi.NewComponentType[LifetimeData]()
