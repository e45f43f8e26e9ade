package components

import "github.com/yohamta/donburi"

// FrameData is written once per tick before any system runs.
type FrameData struct {
	Delta float64 // seconds
	Tick  uint64
}

var Frame = donburi.NewComponentType[FrameData]()
