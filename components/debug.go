package components

import "github.com/yohamta/donburi"

type DebugData struct {
	DrawColliders bool
}

var Debug = donburi.NewComponentType[DebugData]()
