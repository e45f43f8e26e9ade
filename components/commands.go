package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CommandsData buffers structural changes until the end of the tick so that
// systems never add or remove entities while iterating.
type CommandsData struct {
	destroy []donburi.Entity
	spawns  []func(*ecs.ECS)
}

func (c *CommandsData) Destroy(e donburi.Entity) {
	c.destroy = append(c.destroy, e)
}

func (c *CommandsData) Spawn(fn func(*ecs.ECS)) {
	c.spawns = append(c.spawns, fn)
}

func (c *CommandsData) Pending() (destroys, spawns int) {
	return len(c.destroy), len(c.spawns)
}

// Drain returns and clears the buffered commands.
func (c *CommandsData) Drain() ([]donburi.Entity, []func(*ecs.ECS)) {
	d, s := c.destroy, c.spawns
	c.destroy, c.spawns = nil, nil
	return d, s
}

var Commands = donburi.NewComponentType[CommandsData]()
