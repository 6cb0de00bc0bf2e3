package components

import "github.com/yohamta/donburi"

// CollidableData is attached to movers that get push-back correction.
// StandingOn holds bombs the mover overlapped when they were placed; those
// bombs do not block it until it leaves their bounding box.
type CollidableData struct {
	StandingOn []donburi.Entity
}

var Collidable = donburi.NewComponentType[CollidableData]()

// Exempt reports whether bomb is ignored for collision.
func (c *CollidableData) Exempt(bomb donburi.Entity) bool {
	for _, b := range c.StandingOn {
		if b == bomb {
			return true
		}
	}
	return false
}

// StandOn records an exemption for bomb.
func (c *CollidableData) StandOn(bomb donburi.Entity) {
	if !c.Exempt(bomb) {
		c.StandingOn = append(c.StandingOn, bomb)
	}
}

// Retain drops every exemption for which keep returns false.
func (c *CollidableData) Retain(keep func(bomb donburi.Entity) bool) {
	n := 0
	for _, b := range c.StandingOn {
		if keep(b) {
			c.StandingOn[n] = b
			n++
		}
	}
	c.StandingOn = c.StandingOn[:n]
}
