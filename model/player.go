package model

import (
	"fmt"
	"time"
)

// Player is one touring pro in the league's player pool. ID is the player's
// PDGA number, stored as a string because it is an identifier, not a
// quantity.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	Division  Division
	Rating    int
	City      string
	State     string
	Active    bool
	Created   time.Time
	Updated   time.Time
	Changes   []Change
}

func (p *Player) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

func (p *Player) FormattedCreatedTime() string {
	if p.Created.IsZero() {
		return "unknown"
	}
	return p.Created.Format(time.DateTime)
}

func (p *Player) FormattedUpdatedTime() string {
	if p.Updated.IsZero() {
		return "unknown"
	}
	return p.Updated.Format(time.DateTime)
}

type Change struct {
	Time         time.Time
	PropertyName string
	OldValue     string
	NewValue     string
}

func (c *Change) String() string {
	return fmt.Sprintf("%s changed from '%s' to '%s'", c.PropertyName, c.OldValue, c.NewValue)
}
