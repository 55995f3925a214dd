package physics

import (
	"github.com/automoto/cavefall/shared/gamemath"
	"github.com/automoto/cavefall/shared/rooms"
)

type contactKind int

const (
	contactNone contactKind = iota
	contactSolid
	contactDeath
	contactExit
)

type contact struct {
	kind contactKind
	cell rooms.Cell
}

// probe scans the leading edge for the highest priority contact: exits over
// hazards over ground. For the X axis lead is a column and [lo, hi] a row
// range; for Y it is the other way round.
func (s *Simulation) probe(lead, lo, hi int, vertical bool) contact {
	lo, hi = rooms.ClampCoord(lo), rooms.ClampCoord(hi)
	var best contact
	for i := lo; i <= hi; i++ {
		c := rooms.Cell{Col: lead, Row: i}
		if vertical {
			c = rooms.Cell{Col: i, Row: lead}
		}
		t := s.Room.Tile(c.Col, c.Row)

		var k contactKind
		switch {
		case rooms.IsExit(t):
			k = contactExit
		case rooms.IsDeath(t):
			k = contactDeath
		case rooms.IsSolid(t):
			k = contactSolid
		}
		if k > best.kind {
			best = contact{kind: k, cell: c}
		}
	}
	return best
}

// ResolveX reconciles the player's horizontal position with the column it
// is moving into. It reports whether the move was blocked.
func (s *Simulation) ResolveX() bool {
	p := s.Player
	dir := gamemath.Sign(p.Velocity.X)
	if dir == 0 {
		return false
	}

	var lead int
	if dir > 0 {
		lead = gamemath.CellAhead(p.Right(), rooms.TileSize)
	} else {
		lead = gamemath.CellBehind(p.Position.X, rooms.TileSize)
	}

	// The room boundary is a wall.
	if lead < 0 || lead >= rooms.Size {
		if dir > 0 {
			p.Position.X = rooms.Extent - p.Width
		} else {
			p.Position.X = 0
		}
		p.Velocity.X = 0
		return true
	}

	lo, hi := gamemath.SpanCells(p.Position.Y, p.Height, rooms.TileSize)
	c := s.probe(lead, lo, hi, false)
	switch c.kind {
	case contactExit:
		s.exit(c.cell)
	case contactDeath:
		s.die(c.cell, EventDeath)
	case contactSolid:
		if dir > 0 {
			p.Position.X = float64(lead*rooms.TileSize) - p.Width
		} else {
			p.Position.X = float64((lead + 1) * rooms.TileSize)
		}
		p.Velocity.X = 0
		return true
	}
	return false
}

// ResolveY reconciles the player's vertical position with the row it is
// moving into. A player without vertical velocity probes the row beneath
// its feet. Without support the player falls and gravity accumulates for
// the next tick. It reports whether the move was blocked.
func (s *Simulation) ResolveY() bool {
	p := s.Player
	down := p.Velocity.Y >= 0

	var lead int
	if down {
		lead = gamemath.CellAhead(p.Bottom(), rooms.TileSize)
	} else {
		lead = gamemath.CellBehind(p.Position.Y, rooms.TileSize)
	}

	if lead < 0 || lead >= rooms.Size {
		if down {
			p.Position.Y = rooms.Extent - p.Height
			s.land()
		} else {
			p.Position.Y = 0
			p.Velocity.Y = 0
			s.fall()
		}
		return true
	}

	lo, hi := gamemath.SpanCells(p.Position.X, p.Width, rooms.TileSize)
	c := s.probe(lead, lo, hi, true)
	switch c.kind {
	case contactExit:
		s.exit(c.cell)
		return false
	case contactDeath:
		s.die(c.cell, EventDeath)
		return false
	case contactSolid:
		if down {
			p.Position.Y = float64(lead*rooms.TileSize) - p.Height
			s.land()
		} else {
			p.Position.Y = float64((lead + 1) * rooms.TileSize)
			p.Velocity.Y = 0
			s.fall()
		}
		return true
	}

	s.fall()
	return false
}
