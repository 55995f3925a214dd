package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/automoto/cavefall/shared/physics"
)

// opKind is one instruction of an input script.
type opKind int

const (
	opWait opKind = iota
	opLeft
	opRight
	opRotate
	opRespawn
)

type scriptOp struct {
	kind  opKind
	count int
}

// parseScript reads a whitespace or comma separated list of instructions:
//
//	R<n>  walk right for n ticks
//	L<n>  walk left for n ticks
//	W<n>  stand still for n ticks
//	T     turn the room
//	X     restart the room
//
// n defaults to 1.
func parseScript(src string) ([]scriptOp, error) {
	fields := strings.FieldsFunc(src, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	ops := make([]scriptOp, 0, len(fields))
	for _, f := range fields {
		var op scriptOp
		switch unicode.ToUpper(rune(f[0])) {
		case 'W':
			op.kind = opWait
		case 'L':
			op.kind = opLeft
		case 'R':
			op.kind = opRight
		case 'T':
			op.kind = opRotate
		case 'X':
			op.kind = opRespawn
		default:
			return nil, fmt.Errorf("unknown instruction %q", f)
		}

		op.count = 1
		if rest := f[1:]; rest != "" {
			if op.kind == opRotate || op.kind == opRespawn {
				return nil, fmt.Errorf("instruction %q takes no count", f)
			}
			n, err := strconv.Atoi(rest)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("bad tick count in %q", f)
			}
			op.count = n
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// tickEvent is a simulation event stamped with the tick it happened on.
type tickEvent struct {
	Tick int
	physics.Event
}

// runScript plays ops against sim and returns every event in order. Ticks
// are counted from 1; events raised by T and X carry the tick they follow.
func runScript(sim *physics.Simulation, ops []scriptOp) []tickEvent {
	var out []tickEvent
	tick := 0
	collect := func() {
		for _, ev := range sim.DrainEvents() {
			out = append(out, tickEvent{Tick: tick, Event: ev})
		}
	}

	for _, op := range ops {
		switch op.kind {
		case opRotate:
			sim.Rotate()
			collect()
			continue
		case opRespawn:
			sim.Respawn()
			collect()
			continue
		}

		in := physics.Input{}
		switch op.kind {
		case opLeft:
			in.Horizontal = -1
		case opRight:
			in.Horizontal = 1
		}
		for i := 0; i < op.count; i++ {
			tick++
			sim.Step(in)
			collect()
		}
	}
	return out
}

func describeEvent(ev physics.Event) string {
	switch ev.Kind {
	case physics.EventExit:
		if ev.Wrapped {
			return "left the last room, back to room 1"
		}
		return fmt.Sprintf("reached the exit, now in room %d", ev.Room+1)
	case physics.EventDeath:
		return fmt.Sprintf("died on a spike at (%d, %d)", ev.Cell.Col, ev.Cell.Row)
	case physics.EventSuffocated:
		return "ran out of air"
	case physics.EventRotated:
		return "turned the cave"
	case physics.EventRespawn:
		return "restarted the room"
	case physics.EventGrounded:
		return "landed"
	case physics.EventFalling:
		return "started falling"
	}
	return ev.Kind.String()
}
