// Package world provides the room state machine and the grid arena the
// rooms live in.
package world

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the coordinate offset for one step in this direction.
// The y axis grows downward, matching screen coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}
