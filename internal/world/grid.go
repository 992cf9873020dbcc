package world

// Grid is the arena of rooms for one level, indexed by (x, y).
// Adjacency is a coordinate lookup, not stored references: rooms never
// point at each other.
type Grid struct {
	name        string
	description string
	width       int
	height      int
	rooms       [][]Room // indexed [y][x]
}

// NewGrid creates an empty grid. Dimensions are clamped to at least 1.
func NewGrid(name, description string, width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	rooms := make([][]Room, height)
	for y := range rooms {
		rooms[y] = make([]Room, width)
	}
	return &Grid{
		name:        name,
		description: description,
		width:       width,
		height:      height,
		rooms:       rooms,
	}
}

// Name returns the level name.
func (g *Grid) Name() string { return g.name }

// Description returns the level description.
func (g *Grid) Description() string { return g.description }

// Width returns the grid width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether the coordinates lie within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// SetRoom places a room. Returns false for out-of-bounds coordinates or
// a nil room.
func (g *Grid) SetRoom(x, y int, room Room) bool {
	if !g.InBounds(x, y) || room == nil {
		return false
	}
	g.rooms[y][x] = room
	return true
}

// RoomAt returns the room at the coordinates, or nil.
func (g *Grid) RoomAt(x, y int) Room {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.rooms[y][x]
}

// HasRoom reports whether a room exists at the coordinates.
func (g *Grid) HasRoom(x, y int) bool {
	return g.RoomAt(x, y) != nil
}

// RemoveRoom removes and returns the room at the coordinates, or nil.
func (g *Grid) RemoveRoom(x, y int) Room {
	if !g.InBounds(x, y) {
		return nil
	}
	room := g.rooms[y][x]
	g.rooms[y][x] = nil
	return room
}

// Neighbor returns the room one step in the given direction, along with
// its coordinates. The room is nil when the step leaves the grid or the
// cell is empty.
func (g *Grid) Neighbor(x, y int, dir Direction) (Room, int, int) {
	dx, dy := dir.Delta()
	nx, ny := x+dx, y+dy
	return g.RoomAt(nx, ny), nx, ny
}

// TotalRooms returns the number of placed rooms.
func (g *Grid) TotalRooms() int {
	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.rooms[y][x] != nil {
				count++
			}
		}
	}
	return count
}

// VisitedRooms returns the number of rooms already visited.
func (g *Grid) VisitedRooms() int {
	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.rooms[y][x] != nil && g.rooms[y][x].IsVisited() {
				count++
			}
		}
	}
	return count
}

// Clear removes every room from the grid.
func (g *Grid) Clear() {
	for y := range g.rooms {
		for x := range g.rooms[y] {
			g.rooms[y][x] = nil
		}
	}
}
