package ui

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pvaldes/bugdungeon/internal/entity"
	"github.com/pvaldes/bugdungeon/internal/gamedata"
	"github.com/pvaldes/bugdungeon/internal/world"
)

// newTestScreen backs a Screen with tcell's simulation screen so tests
// can read rendered cells back.
func newTestScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(80, 24)
	return newScreenFrom(sim), sim
}

func TestRenderExploreGlyphs(t *testing.T) {
	screen, sim := newTestScreen(t)
	r := NewRenderer(screen)

	balance := gamedata.DefaultBalance()
	grid := world.NewGrid("Test Wing", "", 2, 1)
	grid.SetRoom(0, 0, world.NewEmptyRoom("Lobby", "", balance, rand.New(rand.NewSource(1))))
	grid.SetRoom(1, 0, world.NewEmptyRoom("Closet", "", balance, rand.New(rand.NewSource(1))))

	actor := entity.NewActor("Tester", balance)
	actor.SetPosition(0, 0)

	r.RenderExplore(grid, actor, nil)

	// The player glyph sits at the map offset; the neighbor one cell
	// over (rooms render two columns apart) hides behind '?'
	if ch, _, _, _ := sim.GetContent(mapOffsetX, mapOffsetY); ch != '@' {
		t.Errorf("Expected '@' at the player cell, got %q", ch)
	}
	if ch, _, _, _ := sim.GetContent(mapOffsetX+2, mapOffsetY); ch != '?' {
		t.Errorf("Expected '?' over the unvisited room, got %q", ch)
	}
}

func TestDrawTextClipsAtWidth(t *testing.T) {
	screen, sim := newTestScreen(t)
	sim.SetSize(10, 4)
	r := NewRenderer(screen)

	end := r.drawText(8, 0, tcell.StyleDefault, "overflow")
	if end != 10 {
		t.Errorf("Expected drawing to stop at column 10, got %d", end)
	}
}
