package game

import (
	"context"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pvaldes/bugdungeon/internal/telemetry"
	"github.com/pvaldes/bugdungeon/internal/world"
)

// handleKeyEvent dispatches keyboard input by game state.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch g.state {
	case StateExplore:
		g.handleExploreKey(ctx, ev)
	case StateCombat:
		g.handleCombatKey(ctx, ev)
	case StatePrompt:
		g.handlePromptKey(ctx, ev)
	case StateInventory:
		g.handleInventoryKey(ctx, ev)
	case StateHelp:
		g.state = StateExplore
	case StateGameOver, StateVictory:
		g.handleEndKey(ev)
	}
}

// handleExploreKey processes input in exploration mode.
func (g *Game) handleExploreKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyUp:
		g.tryMove(world.North)
	case tcell.KeyDown:
		g.tryMove(world.South)
	case tcell.KeyLeft:
		g.tryMove(world.West)
	case tcell.KeyRight:
		g.tryMove(world.East)
	case tcell.KeyEnter:
		g.interact(ctx)
	case tcell.KeyF5:
		g.pushMessage("Saving is not implemented yet. Your progress lives and dies with this session.")
	case tcell.KeyF9:
		g.pushMessage("Loading is not implemented yet.")
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'q':
			g.running = false
		case 'w':
			g.tryMove(world.North)
		case 's':
			g.tryMove(world.South)
		case 'a':
			g.tryMove(world.West)
		case 'd':
			g.tryMove(world.East)
		case 'f':
			g.interact(ctx)
		case 'v':
			g.state = StateInventory
		case 'h':
			g.state = StateHelp
		}
	}
}

// handleCombatKey collects an answer (a letter or the full text) and
// submits it with Enter.
func (g *Game) handleCombatKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		// Fleeing does not end the encounter; the enemy waits
		g.state = StateExplore
		g.pushMessage("You back away. " + g.combatRoom.Enemy().Name() + " holds its ground.")
	case tcell.KeyEnter:
		g.submitAnswer(ctx)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.answer) > 0 {
			g.answer = g.answer[:len(g.answer)-1]
		}
	case tcell.KeyRune:
		g.answer = append(g.answer, ev.Rune())
	}
}

// handlePromptKey resolves a room's pending yes/no offer.
func (g *Game) handlePromptKey(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}

	switch unicode.ToLower(ev.Rune()) {
	case 'y':
		room, offer := g.promptRoom, g.promptOffer
		g.promptRoom = nil
		g.promptOffer = world.OfferNone
		g.state = StateExplore

		var res world.Result
		switch offer {
		case world.OfferSearch:
			res = room.Search(g.actor)
		case world.OfferRest:
			res = room.Rest(g.actor)
		default:
			return
		}
		g.pushMessage(res.Message)
		g.checkProgress(ctx)
	case 'n':
		g.promptRoom = nil
		g.promptOffer = world.OfferNone
		g.state = StateExplore
		g.pushMessage("You leave well enough alone.")
	}
}

// handleInventoryKey uses items by digit and leaves the pack view.
func (g *Game) handleInventoryKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		g.state = StateExplore
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := unicode.ToLower(ev.Rune())
	if r == 'v' {
		g.state = StateExplore
		return
	}
	if r >= '1' && r <= '9' {
		g.useItemAt(ctx, int(r-'1'))
	}
}

// handleEndKey processes input on the game-over and victory screens.
func (g *Game) handleEndKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter:
		g.running = false
	case tcell.KeyRune:
		g.running = false
	}
}

// tryMove steps the player one room in the given direction. Position
// only changes on a successful move.
func (g *Game) tryMove(dir world.Direction) {
	x, y := g.actor.Position()
	room, nx, ny := g.grid.Neighbor(x, y, dir)
	if room == nil {
		g.pushMessage("A blank wall of un-navigable code blocks the way " + dir.String() + ".")
		return
	}
	if !room.IsAccessible() {
		g.pushMessage(room.Name() + " is sealed.")
		return
	}

	g.actor.SetPosition(nx, ny)
	if room.IsVisited() {
		g.pushMessage("You return to " + room.Name() + ".")
	} else {
		g.pushMessage(room.Name() + ": " + room.Description())
	}
}

// interact runs the current room's interaction and routes the outcome:
// combat encounters switch to combat mode, offers switch to prompt mode.
func (g *Game) interact(ctx context.Context) {
	x, y := g.actor.Position()
	room := g.grid.RoomAt(x, y)
	if room == nil {
		g.pushMessage("There is nothing here to interact with.")
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "room.interact")
	res := room.Interact(g.actor)
	span.SetAttributes(
		attribute.String("room.name", room.Name()),
		attribute.String("room.type", room.Type().String()),
		attribute.String("result.kind", res.Kind.String()),
		attribute.Bool("result.success", res.Success),
	)
	span.End()

	g.pushMessage(res.Message)

	if res.Offer != world.OfferNone {
		if empty, ok := room.(*world.EmptyRoom); ok {
			g.promptRoom = empty
			g.promptOffer = res.Offer
			g.state = StatePrompt
			return
		}
	}

	if enemyRoom := activeEnemyRoom(room); enemyRoom != nil {
		_, startSpan := telemetry.Tracer("combat").Start(ctx, "combat.start")
		startSpan.SetAttributes(
			attribute.String("enemy", enemyRoom.Enemy().Name()),
			attribute.Int("enemy.hp", enemyRoom.Enemy().HP()),
		)
		startSpan.End()

		g.combatRoom = enemyRoom
		g.state = StateCombat
		g.answer = nil
		return
	}

	g.checkProgress(ctx)
}

// activeEnemyRoom unwraps a room (through locked-room proxies) to the
// enemy room whose combat is in progress, or nil.
func activeEnemyRoom(room world.Room) *world.EnemyRoom {
	switch r := room.(type) {
	case *world.EnemyRoom:
		if r.CombatActive() {
			return r
		}
	case *world.LockedRoom:
		if r.IsUnlocked() {
			return activeEnemyRoom(r.Inner())
		}
	}
	return nil
}

// submitAnswer sends the typed answer to the combat engine.
func (g *Game) submitAnswer(ctx context.Context) {
	if g.combatRoom == nil {
		g.state = StateExplore
		return
	}

	answer := string(g.answer)
	g.answer = nil

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.turn")
	res := g.combatRoom.SubmitAnswer(answer, g.actor)
	span.SetAttributes(
		attribute.String("enemy", g.combatRoom.Enemy().Name()),
		attribute.Int("turn", g.combatRoom.Enemy().Turns()),
		attribute.Bool("success", res.Success),
	)
	span.End()

	g.pushMessage(res.Message)

	if !g.combatRoom.CombatActive() {
		g.endCombat(ctx)
	}
}

// endCombat leaves combat mode and records the encounter's end.
func (g *Game) endCombat(ctx context.Context) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("enemy", g.combatRoom.Enemy().Name()),
		attribute.String("enemy.state", g.combatRoom.Enemy().State().String()),
		attribute.Int("player.hp", g.actor.GetHP()),
	)
	span.End()

	g.combatRoom = nil
	g.state = StateExplore
	g.checkProgress(ctx)
}

// useItemAt uses the inventory item at the given index, removing it
// when consumed.
func (g *Game) useItemAt(ctx context.Context, index int) {
	it := g.actor.Inventory().At(index)
	if it == nil {
		g.pushMessage("There is nothing in that slot.")
		return
	}

	res := it.Use(g.actor)
	if res.Consumed {
		g.actor.Inventory().RemoveItem(it)
	}
	g.pushMessage(res.Message)
	g.checkProgress(ctx)
}
