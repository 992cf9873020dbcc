package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pvaldes/bugdungeon/data"
	"github.com/pvaldes/bugdungeon/internal/entity"
	"github.com/pvaldes/bugdungeon/internal/gamedata"
	"github.com/pvaldes/bugdungeon/internal/telemetry"
	"github.com/pvaldes/bugdungeon/internal/ui"
	"github.com/pvaldes/bugdungeon/internal/world"
)

// messageLogCap bounds the in-memory message log.
const messageLogCap = 50

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer

	balance gamedata.Balance
	bugs    *gamedata.BugRegistry
	bank    *gamedata.QuestionBank
	levels  []data.LevelDef

	levelIndex int
	level      data.LevelDef
	grid       *world.Grid
	actor      *entity.Actor
	rng        *rand.Rand

	state   State
	running bool

	messages    []string
	answer      []rune // Typed answer buffer in combat
	combatRoom  *world.EnemyRoom
	promptRoom  *world.EmptyRoom
	promptOffer world.Offer
}

// New creates a game instance, loading all embedded content.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}

	bugs, err := gamedata.LoadBugRegistry()
	if err != nil {
		screen.Close()
		return nil, err
	}
	bank, err := gamedata.LoadQuestionBank()
	if err != nil {
		screen.Close()
		return nil, err
	}
	levels, err := data.LoadLevels()
	if err != nil {
		screen.Close()
		return nil, err
	}
	if len(levels) == 0 {
		screen.Close()
		return nil, fmt.Errorf("no levels loaded from levels.json")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	balance := gamedata.DefaultBalance()

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		balance:  balance,
		bugs:     bugs,
		bank:     bank,
		levels:   levels,
		actor:    entity.NewActor(cfg.PlayerName, balance),
		rng:      rand.New(rand.NewSource(seed)),
		state:    StateExplore,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("player", g.actor.GetName()),
		attribute.Int("levels", len(g.levels)),
	)

	if err := g.initLevel(ctx, 0); err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}
	initSpan.End()

	g.pushMessage("Welcome, " + g.actor.GetName() + ". Squash the bugs, claim the tomes. Press H for help.")

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// initLevel builds the level at the given index and places the player
// at its start position.
func (g *Game) initLevel(ctx context.Context, index int) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "level.build")
	defer span.End()

	def := g.levels[index]
	grid, err := BuildLevel(def, g.bugs, g.bank, g.balance, g.rng)
	if err != nil {
		span.SetAttributes(attribute.String("error", err.Error()))
		return err
	}

	g.levelIndex = index
	g.level = def
	g.grid = grid
	g.actor.SetPosition(def.StartX, def.StartY)
	g.actor.SetState(entity.StateActive)
	g.combatRoom = nil
	g.promptRoom = nil
	g.answer = nil

	span.SetAttributes(
		attribute.String("level.tier", def.Tier),
		attribute.String("level.name", def.Name),
		attribute.Int("level.rooms", grid.TotalRooms()),
	)
	return nil
}

// render draws the screen for the current game state.
func (g *Game) render() {
	switch g.state {
	case StateCombat:
		question := g.combatRoom.CurrentQuestion()
		g.renderer.RenderCombat(g.actor, g.combatRoom.Enemy(), question, string(g.answer), g.messages)
	case StateInventory:
		g.renderer.RenderInventory(g.actor, g.messages)
	case StateHelp:
		g.renderer.RenderHelp()
	case StateGameOver:
		g.renderer.RenderGameOver(g.actor)
	case StateVictory:
		g.renderer.RenderVictory(g.actor)
	default:
		g.renderer.RenderExplore(g.grid, g.actor, g.messages)
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// pushMessage appends to the message log, trimming the oldest entries.
func (g *Game) pushMessage(message string) {
	if message == "" {
		return
	}
	g.messages = append(g.messages, message)
	if len(g.messages) > messageLogCap {
		g.messages = g.messages[len(g.messages)-messageLogCap:]
	}
}

// checkProgress handles death, tier advancement, and final victory
// after any interaction that may have changed the player's fortunes.
func (g *Game) checkProgress(ctx context.Context) {
	if !g.actor.IsAlive() {
		g.state = StateGameOver
		g.pushMessage("You have fallen. The bugs win this release.")
		return
	}

	if g.level.GoalItem == "" || !g.actor.HasItem(g.level.GoalItem) {
		return
	}

	if g.level.Final {
		g.state = StateVictory
		g.pushMessage("The " + g.level.GoalItem + " is yours. The codebase is clean at last!")
		return
	}

	// Goal treasure in hand: promote and move to the next floor
	g.actor.AdvanceTier(g.balance)
	g.pushMessage(fmt.Sprintf("You claim the %s and are promoted to %s!", g.level.GoalItem, g.actor.Tier()))

	if err := g.initLevel(ctx, g.levelIndex+1); err != nil {
		// A broken level definition should not crash a running game
		g.pushMessage("The way forward is blocked: " + err.Error())
		g.state = StateVictory
		return
	}
	g.state = StateExplore
	g.pushMessage("You descend into " + g.level.Name + ". " + g.level.Description)
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
