package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pvaldes/bugdungeon/internal/combat"
	"github.com/pvaldes/bugdungeon/internal/entity"
	"github.com/pvaldes/bugdungeon/internal/world"
)

// Layout constants for the exploration view.
const (
	mapOffsetX = 2
	mapOffsetY = 2
	logLines   = 6
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderExplore draws the floor map, the status bar, and the message log.
func (r *Renderer) RenderExplore(grid *world.Grid, actor *entity.Actor, messages []string) {
	r.screen.Clear()

	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.drawText(mapOffsetX, 0, title, grid.Name())

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			glyph, style := r.roomGlyph(grid.RoomAt(x, y))
			r.screen.SetContent(mapOffsetX+x*2, mapOffsetY+y, glyph, style)
		}
	}

	// Player goes on top of whatever room they stand in
	px, py := actor.Position()
	playerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.SetContent(mapOffsetX+px*2, mapOffsetY+py, '@', playerStyle)

	statusY := mapOffsetY + grid.Height() + 1
	r.drawStatus(statusY, actor)
	r.drawText(mapOffsetX, statusY+1, dimStyle(),
		"arrows/wasd move  enter/f interact  v pack  h help  q quit")

	r.drawLog(statusY+3, messages)
	r.screen.Show()
}

// RenderCombat draws the encounter panel: enemy, question, options, and
// the answer being typed.
func (r *Renderer) RenderCombat(actor *entity.Actor, enemy *combat.Enemy, question *combat.Question, answer string, messages []string) {
	r.screen.Clear()

	enemyStyle := tcell.StyleDefault.Foreground(enemy.Def().TCellColor()).Bold(true)
	r.drawText(mapOffsetX, 0, enemyStyle,
		fmt.Sprintf("%c %s", enemy.Def().GlyphRune(), enemy.Name()))
	r.drawText(mapOffsetX, 1, dimStyle(), enemy.Description())

	r.drawText(mapOffsetX, 3, r.healthStyle(enemy.HP(), enemy.MaxHP()),
		fmt.Sprintf("Enemy HP %d/%d", enemy.HP(), enemy.MaxHP()))
	r.drawText(mapOffsetX, 4, dimStyle(),
		fmt.Sprintf("Attempts %d/%d", enemy.Attempts(), enemy.AttemptCap()))

	y := 6
	if question != nil {
		r.drawText(mapOffsetX, y, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true), question.Prompt)
		y += 2
		for i, option := range question.Options {
			r.drawText(mapOffsetX+2, y, tcell.StyleDefault.Foreground(tcell.ColorAqua),
				fmt.Sprintf("%c) %s", question.Letter(i), option))
			y++
		}
		y++
	}

	r.drawText(mapOffsetX, y, tcell.StyleDefault.Foreground(tcell.ColorWhite),
		"Answer: "+answer+"_")
	r.drawText(mapOffsetX, y+1, dimStyle(), "type a letter or the full answer, enter to submit, esc to back off")

	r.drawStatus(y+3, actor)
	r.drawLog(y+5, messages)
	r.screen.Show()
}

// RenderInventory draws the pack contents with use hints.
func (r *Renderer) RenderInventory(actor *entity.Actor, messages []string) {
	r.screen.Clear()

	inv := actor.Inventory()
	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.drawText(mapOffsetX, 0, title,
		fmt.Sprintf("Pack (%d/%d)", inv.Size(), inv.Capacity()))

	y := 2
	if inv.Size() == 0 {
		r.drawText(mapOffsetX, y, dimStyle(), "Nothing but lint in here.")
		y++
	}
	for i, it := range inv.Items() {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if !it.CanBeUsed() {
			style = dimStyle()
		}
		line := fmt.Sprintf("%d) [%s] %s - %s", i+1, it.Kind(), it.Name(), it.Description())
		r.drawText(mapOffsetX, y, style, line)
		y++
	}

	r.drawText(mapOffsetX, y+1, dimStyle(), "press a number to use an item, v or esc to return")
	r.drawStatus(y+3, actor)
	r.drawLog(y+5, messages)
	r.screen.Show()
}

// RenderHelp draws the key bindings screen.
func (r *Renderer) RenderHelp() {
	r.screen.Clear()

	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.drawText(mapOffsetX, 0, title, "How to play")

	lines := []string{
		"You are a new hire lost in a haunted codebase. Bugs roam its",
		"rooms; answer their questions correctly to squash them.",
		"",
		"arrows / wasd   move between rooms",
		"enter / f       interact with the current room",
		"v               open the pack",
		"h               this screen",
		"q / esc         quit",
		"",
		"In combat, type an option letter (A-D) or the full answer",
		"and press enter. Wrong answers hurt.",
		"",
		"@ you   ? unexplored   . empty   $ treasure   + locked   x cleared",
	}
	for i, line := range lines {
		r.drawText(mapOffsetX, 2+i, tcell.StyleDefault.Foreground(tcell.ColorWhite), line)
	}

	r.drawText(mapOffsetX, 2+len(lines)+1, dimStyle(), "press any key to return")
	r.screen.Show()
}

// RenderGameOver draws the defeat screen with a run summary.
func (r *Renderer) RenderGameOver(actor *entity.Actor) {
	r.renderEnd(actor, "YOU HAVE FALLEN", tcell.ColorRed,
		"The bugs reclaim the codebase. Another recruit lost to production.")
}

// RenderVictory draws the victory screen with a run summary.
func (r *Renderer) RenderVictory(actor *entity.Actor) {
	r.renderEnd(actor, "THE CODEBASE IS CLEAN", tcell.ColorGreen,
		"Every bug squashed, every tome claimed. Ship it.")
}

// renderEnd draws a terminal screen shared by defeat and victory.
func (r *Renderer) renderEnd(actor *entity.Actor, banner string, color tcell.Color, epitaph string) {
	r.screen.Clear()

	style := tcell.StyleDefault.Foreground(color).Bold(true)
	r.drawText(mapOffsetX, 1, style, banner)
	r.drawText(mapOffsetX, 3, tcell.StyleDefault.Foreground(tcell.ColorWhite), epitaph)

	stats := actor.Stats()
	summary := []string{
		fmt.Sprintf("%s, %s, level %d", actor.GetName(), actor.Tier(), stats.Level()),
		fmt.Sprintf("rooms explored    %d", stats.RoomsExplored()),
		fmt.Sprintf("bugs squashed     %d", stats.EnemiesDefeated()),
		fmt.Sprintf("treasures found   %d", stats.TreasuresFound()),
		fmt.Sprintf("experience earned %d", stats.Experience()),
	}
	for i, line := range summary {
		r.drawText(mapOffsetX, 5+i, tcell.StyleDefault.Foreground(tcell.ColorWhite), line)
	}

	r.drawText(mapOffsetX, 5+len(summary)+1, dimStyle(), "press any key to exit")
	r.screen.Show()
}

// roomGlyph picks the map glyph and style for a room cell. Unvisited
// rooms stay hidden behind '?'.
func (r *Renderer) roomGlyph(room world.Room) (rune, tcell.Style) {
	if room == nil {
		return ' ', tcell.StyleDefault
	}
	if !room.IsVisited() {
		return '?', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}

	switch rm := room.(type) {
	case *world.EnemyRoom:
		if rm.IsCleared() {
			return 'x', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		}
		return rm.Enemy().Def().GlyphRune(), tcell.StyleDefault.Foreground(rm.Enemy().Def().TCellColor())
	case *world.TreasureRoom:
		if rm.RemainingItems() == 0 {
			return '.', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		}
		return '$', tcell.StyleDefault.Foreground(tcell.ColorGold)
	case *world.LockedRoom:
		if rm.IsUnlocked() {
			return '\'', tcell.StyleDefault.Foreground(tcell.ColorGray)
		}
		return '+', tcell.StyleDefault.Foreground(tcell.ColorSilver)
	default:
		return '.', tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

// drawStatus draws the player's vitals on one line.
func (r *Renderer) drawStatus(y int, actor *entity.Actor) {
	stats := actor.Stats()
	x := r.drawText(mapOffsetX, y, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		fmt.Sprintf("%s [%s] Lv%d  ", actor.GetName(), actor.Tier(), stats.Level()))
	x = r.drawText(x, y, r.healthStyle(stats.HP(), stats.MaxHP()),
		fmt.Sprintf("HP %d/%d", stats.HP(), stats.MaxHP()))
	r.drawText(x, y, dimStyle(),
		fmt.Sprintf("  PWR %d  DEF %d  XP %d/%d", stats.Power(), stats.Defense(),
			stats.Experience(), stats.ExperienceToNext()))
}

// drawLog draws the tail of the message log.
func (r *Renderer) drawLog(y int, messages []string) {
	start := len(messages) - logLines
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		style := dimStyle()
		if start+i == len(messages)-1 {
			style = tcell.StyleDefault.Foreground(tcell.ColorWhite)
		}
		r.drawText(mapOffsetX, y+i, style, msg)
	}
}

// drawText writes a string at the given position and returns the x
// coordinate one past its end.
func (r *Renderer) drawText(x, y int, style tcell.Style, text string) int {
	width, _ := r.screen.Size()
	for _, ch := range text {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}

// healthStyle blends red through green with the health ratio.
func (r *Renderer) healthStyle(hp, maxHP int) tcell.Style {
	ratio := 0.0
	if maxHP > 0 {
		ratio = float64(hp) / float64(maxHP)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	low := colorful.Hcl(30, 0.8, 0.5)
	high := colorful.Hcl(135, 0.8, 0.7)
	c := low.BlendHcl(high, ratio).Clamped()

	red, green, blue := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(red), int32(green), int32(blue)))
}

// dimStyle is the style for secondary text.
func dimStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.ColorGray)
}
