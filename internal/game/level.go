package game

import (
	"fmt"
	"math/rand"

	"github.com/pvaldes/bugdungeon/data"
	"github.com/pvaldes/bugdungeon/internal/combat"
	"github.com/pvaldes/bugdungeon/internal/gamedata"
	"github.com/pvaldes/bugdungeon/internal/item"
	"github.com/pvaldes/bugdungeon/internal/world"
)

// defaultQuestionCount is the pool size for enemy rooms that do not
// specify one.
const defaultQuestionCount = 3

// BuildLevel constructs a level's room grid from its definition.
func BuildLevel(def data.LevelDef, bugs *gamedata.BugRegistry, bank *gamedata.QuestionBank,
	balance gamedata.Balance, rng *rand.Rand) (*world.Grid, error) {

	grid := world.NewGrid(def.Name, def.Description, def.Width, def.Height)

	for i := range def.Rooms {
		roomDef := &def.Rooms[i]
		room, err := buildRoom(roomDef, def.Tier, bugs, bank, balance, rng)
		if err != nil {
			return nil, fmt.Errorf("level %q room (%d,%d): %w", def.Name, roomDef.X, roomDef.Y, err)
		}
		if !grid.SetRoom(roomDef.X, roomDef.Y, room) {
			return nil, fmt.Errorf("level %q: room %q placed out of bounds at (%d,%d)",
				def.Name, roomDef.Name, roomDef.X, roomDef.Y)
		}
	}

	if !grid.HasRoom(def.StartX, def.StartY) {
		return nil, fmt.Errorf("level %q: no room at start position (%d,%d)", def.Name, def.StartX, def.StartY)
	}

	return grid, nil
}

// buildRoom constructs one room variant from its definition. Locked
// rooms recurse into their inner definition.
func buildRoom(def *data.RoomDef, tier string, bugs *gamedata.BugRegistry, bank *gamedata.QuestionBank,
	balance gamedata.Balance, rng *rand.Rand) (world.Room, error) {

	switch def.Type {
	case "empty":
		room := world.NewEmptyRoom(def.Name, def.Description, balance, rng)
		if def.Secret != "" {
			room.SetSecret(def.Secret)
		}
		return room, nil

	case "treasure":
		room := world.NewTreasureRoom(def.Name, def.Description)
		room.SetLootCap(def.LootCap)
		for _, itemDef := range def.Items {
			room.AddItem(item.FromDef(itemDef))
		}
		return room, nil

	case "enemy":
		var bug *data.BugDef
		if def.Bug == "" {
			// No bug pinned: weighted spawn from the tier's roster
			bug = bugs.SpawnRandom(tier, rng)
			if bug == nil {
				return nil, fmt.Errorf("no bugs available for tier %q", tier)
			}
		} else {
			bug = bugs.GetByID(def.Bug)
			if bug == nil {
				return nil, fmt.Errorf("unknown bug %q", def.Bug)
			}
		}

		count := def.Questions
		if count <= 0 {
			count = defaultQuestionCount
		}
		questions := combat.QuestionsFromDefs(bank.Draw(tier, count, rng))

		enemy := combat.NewEnemy(bug, questions, rng)
		enemy.SetAttemptCap(balance.AttemptCap)
		enemy.SetMinDamage(balance.MinDamage)
		if def.Boss != nil {
			enemy.OverrideStats(def.Boss.HP, def.Boss.Damage, def.Boss.Defense, def.Boss.XPReward)
		}

		room := world.NewEnemyRoom(def.Name, def.Description, enemy, balance)
		room.SetRespawn(def.Respawn)
		return room, nil

	case "locked":
		if def.Inner == nil {
			return nil, fmt.Errorf("locked room %q has no inner room", def.Name)
		}
		inner, err := buildRoom(def.Inner, tier, bugs, bank, balance, rng)
		if err != nil {
			return nil, fmt.Errorf("inner room: %w", err)
		}
		if def.RequiredKey == "" {
			return nil, fmt.Errorf("locked room %q has no required key", def.Name)
		}
		return world.NewLockedRoom(def.Name, def.Description, def.RequiredKey, inner, balance), nil

	default:
		return nil, fmt.Errorf("unknown room type %q", def.Type)
	}
}
