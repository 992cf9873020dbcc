package game

import (
	"math/rand"
	"testing"

	"github.com/pvaldes/bugdungeon/data"
	"github.com/pvaldes/bugdungeon/internal/gamedata"
	"github.com/pvaldes/bugdungeon/internal/world"
)

func TestBuildAllLevels(t *testing.T) {
	bugs := gamedata.MustLoadBugRegistry()
	bank := gamedata.MustLoadQuestionBank()
	balance := gamedata.DefaultBalance()
	levels := data.MustLoadLevels()

	for _, def := range levels {
		grid, err := BuildLevel(def, bugs, bank, balance, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("Level %q failed to build: %v", def.Name, err)
		}
		if grid.TotalRooms() != len(def.Rooms) {
			t.Errorf("Level %q: expected %d rooms, got %d", def.Name, len(def.Rooms), grid.TotalRooms())
		}
		if !grid.HasRoom(def.StartX, def.StartY) {
			t.Errorf("Level %q: no room at start position", def.Name)
		}
	}
}

func TestBuildLevelRoomTypes(t *testing.T) {
	bugs := gamedata.MustLoadBugRegistry()
	bank := gamedata.MustLoadQuestionBank()
	balance := gamedata.DefaultBalance()
	levels := data.MustLoadLevels()

	grid, err := BuildLevel(levels[0], bugs, bank, balance, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Failed to build level: %v", err)
	}

	for _, roomDef := range levels[0].Rooms {
		room := grid.RoomAt(roomDef.X, roomDef.Y)
		if room == nil {
			t.Fatalf("Room %q missing at (%d,%d)", roomDef.Name, roomDef.X, roomDef.Y)
		}
		if room.Type().String() != roomDef.Type {
			t.Errorf("Room %q: expected type %s, got %s", roomDef.Name, roomDef.Type, room.Type())
		}
		if room.Name() != roomDef.Name {
			t.Errorf("Expected room name %q, got %q", roomDef.Name, room.Name())
		}
	}
}

func TestBuildLevelBossOverride(t *testing.T) {
	bugs := gamedata.MustLoadBugRegistry()
	bank := gamedata.MustLoadQuestionBank()
	balance := gamedata.DefaultBalance()
	levels := data.MustLoadLevels()

	// Later levels place a boss; check its override applied
	for _, def := range levels {
		var bossDef *data.RoomDef
		for i := range def.Rooms {
			if def.Rooms[i].Boss != nil {
				bossDef = &def.Rooms[i]
				break
			}
		}
		if bossDef == nil {
			continue
		}

		grid, err := BuildLevel(def, bugs, bank, balance, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("Failed to build level: %v", err)
		}

		room, ok := grid.RoomAt(bossDef.X, bossDef.Y).(*world.EnemyRoom)
		if !ok {
			t.Fatalf("Level %q boss room is not an enemy room", def.Name)
		}
		if bossDef.Boss.HP > 0 && room.Enemy().MaxHP() != bossDef.Boss.HP {
			t.Errorf("Level %q boss: expected %d HP, got %d", def.Name, bossDef.Boss.HP, room.Enemy().MaxHP())
		}
	}
}

func TestBuildLevelSpawnsUnpinnedBug(t *testing.T) {
	bugs := gamedata.MustLoadBugRegistry()
	bank := gamedata.MustLoadQuestionBank()
	balance := gamedata.DefaultBalance()

	def := data.LevelDef{
		Tier: "junior", Name: "Roulette", Width: 1, Height: 1, StartX: 0, StartY: 0,
		Rooms: []data.RoomDef{
			{X: 0, Y: 0, Type: "enemy", Name: "Lair"},
		},
	}

	grid, err := BuildLevel(def, bugs, bank, balance, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Failed to build level: %v", err)
	}

	room, ok := grid.RoomAt(0, 0).(*world.EnemyRoom)
	if !ok {
		t.Fatal("Expected an enemy room")
	}
	if room.Enemy().Def().Tier != "junior" {
		t.Errorf("Expected a junior-tier bug, got %s (%s)", room.Enemy().Def().ID, room.Enemy().Def().Tier)
	}
}

func TestBuildLevelUnknownBug(t *testing.T) {
	bugs := gamedata.MustLoadBugRegistry()
	bank := gamedata.MustLoadQuestionBank()
	balance := gamedata.DefaultBalance()

	def := data.LevelDef{
		Tier: "trainee", Name: "Broken", Width: 2, Height: 2, StartX: 0, StartY: 0,
		Rooms: []data.RoomDef{
			{X: 0, Y: 0, Type: "enemy", Name: "Lair", Bug: "heisenbug"},
		},
	}

	if _, err := BuildLevel(def, bugs, bank, balance, rand.New(rand.NewSource(1))); err == nil {
		t.Error("An unknown bug ID should fail the build")
	}
}

func TestBuildLevelMissingStart(t *testing.T) {
	bugs := gamedata.MustLoadBugRegistry()
	bank := gamedata.MustLoadQuestionBank()
	balance := gamedata.DefaultBalance()

	def := data.LevelDef{
		Tier: "trainee", Name: "Empty", Width: 2, Height: 2, StartX: 1, StartY: 1,
		Rooms: []data.RoomDef{
			{X: 0, Y: 0, Type: "empty", Name: "Corner"},
		},
	}

	if _, err := BuildLevel(def, bugs, bank, balance, rand.New(rand.NewSource(1))); err == nil {
		t.Error("A missing start room should fail the build")
	}
}
