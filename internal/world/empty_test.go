package world

import (
	"math/rand"
	"testing"

	"github.com/pvaldes/bugdungeon/internal/entity"
	"github.com/pvaldes/bugdungeon/internal/gamedata"
)

func TestEmptyRoomFlavor(t *testing.T) {
	balance := gamedata.DefaultBalance()
	room := NewEmptyRoom("Break Room", "stale coffee and silence", balance, rand.New(rand.NewSource(1)))
	actor := entity.NewActor("Tester", balance)

	res := room.Interact(actor)
	if !res.Success || res.Kind != ResultDialogue {
		t.Fatalf("Expected flavor dialogue, got %+v", res)
	}
	if res.Offer != OfferNone {
		t.Error("A healthy actor in a secretless room gets no offer")
	}
	// First visit 10 XP + flavor 5 XP
	if actor.Stats().Experience() != 15 {
		t.Errorf("Expected 15 XP, got %d", actor.Stats().Experience())
	}
	if !room.IsVisited() {
		t.Error("Interaction should mark the room visited")
	}
}

func TestEmptyRoomOffersRest(t *testing.T) {
	balance := gamedata.DefaultBalance()
	room := NewEmptyRoom("Break Room", "quiet", balance, rand.New(rand.NewSource(1)))
	actor := entity.NewActor("Tester", balance)
	actor.TakeDamage(40)

	res := room.Interact(actor)
	if res.Offer != OfferRest {
		t.Fatalf("A hurt actor should be offered rest, got %+v", res)
	}

	hpBefore := actor.GetHP()
	rest := room.Rest(actor)
	if !rest.Success || rest.Kind != ResultHeal {
		t.Fatalf("Expected a heal, got %+v", rest)
	}
	// Rest heals up to the 20 point cap
	if actor.GetHP()-hpBefore != 20 {
		t.Errorf("Expected 20 healed, got %d", actor.GetHP()-hpBefore)
	}

	actor.FullHeal()
	rest = room.Rest(actor)
	if rest.Success {
		t.Error("Resting at full health does nothing")
	}
}

func TestEmptyRoomSecretSearch(t *testing.T) {
	balance := gamedata.DefaultBalance()
	room := NewEmptyRoom("Server Closet", "humming racks", balance, rand.New(rand.NewSource(2)))
	room.SetSecret("a hidden stash of clean commits")
	actor := entity.NewActor("Tester", balance)
	actor.TakeDamage(40)

	res := room.Interact(actor)
	if res.Offer != OfferSearch {
		t.Fatalf("A pending secret should be offered first, got %+v", res)
	}

	// The chance grows per failed attempt and is forced at the cap,
	// so the secret always turns up within 3 searches
	found := false
	for i := 0; i < balance.SecretAttemptCap; i++ {
		if sr := room.Search(actor); sr.Success {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("The secret must be found within the attempt cap")
	}
	if !room.SecretRevealed() {
		t.Error("The secret should be marked revealed")
	}

	// Nothing left afterwards
	sr := room.Search(actor)
	if sr.Success {
		t.Error("A revealed secret cannot be found twice")
	}

	// With the secret gone the room falls back to the rest offer
	res = room.Interact(actor)
	if res.Offer == OfferSearch {
		t.Error("No search should be offered once the secret is revealed")
	}
}

func TestEmptyRoomInaccessible(t *testing.T) {
	balance := gamedata.DefaultBalance()
	room := NewEmptyRoom("Sealed Wing", "boarded up", balance, rand.New(rand.NewSource(1)))
	room.SetAccessible(false)
	actor := entity.NewActor("Tester", balance)

	res := room.Interact(actor)
	if res.Kind != ResultNone {
		t.Errorf("A sealed room yields no result, got %s", res.Kind)
	}
	if room.IsVisited() || room.VisitCount() != 0 {
		t.Error("A blocked interaction must not change room state")
	}
	if actor.Stats().Experience() != 0 {
		t.Error("A blocked interaction must not award experience")
	}
}

func TestEmptyRoomNilActor(t *testing.T) {
	balance := gamedata.DefaultBalance()
	room := NewEmptyRoom("Break Room", "quiet", balance, rand.New(rand.NewSource(1)))

	res := room.Interact(nil)
	if res.Kind != ResultNone {
		t.Errorf("A nil actor yields no result, got %s", res.Kind)
	}
	if room.IsVisited() {
		t.Error("A nil actor must not mark the room visited")
	}
}
