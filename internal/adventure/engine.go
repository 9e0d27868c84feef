// Package adventure implements the labyrinth minigame: a directed graph of
// scenes traversed by player choices, with battle and puzzle encounters gating
// some edges, and player health and inventory tracked across the session.
package adventure

import (
	"math/rand"
	"strings"
	"time"

	"camp-portal/internal/domain"
)

// Mode is the engine's current sub-state.
type Mode string

const (
	Traversing Mode = "traversing"
	InBattle   Mode = "battle"
	InPuzzle   Mode = "puzzle"
	Victory    Mode = "victory"
	Defeated   Mode = "defeated"
)

const (
	maxHealth    = 100
	playerDamage = 30
)

// Snapshot is a pure read of the engine for display. Monster and Puzzle are
// set only in their respective modes.
type Snapshot struct {
	Mode      Mode            `json:"mode"`
	Scene     int             `json:"scene"`
	Title     string          `json:"title"`
	Narrative string          `json:"narrative"`
	Actions   []string        `json:"actions"`
	Health    int             `json:"health"`
	Inventory []string        `json:"inventory"`
	Monster   *domain.Monster `json:"monster,omitempty"`
	Puzzle    string          `json:"puzzle,omitempty"`
}

// Engine runs one labyrinth session. Not safe for concurrent use; the owning
// session serializes calls. Puzzle selection is the only randomness; the
// source is injected so tests stay deterministic.
type Engine struct {
	content domain.LabyrinthContent
	rnd     *rand.Rand

	mode      Mode
	scene     int
	health    int
	inventory []string
	monster   *domain.Monster // mutable copy during battle
	puzzle    *domain.Puzzle
}

// New returns an engine positioned at the labyrinth entrance. A nil rnd gets
// a time-seeded source.
func New(content domain.LabyrinthContent, rnd *rand.Rand) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{content: content, rnd: rnd}
	e.Restart()
	return e
}

// Restart resets the session to the entrance: full health, empty inventory,
// Traversing. Valid from any state.
func (e *Engine) Restart() Snapshot {
	e.health = maxHealth
	e.inventory = nil
	e.monster = nil
	e.puzzle = nil
	e.enterScene(0)
	return e.Snapshot()
}

// Choose resolves one of the current scene's actions. Only valid while
// Traversing; unknown labels are rejected without mutation.
func (e *Engine) Choose(actionLabel string) (Snapshot, error) {
	if e.mode != Traversing {
		return e.Snapshot(), domain.ErrInvalidAction
	}

	scene := e.content.Scenes[e.scene]
	var dest *domain.Destination
	for i := range scene.Choices {
		if strings.EqualFold(scene.Choices[i].Label, actionLabel) {
			dest = &scene.Choices[i].Dest
			break
		}
	}
	if dest == nil {
		return e.Snapshot(), domain.ErrInvalidAction
	}

	switch dest.Kind {
	case domain.DestBattle:
		if dest.Monster < 0 || dest.Monster >= len(e.content.Monsters) {
			return e.Snapshot(), domain.ErrContentNotFound
		}
		monster := e.content.Monsters[dest.Monster]
		e.monster = &monster // fresh mutable copy of the template
		e.mode = InBattle
	case domain.DestPuzzle:
		if len(e.content.Puzzles) == 0 {
			return e.Snapshot(), domain.ErrContentNotFound
		}
		puzzle := e.content.Puzzles[e.rnd.Intn(len(e.content.Puzzles))]
		e.puzzle = &puzzle
		e.mode = InPuzzle
	case domain.DestVictory:
		e.mode = Victory
	default:
		e.enterScene(dest.Scene)
	}
	return e.Snapshot(), nil
}

// Attack strikes the monster for the fixed player damage. A felled monster
// resumes traversal at the scene after the one that triggered the battle;
// otherwise the monster counterattacks, and the player is Defeated at zero
// health. Only valid in battle.
func (e *Engine) Attack() (Snapshot, error) {
	if e.mode != InBattle {
		return e.Snapshot(), domain.ErrInvalidAction
	}

	e.monster.Health -= playerDamage
	if e.monster.Health <= 0 {
		e.monster = nil
		e.advance()
		return e.Snapshot(), nil
	}

	e.health -= e.monster.Attack
	if e.health <= 0 {
		e.health = 0
		e.mode = Defeated
	}
	return e.Snapshot(), nil
}

// Flee abandons the battle; it always counts as a loss. Only valid in battle.
func (e *Engine) Flee() (Snapshot, error) {
	if e.mode != InBattle {
		return e.Snapshot(), domain.ErrInvalidAction
	}
	e.mode = Defeated
	return e.Snapshot(), nil
}

// SubmitPuzzleAnswer checks a free-text answer against the active puzzle.
// Correct answers resume traversal at the next scene; wrong answers mutate
// nothing and may be retried indefinitely. Only valid in a puzzle.
func (e *Engine) SubmitPuzzleAnswer(text string) (snap Snapshot, correct bool, err error) {
	if e.mode != InPuzzle {
		return e.Snapshot(), false, domain.ErrInvalidAction
	}

	got := strings.ToLower(strings.TrimSpace(text))
	want := strings.ToLower(strings.TrimSpace(e.puzzle.Answer))
	if got != want {
		return e.Snapshot(), false, nil
	}

	e.puzzle = nil
	e.advance()
	return e.Snapshot(), true, nil
}

// Snapshot returns the current display state without mutating anything.
func (e *Engine) Snapshot() Snapshot {
	scene := e.content.Scenes[e.scene]
	snap := Snapshot{
		Mode:      e.mode,
		Scene:     e.scene,
		Title:     scene.Title,
		Narrative: scene.Description,
		Health:    e.health,
		Inventory: append([]string(nil), e.inventory...),
	}
	if e.mode == Traversing {
		for _, choice := range scene.Choices {
			snap.Actions = append(snap.Actions, choice.Label)
		}
	}
	if e.mode == InBattle && e.monster != nil {
		monster := *e.monster
		snap.Monster = &monster
	}
	if e.mode == InPuzzle && e.puzzle != nil {
		snap.Puzzle = e.puzzle.Question
	}
	return snap
}

// Mode reports the engine's current mode.
func (e *Engine) Mode() Mode { return e.mode }

// Health reports the player's health, always within [0,100].
func (e *Engine) Health() int { return e.health }

// advance moves to the scene after the one whose encounter just resolved.
// Walking off the end of the graph counts as escaping the labyrinth.
func (e *Engine) advance() {
	if e.scene+1 >= len(e.content.Scenes) {
		e.mode = Victory
		return
	}
	e.enterScene(e.scene + 1)
}

// enterScene applies the target scene's on-enter effect exactly once per
// entry; rendering via Snapshot never re-applies it.
func (e *Engine) enterScene(index int) {
	e.scene = index
	e.mode = Traversing
	if effect := e.content.Scenes[index].Effect; effect != nil {
		e.health += effect.Heal
		if e.health > maxHealth {
			e.health = maxHealth
		}
		if e.health < 0 {
			e.health = 0
		}
		if effect.Item != "" {
			e.inventory = append(e.inventory, effect.Item)
		}
	}
}
