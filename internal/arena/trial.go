// Package arena implements the arena trials: a gamified run of monster
// challenges that awards points per correct answer and levels the fighter up
// every hundred points.
package arena

import (
	"math/rand"
	"time"

	"camp-portal/internal/domain"
)

const pointsPerLevel = 100

// Outcome summarizes one answered challenge.
type Outcome struct {
	Correct bool   `json:"correct"`
	Awarded int    `json:"awarded"`
	Answer  string `json:"answer"`
	Score   int    `json:"score"`
	Level   int    `json:"level"`
}

// Trial runs one fighter's arena session. Not safe for concurrent use; the
// owning session serializes calls.
type Trial struct {
	challenges []domain.Challenge
	rnd        *rand.Rand

	score   int
	current int // index of the active challenge, -1 when none
	last    int // previously drawn index, to avoid immediate repeats
}

// NewTrial returns a trial over the given challenge pool. A nil rnd gets a
// time-seeded source.
func NewTrial(challenges []domain.Challenge, rnd *rand.Rand) *Trial {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Trial{challenges: challenges, rnd: rnd, current: -1, last: -1}
}

// Draw presents the next challenge, never repeating the previous one when the
// pool allows it. An empty pool means the content bundle was misconfigured.
func (t *Trial) Draw() (domain.Challenge, error) {
	if len(t.challenges) == 0 {
		return domain.Challenge{}, domain.ErrContentNotFound
	}
	i := t.rnd.Intn(len(t.challenges))
	if len(t.challenges) > 1 && i == t.last {
		i = (i + 1) % len(t.challenges)
	}
	t.current = i
	t.last = i
	return t.challenges[i], nil
}

// Answer scores the chosen option against the active challenge and retires
// it; a new challenge must be drawn before answering again.
func (t *Trial) Answer(option string) (Outcome, error) {
	if t.current < 0 {
		return Outcome{}, domain.ErrOutOfSequence
	}
	challenge := t.challenges[t.current]
	t.current = -1

	outcome := Outcome{Answer: challenge.Correct}
	if option == challenge.Correct {
		outcome.Correct = true
		outcome.Awarded = challenge.Points
		t.score += challenge.Points
	}
	outcome.Score = t.score
	outcome.Level = t.Level()
	return outcome, nil
}

// Score reports the accumulated points.
func (t *Trial) Score() int { return t.score }

// Level reports the fighter's level, starting at 1.
func (t *Trial) Level() int { return t.score/pointsPerLevel + 1 }

// Reset clears score and any active challenge.
func (t *Trial) Reset() {
	t.score = 0
	t.current = -1
	t.last = -1
}
