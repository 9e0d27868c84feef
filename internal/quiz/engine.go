// Package quiz implements the godly-parent quiz: an ordered walk over fixed
// multiple-choice questions that tallies one vote per answer and resolves the
// parent with the highest tally.
package quiz

import (
	"camp-portal/internal/domain"
)

// State tracks where the engine is in its lifecycle.
type State int

const (
	NotStarted State = iota
	Presenting
	Resolved
)

// Result is the resolved quiz outcome.
type Result struct {
	God     string            `json:"god"`
	Profile domain.GodProfile `json:"profile"`
}

// Engine runs one quiz session. It is not safe for concurrent use; the owning
// session serializes calls.
type Engine struct {
	content domain.QuizContent

	state    State
	cursor   int
	answered []bool
	tally    map[string]int
	order    []string // gods in first-seen answer order, for deterministic ties
}

// New returns an engine in the NotStarted state.
func New(content domain.QuizContent) *Engine {
	e := &Engine{content: content}
	e.Reset()
	e.state = NotStarted
	return e
}

// Start resets all tallies and returns the first question. An empty question
// list resolves immediately to the fallback profile.
func (e *Engine) Start() domain.Question {
	e.Reset()
	if len(e.content.Questions) == 0 {
		e.state = Resolved
		return domain.Question{}
	}
	e.state = Presenting
	return e.content.Questions[0]
}

// Answer records the chosen option for a question. It rejects out-of-range
// indexes and repeat answers without mutating anything. The returned flag
// reports whether more questions follow the current one.
func (e *Engine) Answer(questionIndex, optionIndex int) (hasNext bool, err error) {
	if e.state != Presenting {
		return false, domain.ErrOutOfSequence
	}
	if questionIndex < 0 || questionIndex >= len(e.content.Questions) {
		return false, domain.ErrInvalidIndex
	}
	question := e.content.Questions[questionIndex]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return false, domain.ErrInvalidIndex
	}
	if e.answered[questionIndex] {
		return false, domain.ErrInvalidIndex
	}

	god := question.Options[optionIndex].God
	if _, seen := e.tally[god]; !seen {
		e.order = append(e.order, god)
	}
	e.tally[god]++
	e.answered[questionIndex] = true

	return e.cursor+1 < len(e.content.Questions), nil
}

// Next advances to the following question. The current question must have been
// answered. When the last question is consumed the engine becomes Resolved and
// done is reported true.
func (e *Engine) Next() (next domain.Question, done bool, err error) {
	if e.state != Presenting {
		return domain.Question{}, false, domain.ErrOutOfSequence
	}
	if !e.answered[e.cursor] {
		return domain.Question{}, false, domain.ErrOutOfSequence
	}

	e.cursor++
	if e.cursor >= len(e.content.Questions) {
		e.state = Resolved
		return domain.Question{}, true, nil
	}
	return e.content.Questions[e.cursor], false, nil
}

// Result resolves the winning godly parent. Only valid once the engine is
// Resolved. With no answers at all the fallback profile wins. Ties go to the
// god that first reached the running maximum, in first-seen answer order; this
// mirrors the portal's long-standing behavior and is covered by tests rather
// than replaced with a fairer rule.
func (e *Engine) Result() (Result, error) {
	if e.state != Resolved {
		return Result{}, domain.ErrOutOfSequence
	}

	winner := e.content.Fallback
	max := 0
	for _, god := range e.order {
		if e.tally[god] > max {
			max = e.tally[god]
			winner = god
		}
	}

	profile, ok := e.content.Profiles[winner]
	if !ok {
		winner = e.content.Fallback
		profile = e.content.Profiles[winner]
	}
	return Result{God: winner, Profile: profile}, nil
}

// Reset returns the engine to its initial state. Valid from any state.
func (e *Engine) Reset() {
	e.state = NotStarted
	e.cursor = 0
	e.answered = make([]bool, len(e.content.Questions))
	e.tally = make(map[string]int)
	e.order = nil
}

// State reports the engine's lifecycle state.
func (e *Engine) State() State { return e.state }

// Cursor reports the index of the question currently presented.
func (e *Engine) Cursor() int { return e.cursor }

// Answered reports how many questions have been answered so far.
func (e *Engine) Answered() int {
	n := 0
	for _, a := range e.answered {
		if a {
			n++
		}
	}
	return n
}

// TallyTotal sums all recorded votes; it always equals Answered().
func (e *Engine) TallyTotal() int {
	total := 0
	for _, c := range e.tally {
		total += c
	}
	return total
}
