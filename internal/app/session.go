package app

import (
	"math/rand"
	"sync"
	"time"

	"camp-portal/internal/adventure"
	"camp-portal/internal/arena"
	"camp-portal/internal/domain"
	"camp-portal/internal/quiz"
)

// Session is one visitor's portal state: a quiz engine, a labyrinth engine,
// and an arena trial, each an explicit owned object rather than package-level
// state. Engine calls are serialized by the session mutex so the engines
// themselves stay single-threaded.
type Session struct {
	id        string
	createdAt time.Time

	mu        sync.Mutex
	quiz      *quiz.Engine
	labyrinth *adventure.Engine
	trial     *arena.Trial
}

// NewSession is exported for infrastructure layers that need to seed sessions.
func NewSession(id string, content domain.CampContent) *Session {
	return newSession(id, content, nil)
}

// NewSessionWithRand is test-only for deterministic puzzle and challenge draws.
func NewSessionWithRand(id string, content domain.CampContent, rnd *rand.Rand) *Session {
	return newSession(id, content, rnd)
}

func newSession(id string, content domain.CampContent, rnd *rand.Rand) *Session {
	return &Session{
		id:        id,
		createdAt: time.Now(),
		quiz:      quiz.New(content.Quiz),
		labyrinth: adventure.New(content.Labyrinth, rnd),
		trial:     arena.NewTrial(content.Challenges, rnd),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

func (s *Session) startQuiz() domain.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz.Start()
}

func (s *Session) answerQuiz(questionIndex, optionIndex int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz.Answer(questionIndex, optionIndex)
}

func (s *Session) nextQuestion() (domain.Question, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz.Next()
}

func (s *Session) quizResult() (quiz.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz.Result()
}

func (s *Session) resetQuiz() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiz.Reset()
}

func (s *Session) restartLabyrinth() adventure.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.labyrinth.Restart()
}

func (s *Session) choosePath(action string) (adventure.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.labyrinth.Choose(action)
}

func (s *Session) attack() (adventure.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.labyrinth.Attack()
}

func (s *Session) flee() (adventure.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.labyrinth.Flee()
}

func (s *Session) solvePuzzle(answer string) (adventure.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.labyrinth.SubmitPuzzleAnswer(answer)
}

func (s *Session) labyrinthSnapshot() adventure.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.labyrinth.Snapshot()
}

func (s *Session) drawChallenge() (domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trial.Draw()
}

func (s *Session) answerChallenge(option string) (arena.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trial.Answer(option)
}
