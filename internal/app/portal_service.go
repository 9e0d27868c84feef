package app

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"camp-portal/internal/adventure"
	"camp-portal/internal/arena"
	"camp-portal/internal/domain"
	"camp-portal/internal/geo"
	"camp-portal/internal/quiz"
)

// SessionRepository abstracts how portal sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	Put(session *Session)
	Get(id string) (*Session, bool)
	Delete(id string)
}

// ContentRepository loads camp content (from cache/backing store).
type ContentRepository interface {
	GetContent(ctx context.Context) (domain.CampContent, error)
}

// QuestStore persists a visitor's quest board under a fixed per-session key.
type QuestStore interface {
	Load(ctx context.Context, sessionID string) ([]domain.Quest, error)
	Save(ctx context.Context, sessionID string, quests []domain.Quest) error
}

// OracleClient makes one-shot calls to the generative Oracle.
type OracleClient interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Registration messages shown to the visitor.
const (
	WelcomeMessage      = "Welcome, Demigod! Entering Camp Half-Blood..."
	InvalidEmailMessage = "Please enter a valid email address to proceed."
)

// Fixed Oracle fallbacks; failures never propagate past the service.
const (
	oracleSilentReply  = "The mist is too thick, demigod. I cannot perceive an answer at this moment."
	oracleFailureReply = "A disturbance in the mortal realm prevents my vision. Try again later."
)

// nextClass is the camp location the map readout always points at.
const nextClass = "Arena"

// PortalService contains the portal use cases.
type PortalService struct {
	sessions SessionRepository
	content  ContentRepository
	quests   QuestStore
	oracle   OracleClient // nil when the Oracle is not configured
}

func NewPortalService(sessions SessionRepository, content ContentRepository, quests QuestStore, oracle OracleClient) *PortalService {
	return &PortalService{sessions: sessions, content: content, quests: quests, oracle: oracle}
}

// Register validates the camper's email and opens a fresh portal session.
func (p *PortalService) Register(ctx context.Context, email string) (sessionID, message string, err error) {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return "", InvalidEmailMessage, domain.ErrInvalidEmail
	}

	content, err := p.content.GetContent(ctx)
	if err != nil {
		return "", "", err
	}

	session := NewSession(uuid.NewString(), content)
	p.sessions.Put(session)
	return session.ID(), WelcomeMessage, nil
}

// Leave closes a portal session.
func (p *PortalService) Leave(_ context.Context, sessionID string) {
	p.sessions.Delete(sessionID)
}

func (p *PortalService) session(id string) (*Session, error) {
	session, ok := p.sessions.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// --- Godly-parent quiz ---

func (p *PortalService) StartQuiz(sessionID string) (domain.Question, error) {
	session, err := p.session(sessionID)
	if err != nil {
		return domain.Question{}, err
	}
	return session.startQuiz(), nil
}

func (p *PortalService) AnswerQuiz(sessionID string, questionIndex, optionIndex int) (hasNext bool, err error) {
	session, err := p.session(sessionID)
	if err != nil {
		return false, err
	}
	return session.answerQuiz(questionIndex, optionIndex)
}

func (p *PortalService) NextQuestion(sessionID string) (next domain.Question, done bool, err error) {
	session, err := p.session(sessionID)
	if err != nil {
		return domain.Question{}, false, err
	}
	return session.nextQuestion()
}

func (p *PortalService) QuizResult(sessionID string) (quiz.Result, error) {
	session, err := p.session(sessionID)
	if err != nil {
		return quiz.Result{}, err
	}
	return session.quizResult()
}

func (p *PortalService) ResetQuiz(sessionID string) error {
	session, err := p.session(sessionID)
	if err != nil {
		return err
	}
	session.resetQuiz()
	return nil
}

// --- Labyrinth ---

func (p *PortalService) RestartLabyrinth(sessionID string) (adventure.Snapshot, error) {
	session, err := p.session(sessionID)
	if err != nil {
		return adventure.Snapshot{}, err
	}
	return session.restartLabyrinth(), nil
}

func (p *PortalService) ChoosePath(sessionID, action string) (adventure.Snapshot, error) {
	session, err := p.session(sessionID)
	if err != nil {
		return adventure.Snapshot{}, err
	}
	return session.choosePath(action)
}

func (p *PortalService) Attack(sessionID string) (adventure.Snapshot, error) {
	session, err := p.session(sessionID)
	if err != nil {
		return adventure.Snapshot{}, err
	}
	return session.attack()
}

func (p *PortalService) Flee(sessionID string) (adventure.Snapshot, error) {
	session, err := p.session(sessionID)
	if err != nil {
		return adventure.Snapshot{}, err
	}
	return session.flee()
}

func (p *PortalService) SolvePuzzle(sessionID, answer string) (snap adventure.Snapshot, correct bool, err error) {
	session, err := p.session(sessionID)
	if err != nil {
		return adventure.Snapshot{}, false, err
	}
	return session.solvePuzzle(answer)
}

func (p *PortalService) Labyrinth(sessionID string) (adventure.Snapshot, error) {
	session, err := p.session(sessionID)
	if err != nil {
		return adventure.Snapshot{}, err
	}
	return session.labyrinthSnapshot(), nil
}

// --- Arena trials ---

func (p *PortalService) DrawChallenge(sessionID string) (domain.Challenge, error) {
	session, err := p.session(sessionID)
	if err != nil {
		return domain.Challenge{}, err
	}
	return session.drawChallenge()
}

func (p *PortalService) AnswerChallenge(sessionID, option string) (arena.Outcome, error) {
	session, err := p.session(sessionID)
	if err != nil {
		return arena.Outcome{}, err
	}
	return session.answerChallenge(option)
}

// --- Quest board ---

// Quests loads the session's quest board.
func (p *PortalService) Quests(ctx context.Context, sessionID string) ([]domain.Quest, error) {
	if _, err := p.session(sessionID); err != nil {
		return nil, err
	}
	return p.quests.Load(ctx, sessionID)
}

// AddQuest appends a quest and persists the board. Blank text is ignored.
func (p *PortalService) AddQuest(ctx context.Context, sessionID, text string) ([]domain.Quest, error) {
	if _, err := p.session(sessionID); err != nil {
		return nil, err
	}
	quests, err := p.quests.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return quests, nil
	}

	quests = append(quests, domain.Quest{Text: text})
	if err := p.quests.Save(ctx, sessionID, quests); err != nil {
		return nil, err
	}
	return quests, nil
}

// ToggleQuest flips a quest's completed flag and persists the board.
func (p *PortalService) ToggleQuest(ctx context.Context, sessionID string, index int) ([]domain.Quest, error) {
	if _, err := p.session(sessionID); err != nil {
		return nil, err
	}
	quests, err := p.quests.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(quests) {
		return nil, domain.ErrInvalidIndex
	}

	quests[index].Completed = !quests[index].Completed
	if err := p.quests.Save(ctx, sessionID, quests); err != nil {
		return nil, err
	}
	return quests, nil
}

// DeleteQuest removes a quest and persists the board.
func (p *PortalService) DeleteQuest(ctx context.Context, sessionID string, index int) ([]domain.Quest, error) {
	if _, err := p.session(sessionID); err != nil {
		return nil, err
	}
	quests, err := p.quests.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(quests) {
		return nil, domain.ErrInvalidIndex
	}

	quests = append(quests[:index], quests[index+1:]...)
	if err := p.quests.Save(ctx, sessionID, quests); err != nil {
		return nil, err
	}
	return quests, nil
}

// --- Oracle ---

// AskOracle forwards a single-turn question to the Oracle. Any failure maps
// to one of the fixed fallback lines; errors never reach the caller.
func (p *PortalService) AskOracle(ctx context.Context, question string) string {
	if p.oracle == nil {
		return oracleFailureReply
	}

	answer, err := p.oracle.Ask(ctx, question)
	switch {
	case errors.Is(err, domain.ErrOracleSilent):
		return oracleSilentReply
	case err != nil:
		log.Printf("oracle call failed: %v", err)
		return oracleFailureReply
	}
	return answer
}

// --- Camp map ---

// MapReport computes the distance and bearing readout from the camper's
// position to the next class.
func (p *PortalService) MapReport(ctx context.Context, user domain.Coordinate) (geo.Report, error) {
	content, err := p.content.GetContent(ctx)
	if err != nil {
		return geo.Report{}, err
	}
	target, ok := content.Locations[nextClass]
	if !ok {
		return geo.Report{}, domain.ErrContentNotFound
	}
	return geo.BuildReport(user, target, nextClass), nil
}

// MapFailure maps a browser geolocation error code to its message.
func (p *PortalService) MapFailure(code int) string {
	return geo.ErrorMessage(code)
}
