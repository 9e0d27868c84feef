package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"camp-portal/internal/app"
)

// WSHandler drives the quiz, labyrinth, and arena engines over a websocket.
// Unlike the REST surface, game interactions are chatty and stateful, so one
// connection maps to one portal session.
type WSHandler struct {
	service  *app.PortalService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.PortalService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type answerQuizPayload struct {
	Question int `json:"question"`
	Option   int `json:"option"`
}

type answerQuizResult struct {
	HasNext bool `json:"hasNext"`
}

type nextQuestionResult struct {
	Question any  `json:"question,omitempty"`
	Done     bool `json:"done"`
}

type actionPayload struct {
	Action string `json:"action"`
}

type puzzlePayload struct {
	Answer string `json:"answer"`
}

type puzzleResult struct {
	Correct  bool `json:"correct"`
	Snapshot any  `json:"snapshot"`
}

type challengeAnswerPayload struct {
	Option string `json:"option"`
}

// ServeWS upgrades the request and runs the session's game loop. Replies are
// strictly request-driven, so a single goroutine owns the connection.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "missing session", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}
		reply := h.dispatch(sessionID, inbound)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
}

func (h *WSHandler) dispatch(sessionID string, inbound inboundMessage) outboundMessage {
	switch inbound.Type {
	case "quiz/start":
		question, err := h.service.StartQuiz(sessionID)
		if err != nil {
			return wsError(err)
		}
		return outboundMessage{Type: "quiz/question", Payload: question}

	case "quiz/answer":
		var payload answerQuizPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return wsBadPayload()
		}
		hasNext, err := h.service.AnswerQuiz(sessionID, payload.Question, payload.Option)
		if err != nil {
			return wsError(err)
		}
		return outboundMessage{Type: "quiz/answered", Payload: answerQuizResult{HasNext: hasNext}}

	case "quiz/next":
		question, done, err := h.service.NextQuestion(sessionID)
		if err != nil {
			return wsError(err)
		}
		if done {
			return outboundMessage{Type: "quiz/done", Payload: nextQuestionResult{Done: true}}
		}
		return outboundMessage{Type: "quiz/question", Payload: question}

	case "quiz/result":
		result, err := h.service.QuizResult(sessionID)
		if err != nil {
			return wsError(err)
		}
		return outboundMessage{Type: "quiz/result", Payload: result}

	case "quiz/reset":
		if err := h.service.ResetQuiz(sessionID); err != nil {
			return wsError(err)
		}
		return outboundMessage{Type: "quiz/reset", Payload: struct{}{}}

	case "labyrinth/restart":
		snap, err := h.service.RestartLabyrinth(sessionID)
		if err != nil {
			return wsError(err)
		}
		return outboundMessage{Type: "labyrinth/state", Payload: snap}

	case "labyrinth/choose":
		var payload actionPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return wsBadPayload()
		}
		snap, err := h.service.ChoosePath(sessionID, payload.Action)
		if err != nil {
			return wsError(err)
		}
		return outboundMessage{Type: "labyrinth/state", Payload: snap}

	case "labyrinth/attack":
		snap, err := h.service.Attack(sessionID)
		if err != nil {
			return wsError(err)
		}
		return outboundMessage{Type: "labyrinth/state", Payload: snap}

	case "labyrinth/flee":
		snap, err := h.service.Flee(sessionID)
		if err != nil {
			return wsError(err)
		}
		return outboundMessage{Type: "labyrinth/state", Payload: snap}

	case "labyrinth/puzzle":
		var payload puzzlePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return wsBadPayload()
		}
		snap, correct, err := h.service.SolvePuzzle(sessionID, payload.Answer)
		if err != nil {
			return wsError(err)
		}
		return outboundMessage{Type: "labyrinth/puzzle", Payload: puzzleResult{Correct: correct, Snapshot: snap}}

	case "labyrinth/state":
		snap, err := h.service.Labyrinth(sessionID)
		if err != nil {
			return wsError(err)
		}
		return outboundMessage{Type: "labyrinth/state", Payload: snap}

	case "arena/draw":
		challenge, err := h.service.DrawChallenge(sessionID)
		if err != nil {
			return wsError(err)
		}
		return outboundMessage{Type: "arena/challenge", Payload: challenge}

	case "arena/answer":
		var payload challengeAnswerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return wsBadPayload()
		}
		outcome, err := h.service.AnswerChallenge(sessionID, payload.Option)
		if err != nil {
			return wsError(err)
		}
		return outboundMessage{Type: "arena/outcome", Payload: outcome}

	default:
		return outboundMessage{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
	}
}

func wsError(err error) outboundMessage {
	return outboundMessage{Type: "error", Payload: errorPayload{Message: err.Error()}}
}

func wsBadPayload() outboundMessage {
	return outboundMessage{Type: "error", Payload: errorPayload{Message: "invalid payload"}}
}
