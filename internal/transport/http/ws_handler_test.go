package http

import (
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWebSocketQuizFlow(t *testing.T) {
	server := newTestServer(t)
	session := registerSession(t, server)

	u := "ws" + server.URL[len("http"):] + "/ws?session=" + session
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	send(conn, t, "quiz/start", nil)
	msgType, payload := readNext(conn, t, "quiz/question")
	if payload["prompt"] == "" {
		t.Fatalf("expected question prompt, got %v (type %s)", payload, msgType)
	}

	// favor Athena throughout; the final quiz/next resolves the quiz
	picks := []int{0, 2, 2, 2, 2}
	for i, pick := range picks {
		send(conn, t, "quiz/answer", map[string]any{"question": i, "option": pick})
		_, answered := readNext(conn, t, "quiz/answered")
		hasNext, _ := answered["hasNext"].(bool)
		if hasNext != (i < len(picks)-1) {
			t.Fatalf("question %d: hasNext=%v", i, hasNext)
		}
		send(conn, t, "quiz/next", nil)
		if hasNext {
			readNext(conn, t, "quiz/question")
		} else {
			readNext(conn, t, "quiz/done")
		}
	}

	send(conn, t, "quiz/result", nil)
	_, result := readNext(conn, t, "quiz/result")
	if result["god"] != "Athena" {
		t.Fatalf("expected Athena, got %v", result)
	}
}

func TestWebSocketLabyrinthFlow(t *testing.T) {
	server := newTestServer(t)
	session := registerSession(t, server)

	u := "ws" + server.URL[len("http"):] + "/ws?session=" + session
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	send(conn, t, "labyrinth/restart", nil)
	_, state := readNext(conn, t, "labyrinth/state")
	if state["health"] != float64(100) {
		t.Fatalf("expected full health, got %v", state["health"])
	}

	// attacking outside battle is rejected without changing state
	send(conn, t, "labyrinth/attack", nil)
	readNext(conn, t, "error")

	send(conn, t, "labyrinth/choose", map[string]any{"action": "left"})
	_, state = readNext(conn, t, "labyrinth/state")
	if state["scene"] != float64(1) {
		t.Fatalf("expected scene 1, got %v", state["scene"])
	}
}

func TestWebSocketRejectsUnknownSession(t *testing.T) {
	server := newTestServer(t)

	u := "ws" + server.URL[len("http"):] + "/ws?session=unknown"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	send(conn, t, "quiz/start", nil)
	_, payload := readNext(conn, t, "error")
	if payload["message"] == "" {
		t.Fatalf("expected error message, got %v", payload)
	}
}

func send(conn *websocket.Conn, t *testing.T, msgType string, payload map[string]any) {
	t.Helper()
	msg := map[string]any{"type": msgType}
	if payload != nil {
		msg["payload"] = payload
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write %s: %v", msgType, err)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s (%v)", expect, msg.Type, msg.Payload)
	}
	return msg.Type, msg.Payload
}
