package controllers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	svc "StudyIQ/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type stubStreamChat struct {
	chunks []string
	err    error
}

func (s *stubStreamChat) SubmitTurnStream(ctx context.Context, req svc.TurnRequest, onUserSaved func(), onDelta func(string)) (*svc.TurnResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	if onUserSaved != nil {
		onUserSaved()
	}
	var full strings.Builder
	for _, ch := range s.chunks {
		full.WriteString(ch)
		if onDelta != nil {
			onDelta(ch)
		}
	}
	return &svc.TurnResult{Content: full.String(), Role: "assistant"}, nil
}

func dialChatWS(t *testing.T, chat ChatStreamAPI) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/chat", ChatWS(chat))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEventTypes(t *testing.T, conn *websocket.Conn) []string {
	t.Helper()
	var types []string
	for {
		var evt map[string]any
		if err := conn.ReadJSON(&evt); err != nil {
			t.Fatalf("read event: %v (got %v so far)", err, types)
		}
		typ, _ := evt["type"].(string)
		types = append(types, typ)
		if typ == "done" || typ == "error" {
			return types
		}
	}
}

func TestChatWSEventSequence(t *testing.T) {
	conn := dialChatWS(t, &stubStreamChat{chunks: []string{"Hel", "lo"}})

	if err := conn.WriteJSON(map[string]string{"type": "start", "message": "hi", "mode": "assistant"}); err != nil {
		t.Fatalf("write start: %v", err)
	}

	got := readEventTypes(t, conn)
	want := []string{"user_saved", "delta", "delta", "done"}
	if len(got) != len(want) {
		t.Fatalf("expected sequence %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected sequence %v, got %v", want, got)
		}
	}
}

func TestChatWSRejectsBadStart(t *testing.T) {
	conn := dialChatWS(t, &stubStreamChat{chunks: []string{"unused"}})

	if err := conn.WriteJSON(map[string]string{"type": "nonsense"}); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	got := readEventTypes(t, conn)
	if len(got) != 1 || got[0] != "error" {
		t.Fatalf("expected a single error event, got %v", got)
	}
}

func TestChatWSStreamFailure(t *testing.T) {
	conn := dialChatWS(t, &stubStreamChat{err: svc.ErrUpstream})

	if err := conn.WriteJSON(map[string]string{"type": "start", "message": "hi", "mode": "money"}); err != nil {
		t.Fatalf("write start: %v", err)
	}

	got := readEventTypes(t, conn)
	if got[len(got)-1] != "error" {
		t.Fatalf("expected error event on stream failure, got %v", got)
	}
}
