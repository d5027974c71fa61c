package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"StudyIQ/models"
	svc "StudyIQ/pkg/services"

	"github.com/gin-gonic/gin"
)

type stubChat struct {
	history    []models.Message
	historyErr error
	result     *svc.TurnResult
	submitErr  error
	lastReq    svc.TurnRequest
}

func (s *stubChat) History(mode string) ([]models.Message, error) {
	if !models.ValidMode(mode) {
		return nil, svc.ErrInvalidMode
	}
	return s.history, s.historyErr
}

func (s *stubChat) SubmitTurn(ctx context.Context, req svc.TurnRequest) (*svc.TurnResult, error) {
	s.lastReq = req
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return s.result, nil
}

func newChatRouter(chat ChatAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/chat/:mode", GetHistory(chat))
	r.POST("/api/chat", SendMessage(chat))
	return r
}

func TestGetHistoryInvalidMode(t *testing.T) {
	r := newChatRouter(&stubChat{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/fitness", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Invalid mode" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGetHistoryReturnsMessages(t *testing.T) {
	uid := uint(3)
	m1 := models.Message{Role: "user", Content: "hi", Mode: "homework", UserID: &uid}
	m1.ID = 1
	m2 := models.Message{Role: "assistant", Content: "hello", Mode: "homework"}
	m2.ID = 2
	r := newChatRouter(&stubChat{history: []models.Message{m1, m2}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/homework", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(body))
	}
	if body[0]["role"] != "user" || body[0]["content"] != "hi" || body[0]["mode"] != "homework" {
		t.Fatalf("unexpected first message: %v", body[0])
	}
	if body[0]["userId"] != float64(3) {
		t.Fatalf("expected userId 3, got %v", body[0]["userId"])
	}
	if _, ok := body[1]["userId"]; ok {
		t.Fatalf("anonymous message must omit userId")
	}
}

func TestGetHistoryEmptyModeStream(t *testing.T) {
	r := newChatRouter(&stubChat{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/money", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %q", w.Body.String())
	}
}

func TestSendMessageSuccess(t *testing.T) {
	stub := &stubChat{result: &svc.TurnResult{Content: "the answer", Role: "assistant"}}
	r := newChatRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"What is 2+2?","mode":"homework"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "the answer" || body["role"] != "assistant" {
		t.Fatalf("unexpected body: %v", body)
	}
	if stub.lastReq.Message != "What is 2+2?" || stub.lastReq.Mode != "homework" {
		t.Fatalf("unexpected request forwarded: %+v", stub.lastReq)
	}
}

func TestSendMessageMalformedJSON(t *testing.T) {
	r := newChatRouter(&stubChat{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSendMessageInvalidInput(t *testing.T) {
	r := newChatRouter(&stubChat{submitErr: svc.ErrInvalidInput})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hi","mode":"fitness"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["message"] != "Invalid input" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestSendMessageUpstreamFailure(t *testing.T) {
	r := newChatRouter(&stubChat{submitErr: svc.ErrUpstream})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hi","mode":"money"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["message"] != "Internal server error" {
		t.Fatalf("unexpected body: %v", body)
	}
}
