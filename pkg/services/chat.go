package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"StudyIQ/models"
	"StudyIQ/pkg/config"
)

var (
	ErrInvalidInput = errors.New("invalid chat input")
	ErrInvalidMode  = errors.New("invalid chat mode")
	ErrUpstream     = errors.New("model call failed")
)

// Text substituted for the user turn when only an image is sent.
const defaultImageInstruction = "Please solve this problem step by step."

// MessageStore is the slice of the persistence gateway the orchestrator
// needs. *storage.Store satisfies it; tests substitute fakes.
type MessageStore interface {
	CreateMessage(role, content, mode string, userID *uint) (*models.Message, error)
	ListMessages(mode string) ([]models.Message, error)
	ListMessagesByUser(userID uint, mode string) ([]models.Message, error)
	IncrementMessageCount(userID uint) error
}

// Completer is the model gateway: one synchronous completion attempt.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, turns []ChatMessage, maxTokens int) (string, error)
}

// Streamer is the optional streaming variant of the model gateway.
type Streamer interface {
	Stream(ctx context.Context, systemPrompt string, turns []ChatMessage, maxTokens int, onDelta func(string)) (string, error)
}

// TurnRequest is one incoming chat submission.
type TurnRequest struct {
	Message     string
	Mode        string
	UserID      *uint
	ImageBase64 string
}

// TurnResult is the assistant's reply to a submitted turn.
type TurnResult struct {
	Content string
	Role    string
}

// ChatService orchestrates one chat turn: persist the user message, window
// the history, call the model, persist the reply. It holds no per-request
// state and is safe for concurrent use.
type ChatService struct {
	store       MessageStore
	llm         Completer
	window      int
	maxTokens   int
	scopeByUser bool
	now         func() time.Time
}

func NewChatService(store MessageStore, llm Completer) *ChatService {
	return &ChatService{
		store:       store,
		llm:         llm,
		window:      config.HistoryWindow,
		maxTokens:   config.MaxCompletionTokens,
		scopeByUser: config.ScopeHistoryByUser,
		now:         time.Now,
	}
}

// History returns the full ordered message stream for a mode, oldest first.
func (s *ChatService) History(mode string) ([]models.Message, error) {
	if !models.ValidMode(mode) {
		return nil, ErrInvalidMode
	}
	return s.store.ListMessages(mode)
}

// SubmitTurn runs one chat exchange. The user turn is persisted before the
// model is called, so a failed model call still leaves exactly one new
// message behind; there is no compensating rollback.
func (s *ChatService) SubmitTurn(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	if !models.ValidMode(req.Mode) {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(req.Message) == "" && req.ImageBase64 == "" {
		return nil, ErrInvalidInput
	}

	userMsg, err := s.store.CreateMessage(models.RoleUser, req.Message, req.Mode, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("save user message: %w", err)
	}
	if req.UserID != nil {
		if err := s.store.IncrementMessageCount(*req.UserID); err != nil {
			log.Printf("[chat] increment message count for user %d: %v", *req.UserID, err)
		}
	}

	turns, err := s.buildTurns(req, userMsg.ID)
	if err != nil {
		return nil, err
	}

	reply, err := s.llm.Complete(ctx, SystemPrompt(req.Mode, s.now()), turns, s.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if strings.TrimSpace(reply) == "" {
		return nil, fmt.Errorf("%w: empty completion", ErrUpstream)
	}

	if _, err := s.store.CreateMessage(models.RoleAssistant, reply, req.Mode, nil); err != nil {
		return nil, fmt.Errorf("save assistant message: %w", err)
	}
	return &TurnResult{Content: reply, Role: models.RoleAssistant}, nil
}

// SubmitTurnStream is SubmitTurn with the reply streamed through onDelta.
// onUserSaved fires once the user turn has been persisted, before the model
// is called, so transports can acknowledge the write to the client. The
// assistant turn persisted at the end is the accumulated stream text.
func (s *ChatService) SubmitTurnStream(ctx context.Context, req TurnRequest, onUserSaved func(), onDelta func(string)) (*TurnResult, error) {
	if !models.ValidMode(req.Mode) {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(req.Message) == "" && req.ImageBase64 == "" {
		return nil, ErrInvalidInput
	}

	userMsg, err := s.store.CreateMessage(models.RoleUser, req.Message, req.Mode, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("save user message: %w", err)
	}
	if req.UserID != nil {
		if err := s.store.IncrementMessageCount(*req.UserID); err != nil {
			log.Printf("[chat] increment message count for user %d: %v", *req.UserID, err)
		}
	}
	if onUserSaved != nil {
		onUserSaved()
	}

	turns, err := s.buildTurns(req, userMsg.ID)
	if err != nil {
		return nil, err
	}

	var reply string
	if streamer, ok := s.llm.(Streamer); ok {
		reply, err = streamer.Stream(ctx, SystemPrompt(req.Mode, s.now()), turns, s.maxTokens, onDelta)
	} else {
		// non-streaming gateway: deliver the whole reply as one delta
		reply, err = s.llm.Complete(ctx, SystemPrompt(req.Mode, s.now()), turns, s.maxTokens)
		if err == nil && onDelta != nil && strings.TrimSpace(reply) != "" {
			onDelta(reply)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if strings.TrimSpace(reply) == "" {
		return nil, fmt.Errorf("%w: empty completion", ErrUpstream)
	}

	if _, err := s.store.CreateMessage(models.RoleAssistant, reply, req.Mode, nil); err != nil {
		return nil, fmt.Errorf("save assistant message: %w", err)
	}
	return &TurnResult{Content: reply, Role: models.RoleAssistant}, nil
}

// buildTurns assembles the model payload: the bounded window of prior turns
// in stored order, then the new user turn. currentID excludes the user
// message just written so the window holds prior turns only.
func (s *ChatService) buildTurns(req TurnRequest, currentID uint) ([]ChatMessage, error) {
	var history []models.Message
	var err error
	if s.scopeByUser && req.UserID != nil {
		history, err = s.store.ListMessagesByUser(*req.UserID, req.Mode)
	} else {
		history, err = s.store.ListMessages(req.Mode)
	}
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	prior := history[:0:0]
	for _, m := range history {
		if m.ID != currentID {
			prior = append(prior, m)
		}
	}
	if len(prior) > s.window {
		prior = prior[len(prior)-s.window:]
	}

	turns := make([]ChatMessage, 0, len(prior)+1)
	for _, m := range prior {
		turns = append(turns, ChatMessage{Role: m.Role, Text: m.Content})
	}

	text := req.Message
	if req.ImageBase64 != "" && strings.TrimSpace(text) == "" {
		text = defaultImageInstruction
	}
	turns = append(turns, ChatMessage{Role: models.RoleUser, Text: text, ImageBase64: req.ImageBase64})
	return turns, nil
}
