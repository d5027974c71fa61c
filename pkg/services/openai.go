package services

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"StudyIQ/pkg/config"
)

// OpenAIService talks to an OpenAI-compatible chat completions endpoint.
// One attempt per call: failures surface to the caller, there is no retry
// and no fallback model.
type OpenAIService struct {
	apiKey  string
	baseURL string
	model   string
	enabled bool
}

var ErrOpenAIDisabled = errors.New("openai is disabled via config")

func NewOpenAIService() *OpenAIService {
	return &OpenAIService{
		apiKey:  config.OpenAIAPIKey,
		baseURL: config.OpenAIBaseURL,
		model:   config.OpenAIModel,
		enabled: config.IsOpenAIEnabled,
	}
}

// ChatMessage is one turn sent to the model. ImageBase64, when set, turns
// the content into a two-part payload (image first, then text).
type ChatMessage struct {
	Role        string
	Text        string
	ImageBase64 string
}

func (s *OpenAIService) Complete(ctx context.Context, systemPrompt string, turns []ChatMessage, maxTokens int) (string, error) {
	if !s.enabled {
		log.Printf("[openai] disabled via config (IsOpenAIEnabled=false)")
		return "", ErrOpenAIDisabled
	}
	if strings.TrimSpace(s.apiKey) == "" {
		log.Printf("[openai] OPENAI_API_KEY is not set")
		return "", fmt.Errorf("OPENAI_API_KEY is not set")
	}

	body, _ := json.Marshal(buildCompletionPayload(s.model, systemPrompt, turns, maxTokens, false))

	url := s.baseURL + "/chat/completions"
	log.Printf("[openai] POST %s model=%s", url, s.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read error: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBytes)))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("decode error: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return parsed.Choices[0].Message.Content, nil
}

// Stream sends the same request with stream=true and forwards delta chunks
// to onDelta as they arrive. Returns the accumulated text.
func (s *OpenAIService) Stream(ctx context.Context, systemPrompt string, turns []ChatMessage, maxTokens int, onDelta func(string)) (string, error) {
	if !s.enabled {
		log.Printf("[openai] disabled via config (IsOpenAIEnabled=false)")
		return "", ErrOpenAIDisabled
	}
	if strings.TrimSpace(s.apiKey) == "" {
		log.Printf("[openai] OPENAI_API_KEY is not set")
		return "", fmt.Errorf("OPENAI_API_KEY is not set")
	}

	body, _ := json.Marshal(buildCompletionPayload(s.model, systemPrompt, turns, maxTokens, true))

	url := s.baseURL + "/chat/completions"
	log.Printf("[openai] POST %s model=%s (stream)", url, s.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	full := strings.Builder{}
	scanner := bufio.NewScanner(resp.Body)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "data:") {
			line = strings.TrimSpace(line[5:])
		}
		if line == "[DONE]" {
			break
		}
		var obj struct {
			Choices []struct {
				Delta struct {
					Content string `json:"content"`
				} `json:"delta"`
			} `json:"choices"`
		}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			continue
		}
		if len(obj.Choices) > 0 && obj.Choices[0].Delta.Content != "" {
			full.WriteString(obj.Choices[0].Delta.Content)
			if onDelta != nil {
				onDelta(obj.Choices[0].Delta.Content)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return full.String(), fmt.Errorf("stream read error: %w", err)
	}
	return full.String(), nil
}

func buildCompletionPayload(model, systemPrompt string, turns []ChatMessage, maxTokens int, stream bool) map[string]any {
	messages := make([]any, 0, len(turns)+1)
	messages = append(messages, map[string]any{"role": "system", "content": systemPrompt})
	for _, t := range turns {
		role := strings.ToLower(strings.TrimSpace(t.Role))
		if role != "user" && role != "assistant" {
			role = "user"
		}
		if t.ImageBase64 != "" {
			messages = append(messages, map[string]any{
				"role": role,
				"content": []any{
					map[string]any{
						"type":      "image_url",
						"image_url": map[string]any{"url": "data:image/jpeg;base64," + t.ImageBase64},
					},
					map[string]any{"type": "text", "text": t.Text},
				},
			})
			continue
		}
		messages = append(messages, map[string]any{"role": role, "content": t.Text})
	}
	payload := map[string]any{
		"model":                 model,
		"messages":              messages,
		"max_completion_tokens": maxTokens,
	}
	if stream {
		payload["stream"] = true
	}
	return payload
}
