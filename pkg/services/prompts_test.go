package services

import (
	"strings"
	"testing"
	"time"

	"StudyIQ/models"
)

func TestSystemPromptPerMode(t *testing.T) {
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	assistant := SystemPrompt(models.ModeAssistant, now)
	homework := SystemPrompt(models.ModeHomework, now)
	money := SystemPrompt(models.ModeMoney, now)

	if !strings.Contains(assistant, "Life Coach") {
		t.Fatalf("assistant prompt missing persona: %q", assistant)
	}
	if !strings.Contains(homework, "Homework Helper") {
		t.Fatalf("homework prompt missing persona: %q", homework)
	}
	if !strings.Contains(money, "Money Coach") {
		t.Fatalf("money prompt missing persona: %q", money)
	}
	if assistant == homework || homework == money || assistant == money {
		t.Fatalf("expected distinct prompts per mode")
	}
}

func TestSystemPromptDateOnlyForAssistant(t *testing.T) {
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	if got := SystemPrompt(models.ModeAssistant, now); !strings.Contains(got, "Today is Monday, June 16, 2025.") {
		t.Fatalf("expected assistant prompt to carry today's date, got: %q", got)
	}
	for _, mode := range []string{models.ModeHomework, models.ModeMoney} {
		if got := SystemPrompt(mode, now); strings.Contains(got, "Today is") {
			t.Fatalf("mode %s must not carry the date suffix", mode)
		}
	}
}
