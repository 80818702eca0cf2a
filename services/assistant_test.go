package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"MedzenGo/models"
	"MedzenGo/services"
)

func userMessage(content string) []models.Message {
	return []models.Message{{ID: "m1", Content: content, Role: models.RoleUser}}
}

func TestCannedResponderKeywordSelection(t *testing.T) {
	t.Parallel()
	responder := services.CannedResponder{}

	cases := []struct {
		message string
		want    string
	}{
		{"Hello there", "AI health assistant"},
		{"I have chest PAIN", "mentioning symptoms"},
		{"what medication should I know about", "Medications are an important part"},
		{"tell me about nutrition", "Nutrition plays a vital role"},
		{"best workout?", "Regular physical activity"},
		{"I feel anxiety", "Mental health"},
		{"can't sleep", "Quality sleep is essential"},
		{"thanks!", "You're welcome"},
		{"asdfghjkl", "qualified healthcare professional"},
	}
	for _, tc := range cases {
		got, err := responder.Reply(context.Background(), userMessage(tc.message))
		if err != nil {
			t.Fatalf("reply for %q: %v", tc.message, err)
		}
		if !strings.Contains(got, tc.want) {
			t.Fatalf("message %q: expected reply containing %q, got %q", tc.message, tc.want, got)
		}
	}
}

func TestCannedResponderDeterministic(t *testing.T) {
	t.Parallel()
	responder := services.CannedResponder{}

	first, _ := responder.Reply(context.Background(), userMessage("hello"))
	second, _ := responder.Reply(context.Background(), userMessage("hello"))
	if first != second {
		t.Fatal("expected identical replies for identical input")
	}
}

func TestCannedResponderUsesLatestUserMessage(t *testing.T) {
	t.Parallel()
	responder := services.CannedResponder{}

	messages := []models.Message{
		{ID: "m1", Content: "hello", Role: models.RoleUser},
		{ID: "m2", Content: "Hello! ...", Role: models.RoleAssistant},
		{ID: "m3", Content: "now about my sleep", Role: models.RoleUser},
	}
	got, err := responder.Reply(context.Background(), messages)
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if !strings.Contains(got, "Quality sleep") {
		t.Fatalf("expected reply keyed off latest user message, got %q", got)
	}
}

func TestAssistantReplyAfterDelay(t *testing.T) {
	t.Parallel()
	assistant := services.NewAssistant(services.CannedResponder{}, 5*time.Millisecond)

	got, err := assistant.Reply(context.Background(), userMessage("hello"))
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if got == "" {
		t.Fatal("expected non-empty reply")
	}
	assistant.Wait()
}

func TestAssistantReplyCancelled(t *testing.T) {
	t.Parallel()
	assistant := services.NewAssistant(services.CannedResponder{}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := assistant.Reply(ctx, userMessage("hello")); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	assistant.Wait()
}
