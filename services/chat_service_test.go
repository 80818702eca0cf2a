package services_test

import (
	"strings"
	"testing"

	"MedzenGo/models"
	"MedzenGo/services"
)

func TestCreateChatRoundTrip(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	created := svc.CreateChat("X")
	chats := svc.Chats()
	if len(chats) != 1 {
		t.Fatalf("expected exactly one chat, got %d", len(chats))
	}
	if chats[0].Title != "X" {
		t.Fatalf("expected title X, got %q", chats[0].Title)
	}
	if len(chats[0].Messages) != 0 {
		t.Fatalf("expected zero messages, got %d", len(chats[0].Messages))
	}

	active := svc.ActiveChat()
	if active == nil || active.ID != created.ID {
		t.Fatal("expected new chat to become active")
	}
}

func TestCreateChatDefaultTitle(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	chat := svc.CreateChat("")
	if chat.Title != "New Chat" {
		t.Fatalf("expected default title, got %q", chat.Title)
	}
}

func TestTitleDerivedFromFirstUserMessage(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	chat := svc.CreateChat("")
	updated := svc.AddMessage(chat.ID, "Hello", models.RoleUser)
	if updated.Title != "Hello" {
		t.Fatalf("expected title Hello, got %q", updated.Title)
	}

	// 第二条用户消息不再改标题
	updated = svc.AddMessage(chat.ID, "Something else entirely", models.RoleUser)
	if updated.Title != "Hello" {
		t.Fatalf("expected title to stay Hello, got %q", updated.Title)
	}
}

func TestTitleTruncatedAtThirtyChars(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	chat := svc.CreateChat("")
	long := strings.Repeat("a", 40)
	updated := svc.AddMessage(chat.ID, long, models.RoleUser)
	if want := strings.Repeat("a", 30) + "..."; updated.Title != want {
		t.Fatalf("expected truncated title %q, got %q", want, updated.Title)
	}
}

func TestAssistantMessageDoesNotDeriveTitle(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	chat := svc.CreateChat("")
	updated := svc.AddMessage(chat.ID, "Welcome!", models.RoleAssistant)
	if updated.Title != "New Chat" {
		t.Fatalf("expected assistant message to keep title, got %q", updated.Title)
	}
}

func TestAddMessageTwiceProducesDistinctMessages(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	chat := svc.CreateChat("")
	svc.AddMessage(chat.ID, "Hello", models.RoleUser)
	updated := svc.AddMessage(chat.ID, "Hello", models.RoleUser)

	if len(updated.Messages) != 2 {
		t.Fatalf("expected two messages, got %d", len(updated.Messages))
	}
	if updated.Messages[0].ID == updated.Messages[1].ID {
		t.Fatal("expected distinct message ids, got duplicates")
	}
}

func TestAddMessageMissingChat(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	if svc.AddMessage("no-such-chat", "Hello", models.RoleUser) != nil {
		t.Fatal("expected nil for missing chat id")
	}
}

func TestDeleteChatMissingLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	svc.CreateChat("keep")
	if svc.DeleteChat("no-such-chat") {
		t.Fatal("expected false for missing chat id")
	}
	if len(svc.Chats()) != 1 {
		t.Fatal("expected store unchanged after failed delete")
	}
}

func TestDeleteActiveChatReassignsPointer(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	first := svc.CreateChat("first")
	second := svc.CreateChat("second") // 现在是当前会话

	if !svc.DeleteChat(second.ID) {
		t.Fatal("expected delete to succeed")
	}
	active := svc.ActiveChat()
	if active == nil || active.ID != first.ID {
		t.Fatal("expected active pointer reassigned to remaining chat")
	}

	if !svc.DeleteChat(first.ID) {
		t.Fatal("expected delete to succeed")
	}
	if svc.ActiveChat() != nil {
		t.Fatal("expected active pointer cleared with no chats left")
	}
}

func TestSetActiveChatMissingReturnsNil(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	if svc.SetActiveChat("no-such-chat") != nil {
		t.Fatal("expected nil for missing chat id")
	}
}

func TestApplyAssistantReply(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	chat := svc.CreateChat("")
	updated := svc.AddMessage(chat.ID, "Hello", models.RoleUser)
	token := updated.Messages[0].ID

	applied := svc.ApplyAssistantReply(chat.ID, token, "Hi there")
	if applied == nil {
		t.Fatal("expected reply applied to active chat")
	}
	if last := applied.Messages[len(applied.Messages)-1]; last.Role != models.RoleAssistant || last.Content != "Hi there" {
		t.Fatalf("unexpected last message %+v", last)
	}
}

func TestApplyAssistantReplyDroppedWhenSuperseded(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	chat := svc.CreateChat("")
	first := svc.AddMessage(chat.ID, "Hello", models.RoleUser)
	token := first.Messages[0].ID

	// 更新的用户消息让旧令牌失效
	svc.AddMessage(chat.ID, "Actually, another question", models.RoleUser)
	if svc.ApplyAssistantReply(chat.ID, token, "stale") != nil {
		t.Fatal("expected stale reply to be dropped")
	}
}

func TestApplyAssistantReplyDroppedWhenChatNotActive(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	chat := svc.CreateChat("")
	updated := svc.AddMessage(chat.ID, "Hello", models.RoleUser)
	token := updated.Messages[0].ID

	svc.CreateChat("other") // 切换了当前会话
	if svc.ApplyAssistantReply(chat.ID, token, "stale") != nil {
		t.Fatal("expected reply to inactive chat to be dropped")
	}
}

func TestApplyAssistantReplyDroppedWhenChatDeleted(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	chat := svc.CreateChat("")
	updated := svc.AddMessage(chat.ID, "Hello", models.RoleUser)
	token := updated.Messages[0].ID

	svc.DeleteChat(chat.ID)
	if svc.ApplyAssistantReply(chat.ID, token, "stale") != nil {
		t.Fatal("expected reply to deleted chat to be dropped")
	}
}

func TestExportChat(t *testing.T) {
	t.Parallel()
	svc := services.NewChatService(newTestStore(t), fixedClock("2024-01-02"))

	chat := svc.CreateChat("")
	svc.AddMessage(chat.ID, "Hello", models.RoleUser)
	svc.AddMessage(chat.ID, "Hi! How can I help?", models.RoleAssistant)

	filename, body, ok := svc.ExportChat(chat.ID)
	if !ok {
		t.Fatal("expected export to succeed")
	}
	if want := "medzen-chat-" + chat.ID[:8] + ".txt"; filename != want {
		t.Fatalf("expected filename %q, got %q", want, filename)
	}
	if want := "You: Hello\n\nAI Assistant: Hi! How can I help?"; body != want {
		t.Fatalf("unexpected export body:\n%s", body)
	}

	if _, _, ok := svc.ExportChat("no-such-chat"); ok {
		t.Fatal("expected export of missing chat to fail")
	}
}

func TestChatsCorruptStorageDegradesToEmpty(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	if err := store.Write("medzen-chats", []byte("not json at all")); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	svc := services.NewChatService(store, fixedClock("2024-01-02"))
	if chats := svc.Chats(); len(chats) != 0 {
		t.Fatalf("expected empty chats after corruption, got %d", len(chats))
	}
}
