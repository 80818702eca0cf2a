package services

import (
	"fmt"
	"strings"
	"time"

	"MedzenGo/config"
	"MedzenGo/models"
	"MedzenGo/storage"
	"MedzenGo/utils"
)

// ChatService 维护会话列表和当前会话指针，消息只追加不修改
type ChatService struct {
	store storage.Store
	now   func() time.Time
}

func NewChatService(store storage.Store, now func() time.Time) *ChatService {
	if now == nil {
		now = time.Now
	}
	return &ChatService{store: store, now: now}
}

// Chats 返回全部会话，存储损坏时降级为空列表
func (s *ChatService) Chats() []models.Chat {
	var chats []models.Chat
	if !load(s.store, chatsKey, &chats) {
		return []models.Chat{}
	}
	return chats
}

// CreateChat 创建空会话并设为当前会话，标题默认"New Chat"
func (s *ChatService) CreateChat(title string) *models.Chat {
	if title == "" {
		title = "New Chat"
	}
	now := s.now()
	chat := models.Chat{
		ID:        utils.GenerateID(),
		Title:     title,
		Messages:  []models.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	chats := s.Chats()
	chats = append(chats, chat)
	save(s.store, chatsKey, chats)
	save(s.store, activeChatIDKey, chat.ID)
	return &chat
}

// ActiveChat 返回当前会话，无指针或指针悬空时返回nil
func (s *ChatService) ActiveChat() *models.Chat {
	var activeID string
	if !load(s.store, activeChatIDKey, &activeID) || activeID == "" {
		return nil
	}
	return s.findChat(activeID)
}

// SetActiveChat 更新当前会话指针，id不存在时返回nil（视为未选中，不报错）
func (s *ChatService) SetActiveChat(chatID string) *models.Chat {
	save(s.store, activeChatIDKey, chatID)
	return s.findChat(chatID)
}

// AddMessage 追加消息。第一条用户消息会派生会话标题（截断到30字符）。
// chatID不存在时返回nil，由调用方自行检查。
func (s *ChatService) AddMessage(chatID, content string, role models.MessageRole) *models.Chat {
	chats := s.Chats()
	for i := range chats {
		if chats[i].ID != chatID {
			continue
		}
		now := s.now()
		message := models.Message{
			ID:        utils.GenerateID(),
			Content:   content,
			Role:      role,
			CreatedAt: now,
		}
		chats[i].Messages = append(chats[i].Messages, message)
		chats[i].UpdatedAt = now

		// 第一条用户消息决定标题，除非之后显式改名
		if role == models.RoleUser && countUserMessages(&chats[i]) == 1 {
			chats[i].Title = deriveTitle(content)
		}

		save(s.store, chatsKey, chats)
		return &chats[i]
	}
	return nil
}

// DeleteChat 删除会话。若删除的是当前会话，指针改指第一个剩余会话，
// 没有剩余会话时清空指针。返回是否真的删除了会话。
func (s *ChatService) DeleteChat(chatID string) bool {
	chats := s.Chats()
	remaining := []models.Chat{}
	for _, c := range chats {
		if c.ID != chatID {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(chats) {
		return false
	}
	save(s.store, chatsKey, remaining)

	var activeID string
	if load(s.store, activeChatIDKey, &activeID) && activeID == chatID {
		if len(remaining) > 0 {
			save(s.store, activeChatIDKey, remaining[0].ID)
		} else if err := s.store.Delete(activeChatIDKey); err != nil {
			config.Logger.Errorw("清除当前会话指针失败", "error", err)
		}
	}
	return true
}

// ApplyAssistantReply 把助手回复写入会话。回复按触发它的用户消息id
// 作为令牌：会话已删除、已切走或又有了更新的用户消息时直接丢弃，
// 避免过期回复落到错误的会话里。
func (s *ChatService) ApplyAssistantReply(chatID, token, content string) *models.Chat {
	chat := s.findChat(chatID)
	if chat == nil {
		return nil
	}

	var activeID string
	if !load(s.store, activeChatIDKey, &activeID) || activeID != chatID {
		return nil
	}

	last := chat.LastUserMessage()
	if last == nil || last.ID != token {
		return nil
	}
	return s.AddMessage(chatID, content, models.RoleAssistant)
}

// ExportChat 把会话序列化为纯文本，消息之间空行分隔。
// 返回下载文件名和内容，id不存在时ok为false。
func (s *ChatService) ExportChat(chatID string) (filename, body string, ok bool) {
	chat := s.findChat(chatID)
	if chat == nil {
		return "", "", false
	}

	lines := make([]string, 0, len(chat.Messages))
	for _, msg := range chat.Messages {
		label := "AI Assistant"
		if msg.Role == models.RoleUser {
			label = "You"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, msg.Content))
	}

	shortID := chat.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	return fmt.Sprintf("medzen-chat-%s.txt", shortID), strings.Join(lines, "\n\n"), true
}

func (s *ChatService) findChat(chatID string) *models.Chat {
	chats := s.Chats()
	for i := range chats {
		if chats[i].ID == chatID {
			return &chats[i]
		}
	}
	return nil
}

func countUserMessages(chat *models.Chat) int {
	count := 0
	for _, m := range chat.Messages {
		if m.Role == models.RoleUser {
			count++
		}
	}
	return count
}

// deriveTitle 取前30个字符，超长时追加省略号
func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= 30 {
		return content
	}
	return string(runes[:30]) + "..."
}
