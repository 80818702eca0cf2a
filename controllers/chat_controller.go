package controllers

import (
	"fmt"
	"net/http"
	"time"

	"MedzenGo/config"
	"MedzenGo/models"
	"MedzenGo/services"
	"MedzenGo/storage"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	store     storage.Store
	assistant *services.Assistant
}

func NewChatController(store storage.Store, assistant *services.Assistant) *ChatController {
	return &ChatController{store: store, assistant: assistant}
}

func (cc *ChatController) service(c *gin.Context) (*services.ChatService, bool) {
	ds, ok := deviceStore(c, cc.store)
	if !ok {
		return nil, false
	}
	return services.NewChatService(ds, time.Now), true
}

// GetChats 返回全部会话
func (cc *ChatController) GetChats(c *gin.Context) {
	svc, ok := cc.service(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"chats": svc.Chats()})
}

// CreateChat 新建会话并设为当前会话
func (cc *ChatController) CreateChat(c *gin.Context) {
	svc, ok := cc.service(c)
	if !ok {
		return
	}

	var req models.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"chat": svc.CreateChat(req.Title)})
}

// GetActiveChat 返回当前会话，未选中时chat为null
func (cc *ChatController) GetActiveChat(c *gin.Context) {
	svc, ok := cc.service(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"chat": svc.ActiveChat()})
}

// SetActiveChat 切换当前会话，id不存在按未选中处理
func (cc *ChatController) SetActiveChat(c *gin.Context) {
	svc, ok := cc.service(c)
	if !ok {
		return
	}

	var req models.ActiveChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"chat": svc.SetActiveChat(req.ChatID)})
}

// SendMessage 追加用户消息并生成助手回复。回复以触发它的用户消息id
// 作为令牌，期间会话被删除或切走时回复被丢弃，applied返回false。
func (cc *ChatController) SendMessage(c *gin.Context) {
	svc, ok := cc.service(c)
	if !ok {
		return
	}

	var req models.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	chatID := c.Param("id")
	chat := svc.AddMessage(chatID, req.Content, models.RoleUser)
	if chat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "会话不存在"})
		return
	}
	userMessage := chat.Messages[len(chat.Messages)-1]

	reply, err := cc.assistant.Reply(c.Request.Context(), chat.Messages)
	if err != nil {
		config.Logger.Errorw("生成助手回复失败", "error", err, "chatID", chatID)
		c.JSON(http.StatusOK, models.MessageReplyResponse{Chat: chat, Applied: false})
		return
	}

	updated := svc.ApplyAssistantReply(chatID, userMessage.ID, reply)
	if updated == nil {
		config.Logger.Debugw("助手回复已过期，丢弃", "chatID", chatID, "token", userMessage.ID)
		c.JSON(http.StatusOK, models.MessageReplyResponse{Chat: chat, Applied: false})
		return
	}
	c.JSON(http.StatusOK, models.MessageReplyResponse{Chat: updated, Applied: true})
}

// DeleteChat 删除会话
func (cc *ChatController) DeleteChat(c *gin.Context) {
	svc, ok := cc.service(c)
	if !ok {
		return
	}
	if !svc.DeleteChat(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "会话不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "会话已删除"})
}

// ExportChat 导出会话为纯文本附件
func (cc *ChatController) ExportChat(c *gin.Context) {
	svc, ok := cc.service(c)
	if !ok {
		return
	}

	filename, body, found := svc.ExportChat(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "会话不存在"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
