package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"MedzenGo/config"
	"MedzenGo/models"
)

// Responder 根据会话消息生成助手回复
type Responder interface {
	Reply(ctx context.Context, messages []models.Message) (string, error)
}

// Assistant 在回复前模拟固定的网络延迟，ctx取消时放弃等待
type Assistant struct {
	responder Responder
	delay     time.Duration
	wg        sync.WaitGroup
}

func NewAssistant(responder Responder, delay time.Duration) *Assistant {
	return &Assistant{responder: responder, delay: delay}
}

// Reply 延迟后生成回复
func (a *Assistant) Reply(ctx context.Context, messages []models.Message) (string, error) {
	a.wg.Add(1)
	defer a.wg.Done()

	select {
	case <-time.After(a.delay):
	case <-ctx.Done():
		config.Logger.Debugw("助手回复已取消", "error", ctx.Err())
		return "", ctx.Err()
	}
	return a.responder.Reply(ctx, messages)
}

// 添加 Wait 方法用于优雅关闭
func (a *Assistant) Wait() {
	a.wg.Wait()
}

// CannedResponder 关键词匹配的固定回复表，纯函数、确定性，不做真实推理
type CannedResponder struct{}

func (CannedResponder) Reply(_ context.Context, messages []models.Message) (string, error) {
	var last string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleUser {
			last = strings.ToLower(messages[i].Content)
			break
		}
	}

	switch {
	case containsAny(last, "hello", "hi"):
		return "Hello! I'm your AI health assistant. How can I help you today?", nil
	case containsAny(last, "symptom", "pain"):
		return "I notice you're mentioning symptoms. Could you describe what you're experiencing in more detail? Remember, I can provide information but not medical diagnoses.", nil
	case containsAny(last, "medicine", "medication", "drug"):
		return "Medications are an important part of many treatment plans. Is there a specific medication you'd like to learn more about?", nil
	case containsAny(last, "diet", "food", "nutrition"):
		return "Nutrition plays a vital role in overall health. A balanced diet typically includes a variety of fruits, vegetables, whole grains, lean proteins, and healthy fats. Would you like specific information about nutrition for a particular health condition?", nil
	case containsAny(last, "exercise", "workout"):
		return "Regular physical activity is beneficial for both physical and mental health. The general recommendation is at least 150 minutes of moderate aerobic activity or 75 minutes of vigorous activity per week, along with muscle-strengthening exercises twice weekly. What type of exercise are you interested in?", nil
	case containsAny(last, "stress", "anxiety", "depression"):
		return "Mental health is just as important as physical health. Stress, anxiety, and depression can impact overall wellbeing. There are various strategies that can help, including mindfulness practices, regular exercise, adequate sleep, and professional support when needed. Would you like more information about mental health resources?", nil
	case containsAny(last, "sleep", "insomnia"):
		return "Quality sleep is essential for health. Adults typically need 7-9 hours of sleep per night. Good sleep hygiene includes maintaining a regular sleep schedule, creating a restful environment, limiting screen time before bed, and avoiding caffeine and large meals close to bedtime. Are you experiencing sleep difficulties?", nil
	case containsAny(last, "thank"):
		return "You're welcome! If you have any other health-related questions, feel free to ask. I'm here to help.", nil
	default:
		return "Thank you for your message. As an AI health assistant, I can provide general health information and resources. However, for personalized medical advice, diagnosis, or treatment, it's important to consult with a qualified healthcare professional. Is there something specific about your health that you'd like to discuss?", nil
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
