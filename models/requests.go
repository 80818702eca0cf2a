package models

import (
	"fmt"
	"time"
)

// TrackerValueRequest 更新追踪项当前值
type TrackerValueRequest struct {
	Value float64 `json:"value"`
}

// TrackerTargetRequest 更新追踪项目标值
type TrackerTargetRequest struct {
	Target float64 `json:"target" binding:"required"`
}

// GoalRequest 新建/更新目标请求
type GoalRequest struct {
	Title               string  `json:"title"`
	StartDate           string  `json:"startDate"`
	EndDate             string  `json:"endDate"`
	EveryDay            bool    `json:"everyDay"`
	Exercise            string  `json:"exercise"`
	CaloriesBurnTarget  float64 `json:"caloriesBurnTarget"`
	CaloriesBurnedToday float64 `json:"caloriesBurnedToday"`
	Progress            int     `json:"progress"`
}

// Validate 校验必填字段，校验失败以错误返回，由调用方转成用户可见提示
func (r *GoalRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("目标标题不能为空")
	}
	if !r.EveryDay {
		if r.StartDate == "" || r.EndDate == "" {
			return fmt.Errorf("非每日目标必须填写开始和结束日期")
		}
		if _, err := time.Parse("2006-01-02", r.StartDate); err != nil {
			return fmt.Errorf("无效的开始日期格式")
		}
		if _, err := time.Parse("2006-01-02", r.EndDate); err != nil {
			return fmt.Errorf("无效的结束日期格式")
		}
		if r.StartDate > r.EndDate {
			return fmt.Errorf("开始日期不能晚于结束日期")
		}
	}
	return nil
}

// CustomGoalRequest 保存简化目标，按label覆盖
type CustomGoalRequest struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

func (r *CustomGoalRequest) Validate() error {
	if r.Label == "" {
		return fmt.Errorf("目标名称不能为空")
	}
	return nil
}

// ProgressLogRequest 记录某日目标进度，date为空时记当天
type ProgressLogRequest struct {
	GoalKey string `json:"goalKey" binding:"required"`
	Value   string `json:"value" binding:"required"`
	Date    string `json:"date"`
}

func (r *ProgressLogRequest) Validate() error {
	if r.Date != "" {
		if _, err := time.Parse("2006-01-02", r.Date); err != nil {
			return fmt.Errorf("无效的日期格式")
		}
	}
	return nil
}

// CreateChatRequest 新建会话，标题可省略
type CreateChatRequest struct {
	Title string `json:"title"`
}

// ActiveChatRequest 切换当前会话
type ActiveChatRequest struct {
	ChatID string `json:"chatId" binding:"required"`
}

// MessageRequest 追加消息
type MessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// MedicationRequest 新建/更新用药
type MedicationRequest struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (r *MedicationRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("药品名称不能为空")
	}
	return nil
}

// SymptomRequest 新建/更新症状
type SymptomRequest struct {
	Name     string `json:"name"`
	Severity int    `json:"severity"`
	Notes    string `json:"notes"`
	Date     string `json:"date"`
}

func (r *SymptomRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("症状名称不能为空")
	}
	if r.Severity < 1 || r.Severity > 10 {
		return fmt.Errorf("症状强度必须在1到10之间")
	}
	return nil
}
