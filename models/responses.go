package models

// TrackerResponse 追踪项响应结构体，带派生的完成百分比
type TrackerResponse struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit"`
	Percent int     `json:"percent"`
}

// NewTrackerResponse 由Tracker构造响应
func NewTrackerResponse(t Tracker) TrackerResponse {
	return TrackerResponse{
		Key:     t.Key,
		Label:   t.Label,
		Value:   t.Value,
		Target:  t.Target,
		Unit:    t.Unit,
		Percent: t.Percent(),
	}
}

// DeviceAuthResponse 设备注册响应结构体
type DeviceAuthResponse struct {
	DeviceID string `json:"deviceId"`
	Token    string `json:"token"`
}

// DayCompletedResponse 某日目标完成状态响应结构体
type DayCompletedResponse struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// MessageReplyResponse 消息追加响应结构体，Applied为false表示助手回复被丢弃
type MessageReplyResponse struct {
	Chat    *Chat `json:"chat"`
	Applied bool  `json:"applied"`
}
