package models

// Symptom 症状记录
type Symptom struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Severity  int    `json:"severity"` // 1-10
	Notes     string `json:"notes"`
	Date      string `json:"date"`      // ISO日期
	CreatedAt string `json:"createdAt"` // ISO时间
}
