package models

import "math"

// Tracker 单项每日指标（步数、饮水等），value/target 由用户修改
type Tracker struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Target float64 `json:"target"`
	Unit   string  `json:"unit"`
}

// Percent 完成百分比，封顶100
func (t *Tracker) Percent() int {
	if t.Target <= 0 {
		return 0
	}
	return int(math.Round(math.Min(100, t.Value/t.Target*100)))
}

// DefaultTrackers 预置追踪项，首次加载时创建，永不删除
func DefaultTrackers() []Tracker {
	return []Tracker{
		{Key: "steps", Label: "Step Tracker", Value: 0, Target: 10000, Unit: "steps"},
		{Key: "water", Label: "Water Tracker", Value: 0, Target: 8, Unit: "cups"},
		{Key: "calories", Label: "Calorie Tracker", Value: 0, Target: 2000, Unit: "kcal"},
		{Key: "protein", Label: "Protein Tracker", Value: 0, Target: 150, Unit: "g"},
	}
}
