package models

// Goal 用户自定义的健康目标，progress/completedToday 为派生字段
type Goal struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	StartDate           string  `json:"startDate"` // ISO日期，如 2024-01-01
	EndDate             string  `json:"endDate"`
	EveryDay            bool    `json:"everyDay"`
	Exercise            string  `json:"exercise,omitempty"`
	CaloriesBurnTarget  float64 `json:"caloriesBurnTarget,omitempty"`
	CaloriesBurnedToday float64 `json:"caloriesBurnedToday,omitempty"`
	Progress            int     `json:"progress"` // 0-100
	CompletedToday      bool    `json:"completedToday"`
}

// InDateRange 当前日期是否落在目标区间内（everyDay 目标始终在区间内）
func (g *Goal) InDateRange(today string) bool {
	if g.EveryDay {
		return true
	}
	return g.StartDate != "" && g.EndDate != "" && g.StartDate <= today && today <= g.EndDate
}

// CustomGoal 简化目标，按label识别，无id
type CustomGoal struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// ProgressLog 日期 -> 目标key -> 记录值
type ProgressLog map[string]map[string]string
