package services

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"MedzenGo/models"
	"MedzenGo/storage"
	"MedzenGo/utils"
)

// HealthService 维护追踪项、目标、简化目标和进度日志的权威副本，
// 每次变更同步写回存储。时间通过注入的时钟获取，便于跨日期测试。
type HealthService struct {
	store storage.Store
	now   func() time.Time
}

func NewHealthService(store storage.Store, now func() time.Time) *HealthService {
	if now == nil {
		now = time.Now
	}
	return &HealthService{store: store, now: now}
}

func (s *HealthService) today() string {
	return s.now().Format("2006-01-02")
}

// Trackers 返回全部追踪项，首次访问时落盘预置项
func (s *HealthService) Trackers() []models.Tracker {
	var trackers []models.Tracker
	if !load(s.store, trackersKey, &trackers) || len(trackers) == 0 {
		trackers = models.DefaultTrackers()
		save(s.store, trackersKey, trackers)
	}
	return trackers
}

// SetTrackerValue 更新当前值，范围限制在[0, 2×target]，未知key返回nil
func (s *HealthService) SetTrackerValue(key string, value float64) *models.Tracker {
	trackers := s.Trackers()
	for i := range trackers {
		if trackers[i].Key != key {
			continue
		}
		ceiling := trackers[i].Target * 2
		trackers[i].Value = math.Max(0, math.Min(ceiling, value))
		save(s.store, trackersKey, trackers)
		return &trackers[i]
	}
	return nil
}

// SetTrackerTarget 更新目标值，目标至少为1，未知key返回nil
func (s *HealthService) SetTrackerTarget(key string, target float64) (*models.Tracker, error) {
	if target < 1 {
		return nil, fmt.Errorf("追踪目标必须不小于1")
	}
	trackers := s.Trackers()
	for i := range trackers {
		if trackers[i].Key != key {
			continue
		}
		trackers[i].Target = target
		save(s.store, trackersKey, trackers)
		return &trackers[i], nil
	}
	return nil, nil
}

// Goals 返回全部目标，派生字段按当前日期重算
func (s *HealthService) Goals() []models.Goal {
	var goals []models.Goal
	if !load(s.store, goalsKey, &goals) {
		return []models.Goal{}
	}
	for i := range goals {
		s.derive(&goals[i])
	}
	return goals
}

// TodayGoals 返回当前日期落在区间内的目标
func (s *HealthService) TodayGoals() []models.Goal {
	today := s.today()
	result := []models.Goal{}
	for _, g := range s.Goals() {
		if g.InDateRange(today) {
			result = append(result, g)
		}
	}
	return result
}

// AddGoal 校验后生成UUID并持久化，校验失败以错误返回
func (s *HealthService) AddGoal(req models.GoalRequest) (*models.Goal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	goal := models.Goal{
		ID:                  utils.GenerateID(),
		Title:               req.Title,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		EveryDay:            req.EveryDay,
		Exercise:            req.Exercise,
		CaloriesBurnTarget:  req.CaloriesBurnTarget,
		CaloriesBurnedToday: req.CaloriesBurnedToday,
		Progress:            req.Progress,
	}
	s.derive(&goal)

	goals := s.Goals()
	goals = append(goals, goal)
	save(s.store, goalsKey, goals)
	return &goal, nil
}

// UpdateGoal 按id合并字段，id不存在时返回nil且无错误
func (s *HealthService) UpdateGoal(id string, req models.GoalRequest) (*models.Goal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	goals := s.Goals()
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		goals[i].Title = req.Title
		goals[i].StartDate = req.StartDate
		goals[i].EndDate = req.EndDate
		goals[i].EveryDay = req.EveryDay
		goals[i].Exercise = req.Exercise
		goals[i].CaloriesBurnTarget = req.CaloriesBurnTarget
		goals[i].CaloriesBurnedToday = req.CaloriesBurnedToday
		goals[i].Progress = req.Progress
		s.derive(&goals[i])
		save(s.store, goalsKey, goals)
		return &goals[i], nil
	}
	return nil, nil
}

// DeleteGoal 按id删除，返回是否删除了记录
func (s *HealthService) DeleteGoal(id string) bool {
	goals := s.Goals()
	remaining := goals[:0]
	for _, g := range goals {
		if g.ID != id {
			remaining = append(remaining, g)
		}
	}
	if len(remaining) == len(goals) {
		return false
	}
	save(s.store, goalsKey, remaining)
	return true
}

// derive 重算派生字段。设置了卡路里目标时按燃烧比例计算进度，
// 否则直接使用百分比模式下写入的进度。
func (s *HealthService) derive(g *models.Goal) {
	if g.CaloriesBurnTarget > 0 {
		g.Progress = int(math.Round(math.Min(100, g.CaloriesBurnedToday/g.CaloriesBurnTarget*100)))
	}
	if g.Progress < 0 {
		g.Progress = 0
	}
	if g.Progress > 100 {
		g.Progress = 100
	}
	g.CompletedToday = g.Progress >= 100 && g.InDateRange(s.today())
}

// CustomGoals 返回全部简化目标
func (s *HealthService) CustomGoals() []models.CustomGoal {
	var goals []models.CustomGoal
	if !load(s.store, customGoalsKey, &goals) {
		return []models.CustomGoal{}
	}
	return goals
}

// SaveCustomGoal 按label覆盖已有项，不存在则追加
func (s *HealthService) SaveCustomGoal(req models.CustomGoalRequest) (*models.CustomGoal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	goal := models.CustomGoal{Label: req.Label, Value: req.Value, Unit: req.Unit}
	goals := s.CustomGoals()
	replaced := false
	for i := range goals {
		if goals[i].Label == goal.Label {
			goals[i] = goal
			replaced = true
			break
		}
	}
	if !replaced {
		goals = append(goals, goal)
	}
	save(s.store, customGoalsKey, goals)
	return &goal, nil
}

// DeleteCustomGoal 按label过滤删除，返回是否删除了记录
func (s *HealthService) DeleteCustomGoal(label string) bool {
	goals := s.CustomGoals()
	remaining := goals[:0]
	for _, g := range goals {
		if g.Label != label {
			remaining = append(remaining, g)
		}
	}
	if len(remaining) == len(goals) {
		return false
	}
	save(s.store, customGoalsKey, remaining)
	return true
}

// ProgressLog 返回完整进度日志
func (s *HealthService) ProgressLog() models.ProgressLog {
	log := models.ProgressLog{}
	load(s.store, progressLogKey, &log)
	return log
}

// LogDailyProgress 记录某日某目标的进度值，date为空时记当天。
// 界面约定只允许修改当天，存储层本身接受任意日期。
func (s *HealthService) LogDailyProgress(goalKey, value, date string) models.ProgressLog {
	if date == "" {
		date = s.today()
	}
	log := s.ProgressLog()
	if log[date] == nil {
		log[date] = map[string]string{}
	}
	log[date][goalKey] = value
	save(s.store, progressLogKey, log)
	return log
}

// IsDayCompleted 某日是否全部完成：每个计划值大于0的目标都记录了
// 不低于计划值的进度。没有任何符合条件的目标时视为未完成。
func (s *HealthService) IsDayCompleted(date string) bool {
	log := s.ProgressLog()
	logged := log[date]

	qualifying := 0
	for _, g := range s.CustomGoals() {
		planned, err := strconv.ParseFloat(g.Value, 64)
		if err != nil || planned <= 0 {
			continue
		}
		qualifying++
		done, err := strconv.ParseFloat(logged[g.Label], 64)
		if err != nil || done < planned {
			return false
		}
	}
	return qualifying > 0
}
