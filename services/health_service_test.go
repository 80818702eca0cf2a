package services_test

import (
	"strings"
	"testing"

	"MedzenGo/models"
	"MedzenGo/services"
)

func TestTrackerDefaultsCreatedOnFirstLoad(t *testing.T) {
	t.Parallel()
	svc := services.NewHealthService(newTestStore(t), fixedClock("2024-01-02"))

	trackers := svc.Trackers()
	if len(trackers) != 4 {
		t.Fatalf("expected 4 preset trackers, got %d", len(trackers))
	}
	for _, tr := range trackers {
		if tr.Value != 0 {
			t.Fatalf("expected preset %q to start at 0, got %v", tr.Key, tr.Value)
		}
		if tr.Target <= 0 {
			t.Fatalf("expected preset %q to have positive target, got %v", tr.Key, tr.Target)
		}
	}
}

func TestSetTrackerValuePercent(t *testing.T) {
	t.Parallel()
	svc := services.NewHealthService(newTestStore(t), fixedClock("2024-01-02"))

	tracker := svc.SetTrackerValue("steps", 5000)
	if tracker == nil {
		t.Fatal("expected steps tracker")
	}
	if got := tracker.Percent(); got != 50 {
		t.Fatalf("expected 50%%, got %d%%", got)
	}

	// 超出目标时百分比封顶100，值本身不触发截断（12000 < 2×10000）
	tracker = svc.SetTrackerValue("steps", 12000)
	if tracker.Value != 12000 {
		t.Fatalf("expected value 12000, got %v", tracker.Value)
	}
	if got := tracker.Percent(); got != 100 {
		t.Fatalf("expected capped 100%%, got %d%%", got)
	}
}

func TestSetTrackerValueClamped(t *testing.T) {
	t.Parallel()
	svc := services.NewHealthService(newTestStore(t), fixedClock("2024-01-02"))

	tracker := svc.SetTrackerValue("steps", 25000)
	if tracker.Value != 20000 {
		t.Fatalf("expected clamp to 2×target (20000), got %v", tracker.Value)
	}

	tracker = svc.SetTrackerValue("steps", -100)
	if tracker.Value != 0 {
		t.Fatalf("expected clamp to 0, got %v", tracker.Value)
	}

	if svc.SetTrackerValue("unknown", 10) != nil {
		t.Fatal("expected nil for unknown tracker key")
	}
}

func TestSetTrackerTarget(t *testing.T) {
	t.Parallel()
	svc := services.NewHealthService(newTestStore(t), fixedClock("2024-01-02"))

	if _, err := svc.SetTrackerTarget("water", 0); err == nil {
		t.Fatal("expected validation error for target below 1")
	}

	tracker, err := svc.SetTrackerTarget("water", 10)
	if err != nil {
		t.Fatalf("set target: %v", err)
	}
	if tracker.Target != 10 {
		t.Fatalf("expected target 10, got %v", tracker.Target)
	}

	tracker, err = svc.SetTrackerTarget("unknown", 5)
	if err != nil || tracker != nil {
		t.Fatalf("expected nil, nil for unknown key, got %v, %v", tracker, err)
	}
}

func TestAddGoalValidation(t *testing.T) {
	t.Parallel()
	svc := services.NewHealthService(newTestStore(t), fixedClock("2024-01-02"))

	if _, err := svc.AddGoal(models.GoalRequest{Title: ""}); err == nil {
		t.Fatal("expected error for empty title")
	}
	if _, err := svc.AddGoal(models.GoalRequest{Title: "Run"}); err == nil {
		t.Fatal("expected error for missing date range")
	}
	if _, err := svc.AddGoal(models.GoalRequest{
		Title: "Run", StartDate: "2024-01-05", EndDate: "2024-01-01",
	}); err == nil {
		t.Fatal("expected error for inverted date range")
	}

	// everyDay 目标不需要日期区间
	goal, err := svc.AddGoal(models.GoalRequest{Title: "Stretch", EveryDay: true})
	if err != nil {
		t.Fatalf("add everyday goal: %v", err)
	}
	if goal.ID == "" {
		t.Fatal("expected generated goal id")
	}
}

func TestGoalProgressFromCalories(t *testing.T) {
	t.Parallel()
	svc := services.NewHealthService(newTestStore(t), fixedClock("2024-01-02"))

	goal, err := svc.AddGoal(models.GoalRequest{
		Title:               "Burn",
		EveryDay:            true,
		CaloriesBurnTarget:  500,
		CaloriesBurnedToday: 250,
	})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if goal.Progress != 50 {
		t.Fatalf("expected progress 50, got %d", goal.Progress)
	}
	if goal.CompletedToday {
		t.Fatal("expected not completed at 50%")
	}

	updated, err := svc.UpdateGoal(goal.ID, models.GoalRequest{
		Title:               "Burn",
		EveryDay:            true,
		CaloriesBurnTarget:  500,
		CaloriesBurnedToday: 600,
	})
	if err != nil {
		t.Fatalf("update goal: %v", err)
	}
	if updated.Progress != 100 {
		t.Fatalf("expected capped progress 100, got %d", updated.Progress)
	}
	if !updated.CompletedToday {
		t.Fatal("expected completed at 100% with everyDay")
	}
}

func TestGoalCompletedTodayRequiresDateWindow(t *testing.T) {
	t.Parallel()
	// 当前日期在目标区间之外
	svc := services.NewHealthService(newTestStore(t), fixedClock("2024-01-02"))

	goal, err := svc.AddGoal(models.GoalRequest{
		Title:     "Run",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-01",
		Progress:  100,
	})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if goal.CompletedToday {
		t.Fatal("expected not completedToday outside date window")
	}

	today := svc.TodayGoals()
	if len(today) != 0 {
		t.Fatalf("expected expired goal excluded from today goals, got %d", len(today))
	}
}

func TestUpdateGoalMissingReturnsNil(t *testing.T) {
	t.Parallel()
	svc := services.NewHealthService(newTestStore(t), fixedClock("2024-01-02"))

	goal, err := svc.UpdateGoal("no-such-id", models.GoalRequest{Title: "X", EveryDay: true})
	if err != nil || goal != nil {
		t.Fatalf("expected nil, nil for missing goal, got %v, %v", goal, err)
	}
}

func TestDeleteGoal(t *testing.T) {
	t.Parallel()
	svc := services.NewHealthService(newTestStore(t), fixedClock("2024-01-02"))

	goal, err := svc.AddGoal(models.GoalRequest{Title: "Run", EveryDay: true})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if !svc.DeleteGoal(goal.ID) {
		t.Fatal("expected delete to report removal")
	}
	if svc.DeleteGoal(goal.ID) {
		t.Fatal("expected second delete to report false")
	}
	if len(svc.Goals()) != 0 {
		t.Fatal("expected no goals left")
	}
}

func TestCustomGoalOverwriteByLabel(t *testing.T) {
	t.Parallel()
	svc := services.NewHealthService(newTestStore(t), fixedClock("2024-01-02"))

	if _, err := svc.SaveCustomGoal(models.CustomGoalRequest{Label: ""}); err == nil {
		t.Fatal("expected error for empty label")
	}

	if _, err := svc.SaveCustomGoal(models.CustomGoalRequest{Label: "Walk", Value: "2", Unit: "km"}); err != nil {
		t.Fatalf("save custom goal: %v", err)
	}
	if _, err := svc.SaveCustomGoal(models.CustomGoalRequest{Label: "Walk", Value: "5", Unit: "km"}); err != nil {
		t.Fatalf("overwrite custom goal: %v", err)
	}

	goals := svc.CustomGoals()
	if len(goals) != 1 {
		t.Fatalf("expected overwrite in place, got %d entries", len(goals))
	}
	if goals[0].Value != "5" {
		t.Fatalf("expected overwritten value 5, got %q", goals[0].Value)
	}

	if !svc.DeleteCustomGoal("Walk") {
		t.Fatal("expected delete to report removal")
	}
	if svc.DeleteCustomGoal("Walk") {
		t.Fatal("expected second delete to report false")
	}
}

func TestIsDayCompleted(t *testing.T) {
	t.Parallel()
	svc := services.NewHealthService(newTestStore(t), fixedClock("2024-01-02"))

	// 没有任何计划值大于0的目标时视为未完成，即使没有数据
	if svc.IsDayCompleted("2024-01-02") {
		t.Fatal("expected day with no qualifying goals to be incomplete")
	}

	if _, err := svc.SaveCustomGoal(models.CustomGoalRequest{Label: "Walk", Value: "2", Unit: "km"}); err != nil {
		t.Fatalf("save custom goal: %v", err)
	}
	if _, err := svc.SaveCustomGoal(models.CustomGoalRequest{Label: "Water", Value: "3", Unit: "cups"}); err != nil {
		t.Fatalf("save custom goal: %v", err)
	}

	svc.LogDailyProgress("Walk", "2", "")
	if svc.IsDayCompleted("2024-01-02") {
		t.Fatal("expected incomplete day while Water has no log")
	}

	svc.LogDailyProgress("Water", "1", "")
	if svc.IsDayCompleted("2024-01-02") {
		t.Fatal("expected incomplete day while Water is below planned")
	}

	svc.LogDailyProgress("Water", "4", "")
	if !svc.IsDayCompleted("2024-01-02") {
		t.Fatal("expected completed day once all planned goals are met")
	}

	// 其他日期仍未完成
	if svc.IsDayCompleted("2024-01-03") {
		t.Fatal("expected other days to stay incomplete")
	}
}

func TestLogDailyProgressAcceptsAnyDate(t *testing.T) {
	t.Parallel()
	svc := services.NewHealthService(newTestStore(t), fixedClock("2024-01-02"))

	progressLog := svc.LogDailyProgress("Walk", "2", "2023-12-31")
	if progressLog["2023-12-31"]["Walk"] != "2" {
		t.Fatalf("expected backdated entry, got %v", progressLog)
	}
}

func TestCorruptStorageFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	if err := store.Write("medzen-trackers", []byte("{not json")); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}
	if err := store.Write("medzen-goals", []byte("][")); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	svc := services.NewHealthService(store, fixedClock("2024-01-02"))
	trackers := svc.Trackers()
	if len(trackers) != 4 {
		t.Fatalf("expected defaults after corruption, got %d trackers", len(trackers))
	}
	if keys := trackers[0].Key; !strings.Contains("steps water calories protein", keys) {
		t.Fatalf("unexpected tracker key %q", keys)
	}
	if goals := svc.Goals(); len(goals) != 0 {
		t.Fatalf("expected empty goals after corruption, got %d", len(goals))
	}
}
