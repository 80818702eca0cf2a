package controllers

import (
	"net/http"
	"time"

	"MedzenGo/config"
	"MedzenGo/models"
	"MedzenGo/services"
	"MedzenGo/storage"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	store storage.Store
}

func NewHealthController(store storage.Store) *HealthController {
	return &HealthController{store: store}
}

func (h *HealthController) service(c *gin.Context) (*services.HealthService, bool) {
	ds, ok := deviceStore(c, h.store)
	if !ok {
		return nil, false
	}
	return services.NewHealthService(ds, time.Now), true
}

// GetTrackers 返回全部追踪项及派生百分比
func (h *HealthController) GetTrackers(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	trackers := svc.Trackers()
	responses := make([]models.TrackerResponse, len(trackers))
	for i, t := range trackers {
		responses[i] = models.NewTrackerResponse(t)
	}
	c.JSON(http.StatusOK, gin.H{"trackers": responses})
}

// SetTrackerValue 更新追踪项当前值
func (h *HealthController) SetTrackerValue(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	var req models.TrackerValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	tracker := svc.SetTrackerValue(c.Param("key"), req.Value)
	if tracker == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "追踪项不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracker": models.NewTrackerResponse(*tracker)})
}

// SetTrackerTarget 更新追踪项目标值
func (h *HealthController) SetTrackerTarget(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	var req models.TrackerTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	tracker, err := svc.SetTrackerTarget(c.Param("key"), req.Target)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if tracker == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "追踪项不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracker": models.NewTrackerResponse(*tracker)})
}

// GetGoals 返回全部目标
func (h *HealthController) GetGoals(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": svc.Goals()})
}

// GetTodayGoals 返回今日生效的目标
func (h *HealthController) GetTodayGoals(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": svc.TodayGoals()})
}

// CreateGoal 新建目标
func (h *HealthController) CreateGoal(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	var req models.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	goal, err := svc.AddGoal(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// UpdateGoal 更新目标
func (h *HealthController) UpdateGoal(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	var req models.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	goal, err := svc.UpdateGoal(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if goal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "目标不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal 删除目标
func (h *HealthController) DeleteGoal(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	if !svc.DeleteGoal(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "目标不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "目标已删除"})
}

// GetCustomGoals 返回全部简化目标
func (h *HealthController) GetCustomGoals(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"customGoals": svc.CustomGoals()})
}

// SaveCustomGoal 保存简化目标，按label覆盖
func (h *HealthController) SaveCustomGoal(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	var req models.CustomGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	goal, err := svc.SaveCustomGoal(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customGoal": goal})
}

// DeleteCustomGoal 删除简化目标
func (h *HealthController) DeleteCustomGoal(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	if !svc.DeleteCustomGoal(c.Param("label")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "目标不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "目标已删除"})
}

// GetProgressLog 返回完整进度日志
func (h *HealthController) GetProgressLog(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"progressLog": svc.ProgressLog()})
}

// LogProgress 记录某日目标进度
func (h *HealthController) LogProgress(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	var req models.ProgressLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	progressLog := svc.LogDailyProgress(req.GoalKey, req.Value, req.Date)
	c.JSON(http.StatusOK, gin.H{"progressLog": progressLog})
}

// GetDayCompleted 查询某日目标完成状态
func (h *HealthController) GetDayCompleted(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		config.Logger.Debugw("无效的日期参数", "date", date)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的日期格式"})
		return
	}

	c.JSON(http.StatusOK, models.DayCompletedResponse{
		Date:      date,
		Completed: svc.IsDayCompleted(date),
	})
}
