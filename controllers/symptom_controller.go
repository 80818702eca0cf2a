package controllers

import (
	"net/http"
	"time"

	"MedzenGo/models"
	"MedzenGo/services"
	"MedzenGo/storage"

	"github.com/gin-gonic/gin"
)

type SymptomController struct {
	store storage.Store
}

func NewSymptomController(store storage.Store) *SymptomController {
	return &SymptomController{store: store}
}

func (sc *SymptomController) service(c *gin.Context) (*services.SymptomService, bool) {
	ds, ok := deviceStore(c, sc.store)
	if !ok {
		return nil, false
	}
	return services.NewSymptomService(ds, time.Now), true
}

func (sc *SymptomController) GetSymptoms(c *gin.Context) {
	svc, ok := sc.service(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"symptoms": svc.Symptoms()})
}

func (sc *SymptomController) CreateSymptom(c *gin.Context) {
	svc, ok := sc.service(c)
	if !ok {
		return
	}

	var req models.SymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	symptom, err := svc.AddSymptom(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"symptom": symptom})
}

func (sc *SymptomController) UpdateSymptom(c *gin.Context) {
	svc, ok := sc.service(c)
	if !ok {
		return
	}

	var req models.SymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	symptom, err := svc.UpdateSymptom(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if symptom == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "症状记录不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"symptom": symptom})
}

func (sc *SymptomController) DeleteSymptom(c *gin.Context) {
	svc, ok := sc.service(c)
	if !ok {
		return
	}
	if !svc.DeleteSymptom(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "症状记录不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "症状记录已删除"})
}
