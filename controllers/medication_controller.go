package controllers

import (
	"net/http"

	"MedzenGo/models"
	"MedzenGo/services"
	"MedzenGo/storage"

	"github.com/gin-gonic/gin"
)

type MedicationController struct {
	store storage.Store
}

func NewMedicationController(store storage.Store) *MedicationController {
	return &MedicationController{store: store}
}

func (mc *MedicationController) service(c *gin.Context) (*services.MedicationService, bool) {
	ds, ok := deviceStore(c, mc.store)
	if !ok {
		return nil, false
	}
	return services.NewMedicationService(ds), true
}

func (mc *MedicationController) GetMedications(c *gin.Context) {
	svc, ok := mc.service(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"medications": svc.Medications()})
}

func (mc *MedicationController) CreateMedication(c *gin.Context) {
	svc, ok := mc.service(c)
	if !ok {
		return
	}

	var req models.MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	medication, err := svc.AddMedication(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"medication": medication})
}

func (mc *MedicationController) UpdateMedication(c *gin.Context) {
	svc, ok := mc.service(c)
	if !ok {
		return
	}

	var req models.MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	medication, err := svc.UpdateMedication(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if medication == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "用药记录不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"medication": medication})
}

func (mc *MedicationController) DeleteMedication(c *gin.Context) {
	svc, ok := mc.service(c)
	if !ok {
		return
	}
	if !svc.DeleteMedication(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "用药记录不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "用药记录已删除"})
}
