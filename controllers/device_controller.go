package controllers

import (
	"net/http"

	"MedzenGo/config"
	"MedzenGo/models"
	"MedzenGo/utils"

	"github.com/gin-gonic/gin"
)

type DeviceController struct{}

// Register 注册匿名设备并签发令牌，后续请求凭令牌访问本设备的状态
func (dc *DeviceController) Register(c *gin.Context) {
	deviceID := utils.GenerateID()
	token, err := utils.GenerateToken(deviceID)
	if err != nil {
		config.Logger.Errorw("签发设备令牌失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "签发设备令牌失败"})
		return
	}

	c.JSON(http.StatusOK, models.DeviceAuthResponse{
		DeviceID: deviceID,
		Token:    token,
	})
}
