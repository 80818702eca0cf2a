package controllers

import (
	"net/http"

	"MedzenGo/config"
	"MedzenGo/storage"

	"github.com/gin-gonic/gin"
)

// deviceStore 取出认证中间件写入的设备ID，返回按设备隔离的存储。
// 每台设备的状态空间互不可见，对应浏览器端按浏览器隔离的localStorage。
func deviceStore(c *gin.Context, base storage.Store) (storage.Store, bool) {
	uid, exists := c.Get("uid")
	if !exists {
		config.Logger.Errorw("未获取到设备ID")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到设备ID"})
		return nil, false
	}
	return storage.Prefixed(base, uid.(string)+":"), true
}
