package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyangkk/timecounter/config"
	"github.com/hyangkk/timecounter/services"
)

// StopwatchController 秒表控制器
type StopwatchController struct {
	service *services.StopwatchService
}

func NewStopwatchController(service *services.StopwatchService) *StopwatchController {
	return &StopwatchController{service: service}
}

// Start 开始计时。已在计时中时返回现有状态，起点不会被覆盖。
func (sc *StopwatchController) Start(c *gin.Context) {
	uid := c.GetString("uid")

	if _, _, err := sc.service.Start(c.Request.Context(), uid); err != nil {
		config.Logger.Errorw("启动秒表失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "启动秒表失败"})
		return
	}

	status, err := sc.service.Status(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("获取秒表状态失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取秒表状态失败"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Status 获取秒表状态，计时中时带实时经过秒数，前端按秒轮询刷新显示
func (sc *StopwatchController) Status(c *gin.Context) {
	uid := c.GetString("uid")

	status, err := sc.service.Status(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("获取秒表状态失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取秒表状态失败"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Stop 停止计时并保存记录。
// 未在计时中时（包括重复点击停止）不产生记录，直接返回空闲状态。
func (sc *StopwatchController) Stop(c *gin.Context) {
	uid := c.GetString("uid")

	record, err := sc.service.Stop(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("停止秒表失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "停止秒表失败"})
		return
	}
	if record == nil {
		c.JSON(http.StatusOK, gin.H{"running": false})
		return
	}

	if err := config.DB.Create(record).Error; err != nil {
		config.Logger.Errorw("保存计时记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存计时记录失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"running": false,
		"record":  toRecordResponse(*record),
	})
}
