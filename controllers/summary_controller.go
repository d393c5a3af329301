package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hyangkk/timecounter/config"
	"github.com/hyangkk/timecounter/models"
	"github.com/hyangkk/timecounter/services"
	"github.com/hyangkk/timecounter/utils"
)

// SummaryController 按天汇总控制器
type SummaryController struct {
	Loc *time.Location
}

// GetSummary 获取今天的累计和按日期倒序的历史汇总
func (sc *SummaryController) GetSummary(c *gin.Context) {
	uid := c.GetString("uid")

	var records []models.TimeRecord
	if err := config.DB.Where("user_id = ?", uid).Find(&records).Error; err != nil {
		config.Logger.Errorw("获取记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取记录失败"})
		return
	}

	c.JSON(http.StatusOK, services.BuildSummary(records, time.Now(), sc.Loc))
}

// GetDaySummary 获取某一天的明细，展开某天时调用
func (sc *SummaryController) GetDaySummary(c *gin.Context) {
	uid := c.GetString("uid")

	day, err := time.ParseInLocation("2006-01-02", c.Param("date"), sc.Loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的日期格式"})
		return
	}

	// 按当天零点到次日零点的毫秒区间查询，归属只看开始时间
	dayStart := day.UnixMilli()
	dayEnd := day.AddDate(0, 0, 1).UnixMilli()

	var records []models.TimeRecord
	if err := config.DB.Where("user_id = ? AND start >= ? AND start < ?", uid, dayStart, dayEnd).
		Order("start DESC").Find(&records).Error; err != nil {
		config.Logger.Errorw("获取记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取记录失败"})
		return
	}

	responses := make([]models.TimeRecordResponse, len(records))
	for i, r := range records {
		responses[i] = toRecordResponse(r)
	}
	total := services.DayTotal(records)

	c.JSON(http.StatusOK, models.DaySummaryResponse{
		Date:         day.Format("2006-01-02"),
		TotalSeconds: total,
		TotalText:    utils.FormatTime(total),
		Count:        len(records),
		Records:      responses,
	})
}
