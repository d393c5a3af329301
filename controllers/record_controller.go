package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hyangkk/timecounter/config"
	"github.com/hyangkk/timecounter/models"
	"github.com/hyangkk/timecounter/utils"
)

// RecordController 计时记录控制器
type RecordController struct {
	Loc *time.Location // 手动补录换算零点用的时区
}

func toRecordResponse(r models.TimeRecord) models.TimeRecordResponse {
	return models.TimeRecordResponse{
		ID:           r.ID,
		Start:        r.Start,
		End:          r.End,
		Duration:     r.Duration,
		DurationText: utils.FormatTime(r.Duration),
		HasRange:     r.HasRange(),
	}
}

// ListRecords 获取当前用户的全部记录，按开始时间倒序
func (rc *RecordController) ListRecords(c *gin.Context) {
	uid := c.GetString("uid")

	var records []models.TimeRecord
	if err := config.DB.Where("user_id = ?", uid).Order("start DESC").Find(&records).Error; err != nil {
		config.Logger.Errorw("获取记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取记录失败"})
		return
	}

	responses := make([]models.TimeRecordResponse, len(records))
	for i, r := range records {
		responses[i] = toRecordResponse(r)
	}

	c.JSON(http.StatusOK, gin.H{"records": responses})
}

// CreateManualRecord 手动补录。
// 记录落在所选日期当天零点，Start == End，时长只存在 Duration 里。
func (rc *RecordController) CreateManualRecord(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateManualRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求"})
		return
	}

	// 校验在任何持久化之前完成，不合法的输入不会产生半写入
	sec, ms, err := req.Validate(rc.Loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := models.TimeRecord{
		ID:       utils.GenerateID(),
		UserID:   uid,
		Start:    ms,
		End:      ms,
		Duration: sec,
	}

	if err := config.DB.Create(&record).Error; err != nil {
		config.Logger.Errorw("创建记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建记录失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": toRecordResponse(record)})
}

// UpdateDuration 修改一条记录的时长。
// 只改 Duration，Start/End 保持不变；按 uid 过滤，猜到别人的记录ID也改不动。
func (rc *RecordController) UpdateDuration(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var req models.UpdateDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求"})
		return
	}

	duration, err := req.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := config.DB.Model(&models.TimeRecord{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update("duration", duration)
	if result.Error != nil {
		config.Logger.Errorw("修改记录失败", "error", result.Error, "uid", uid, "recordID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "修改记录失败"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "记录不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "修改成功", "duration": duration})
}

// DeleteRecord 删除一条记录，按 uid 过滤
func (rc *RecordController) DeleteRecord(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	result := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.TimeRecord{})
	if result.Error != nil {
		config.Logger.Errorw("删除记录失败", "error", result.Error, "uid", uid, "recordID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除记录失败"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "记录不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
