package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hyangkk/timecounter/config"
	"github.com/hyangkk/timecounter/models"
)

// UserController 用户控制器
type UserController struct {
	BaseURL string // 分享链接的前端地址
}

// GetUser 获取当前用户信息
func (uc *UserController) GetUser(c *gin.Context) {
	uid := c.GetString("uid")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("数据库查询失败", "error", err, "userID", uid)
		c.JSON(http.StatusNotFound, gin.H{"error": "用户未找到"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": models.UserResponse{
			ID:       user.ID,
			Username: user.GetDisplayName(),
			Email:    user.Email,
			Provider: user.Provider,
		},
	})
}

// GetShareLink 获取分享链接。
// 别人打开带 user 参数的链接后用该ID匿名登录，就能看到同一份记录。
func (uc *UserController) GetShareLink(c *gin.Context) {
	uid := c.GetString("uid")

	c.JSON(http.StatusOK, gin.H{
		"url": fmt.Sprintf("%s?user=%s", uc.BaseURL, uid),
	})
}

// CleanupAnonymousUsers 清理长期无记录的匿名用户（内部接口）
func (uc *UserController) CleanupAnonymousUsers(c *gin.Context) {
	days := 90
	if daysStr := c.Query("days"); daysStr != "" {
		var err error
		days, err = strconv.Atoi(daysStr)
		if err != nil || days <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的天数"})
			return
		}
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	subQuery := config.DB.Model(&models.TimeRecord{}).Select("user_id")

	result := config.DB.
		Where("provider = ? AND created_at < ? AND id NOT IN (?)", models.ProviderAnonymous, cutoff, subQuery).
		Delete(&models.User{})
	if result.Error != nil {
		config.Logger.Errorw("清理匿名用户失败", "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "清理失败"})
		return
	}

	config.Logger.Infow("清理匿名用户完成",
		"deleted", result.RowsAffected,
		"cutoff", cutoff,
	)

	c.JSON(http.StatusOK, gin.H{
		"deleted": result.RowsAffected,
		"cutoff":  cutoff,
	})
}
