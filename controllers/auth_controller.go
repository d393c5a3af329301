package controllers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hyangkk/timecounter/config"
	"github.com/hyangkk/timecounter/models"
	"github.com/hyangkk/timecounter/utils"
)

// AuthController 认证控制器
type AuthController struct{}

// AnonymousLogin 匿名登录。
// 请求带 userId（来自分享链接的 user 参数）时接管该身份，
// 数据库里没有这个用户就按这个ID新建，否则生成全新的随机身份。
// 分享机制有意不做权限校验，拿到链接就能看到对方的记录。
func (ac *AuthController) AnonymousLogin(c *gin.Context) {
	var req models.AnonymousLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := req.UserID
	if uid == "" {
		uid = utils.GenerateID()
	}

	// 查找或创建用户，只有确实查不到才新建，其他数据库错误直接返回
	var user models.User
	result := config.DB.Where("id = ?", uid).First(&user)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			config.Logger.Errorw("用户查询失败", "error", result.Error, "userID", uid)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "用户查询失败"})
			return
		}
		user = models.User{
			ID:        uid,
			Provider:  models.ProviderAnonymous,
			CreatedAt: time.Now(),
		}
		if err := config.DB.Create(&user).Error; err != nil {
			config.Logger.Errorw("用户创建失败",
				"error", err,
				"provider", models.ProviderAnonymous,
				"userID", uid,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "用户创建失败"})
			return
		}
		config.Logger.Infow("匿名用户创建成功", "userID", user.ID)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"provider": user.Provider,
		},
	})
}

// OIDCLogin 第三方登录
func (ac *AuthController) OIDCLogin(c *gin.Context) {
	var req models.OIDCLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 验证身份令牌
	sub, email, err := utils.VerifyIdentityToken(req.IdentityToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "身份验证失败"})
		return
	}
	if email == "" {
		email = req.Email // 有些提供方只在首次登录返回邮箱
	}

	// 查找或创建用户，只有确实查不到才新建，其他数据库错误直接返回
	var user models.User
	result := config.DB.Where("provider = ? AND provider_id = ?", models.ProviderOIDC, sub).First(&user)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			config.Logger.Errorw("用户查询失败", "error", result.Error, "sub", sub)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "用户查询失败"})
			return
		}
		user = models.User{
			ID:         utils.GenerateID(),
			Provider:   models.ProviderOIDC,
			ProviderID: sub,
			Email:      email,
			CreatedAt:  time.Now(),
		}
		if err := config.DB.Create(&user).Error; err != nil {
			config.Logger.Errorw("用户创建失败",
				"error", err,
				"provider", models.ProviderOIDC,
				"sub", sub,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "用户创建失败"})
			return
		}
		config.Logger.Infow("新用户创建成功",
			"userID", user.ID,
			"provider", models.ProviderOIDC,
		)
	}

	// 更新最后登录时间
	now := time.Now()
	if err := config.DB.Model(&user).Update("last_login", &now).Error; err != nil {
		config.Logger.Errorw("更新登录时间失败", "error", err, "userID", user.ID)
	}

	// 生成JWT
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.GetDisplayName(),
			"email":    user.Email,
			"provider": user.Provider,
		},
	})
}

// CreateTestUser 创建测试用户
func (ac *AuthController) CreateTestUser(c *gin.Context) {
	testUser := models.User{
		ID:         utils.GenerateID(),
		Username:   "test_user_1",
		Email:      "test_1@example.com",
		Provider:   models.ProviderAnonymous,
		CreatedAt:  time.Now(),
		IsTestUser: true,
	}

	if err := config.DB.Create(&testUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建测试用户失败"})
		return
	}

	token, err := utils.GenerateToken(testUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	config.Logger.Infow("创建测试用户",
		"userID", testUser.ID,
		"username", testUser.Username,
	)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       testUser.ID,
			"username": testUser.Username,
			"email":    testUser.Email,
		},
	})
}
