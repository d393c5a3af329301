package models

import (
	"fmt"
	"strconv"
	"time"
)

// AnonymousLoginRequest 匿名登录请求结构体
// UserID 来自分享链接的 user 参数，带上表示接管该身份
type AnonymousLoginRequest struct {
	UserID string `json:"userId"`
}

// OIDCLoginRequest 第三方登录请求结构体
type OIDCLoginRequest struct {
	IdentityToken string `json:"identity_token" binding:"required"`
	Email         string `json:"email"` // 首次登录时由客户端带上
}

// CreateManualRecordRequest 手动补录请求结构体
// Seconds 按字符串接收，与前端输入框原值保持一致，由后端解析校验
type CreateManualRecordRequest struct {
	Seconds string `json:"seconds" binding:"required"`
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
}

// Validate 校验并解析手动补录参数，返回秒数和当天零点的毫秒时间戳
func (r *CreateManualRecordRequest) Validate(loc *time.Location) (int64, int64, error) {
	sec, err := strconv.ParseInt(r.Seconds, 10, 64)
	if err != nil || sec <= 0 {
		return 0, 0, fmt.Errorf("请输入正整数秒数")
	}

	day, err := time.ParseInLocation("2006-01-02", r.Date, loc)
	if err != nil {
		return 0, 0, fmt.Errorf("无效的日期格式")
	}

	return sec, day.UnixMilli(), nil
}

// UpdateDurationRequest 修改时长请求结构体
// 指针类型用于区分"未传"和"传0"，0 是合法的修改值
type UpdateDurationRequest struct {
	Duration *int64 `json:"duration" binding:"required"`
}

// Validate 校验修改后的时长
func (r *UpdateDurationRequest) Validate() (int64, error) {
	if r.Duration == nil || *r.Duration < 0 {
		return 0, fmt.Errorf("请输入不小于0的整数")
	}
	return *r.Duration, nil
}
