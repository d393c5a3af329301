package models

import (
	"time"
)

// 登录方式
const (
	ProviderAnonymous = "anonymous"
	ProviderOIDC      = "oidc"
)

// User 用户模型
type User struct {
	ID         string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username   string     `gorm:"type:varchar(100)" json:"username"`
	Email      string     `gorm:"type:varchar(100)" json:"email"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	Provider   string     `gorm:"type:varchar(50)" json:"provider"`
	ProviderID string     `gorm:"type:varchar(100)" json:"providerId"`
	IsTestUser bool       `gorm:"default:false" json:"isTestUser"`
}

func (u *User) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}

// IsAnonymous 是否匿名用户
func (u *User) IsAnonymous() bool {
	return u.Provider == ProviderAnonymous
}
