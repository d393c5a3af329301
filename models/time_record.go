package models

import (
	"time"
)

// TimeRecord 一条计时记录。Start/End 为毫秒时间戳，Duration 为秒数。
// 手动补录的记录 Start == End（当天零点），时长只看 Duration 字段。
type TimeRecord struct {
	ID        string `gorm:"type:varchar(50);primary_key"`
	UserID    string `gorm:"type:varchar(50);index:idx_time_records_user_start"`
	Start     int64  `gorm:"index:idx_time_records_user_start"`
	End       int64
	Duration  int64
	CreatedAt time.Time
}

// 表名
func (TimeRecord) TableName() string {
	return "time_records"
}

// HasRange 起止时间是否构成真实区间（手动补录没有）
func (r *TimeRecord) HasRange() bool {
	return r.Start != r.End
}
