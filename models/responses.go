package models

// TimeRecordResponse 计时记录响应结构体
type TimeRecordResponse struct {
	ID           string `json:"id"`
	Start        int64  `json:"start"`
	End          int64  `json:"end"`
	Duration     int64  `json:"duration"`
	DurationText string `json:"durationText"`
	HasRange     bool   `json:"hasRange"`
}

// DaySummaryResponse 单日汇总响应结构体
type DaySummaryResponse struct {
	Date         string               `json:"date"`
	TotalSeconds int64                `json:"totalSeconds"`
	TotalText    string               `json:"totalText"`
	Count        int                  `json:"count"`
	Records      []TimeRecordResponse `json:"records,omitempty"`
}

// SummaryResponse 汇总响应结构体，Today 始终单独返回
type SummaryResponse struct {
	Today DaySummaryResponse   `json:"today"`
	Days  []DaySummaryResponse `json:"days"`
}

// StopwatchResponse 秒表状态响应结构体
type StopwatchResponse struct {
	Running     bool   `json:"running"`
	Start       int64  `json:"start,omitempty"`
	Elapsed     int64  `json:"elapsed"`
	ElapsedText string `json:"elapsedText"`
}

// UserResponse 用户响应结构体
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Provider string `json:"provider"`
}
