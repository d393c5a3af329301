package services

import (
	"sort"
	"time"

	"github.com/hyangkk/timecounter/models"
	"github.com/hyangkk/timecounter/utils"
)

// DayKey 取开始时间在指定时区的日历日期（YYYY-MM-DD）。
// 必须用时区的墙上日期而不是UTC日期，否则零点附近的记录会归错天。
func DayKey(startMs int64, loc *time.Location) string {
	return time.UnixMilli(startMs).In(loc).Format("2006-01-02")
}

// GroupByDay 把记录按开始时间所在日历日分组。
// 分桶只看 Start 不看 End，一条记录只会落在一个桶里。
func GroupByDay(records []models.TimeRecord, loc *time.Location) map[string][]models.TimeRecord {
	byDay := make(map[string][]models.TimeRecord)
	for _, r := range records {
		key := DayKey(r.Start, loc)
		byDay[key] = append(byDay[key], r)
	}
	return byDay
}

// DayTotal 一天内 Duration 之和。时长只认 Duration 字段，不用 End-Start 推算。
func DayTotal(records []models.TimeRecord) int64 {
	var total int64
	for _, r := range records {
		total += r.Duration
	}
	return total
}

// SortedDays 返回倒序排列的日期键（最近的在前）
func SortedDays(byDay map[string][]models.TimeRecord) []string {
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days
}

// BuildSummary 生成汇总：今天的累计单独返回，历史按日期倒序。
// 今天没有记录时也返回零值的 Today，前端固定显示在最上面。
func BuildSummary(records []models.TimeRecord, now time.Time, loc *time.Location) models.SummaryResponse {
	byDay := GroupByDay(records, loc)

	todayKey := now.In(loc).Format("2006-01-02")
	today := models.DaySummaryResponse{
		Date: todayKey,
	}
	if list, ok := byDay[todayKey]; ok {
		today.TotalSeconds = DayTotal(list)
		today.Count = len(list)
	}
	today.TotalText = utils.FormatTime(today.TotalSeconds)

	days := make([]models.DaySummaryResponse, 0, len(byDay))
	for _, day := range SortedDays(byDay) {
		list := byDay[day]
		total := DayTotal(list)
		days = append(days, models.DaySummaryResponse{
			Date:         day,
			TotalSeconds: total,
			TotalText:    utils.FormatTime(total),
			Count:        len(list),
		})
	}

	return models.SummaryResponse{
		Today: today,
		Days:  days,
	}
}
