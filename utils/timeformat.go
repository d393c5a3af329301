package utils

import (
	"fmt"
)

// FormatTime 把秒数格式化为 HH:MM:SS。
// 小时不按24取模，累计超过一天时照常显示（如 25:00:00）。
func FormatTime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
