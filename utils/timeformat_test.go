package utils_test

import (
	"testing"

	"github.com/hyangkk/timecounter/utils"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{1, "00:00:01"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{61, "00:01:01"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{86399, "23:59:59"},
		// 超过一天不回绕
		{90000, "25:00:00"},
		{360000, "100:00:00"},
	}
	for _, tt := range tests {
		got := utils.FormatTime(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatTimeNegative(t *testing.T) {
	// 负数按0处理，不输出负号
	if got := utils.FormatTime(-5); got != "00:00:00" {
		t.Errorf("FormatTime(-5) = %q, want %q", got, "00:00:00")
	}
}
