package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyangkk/timecounter/models"
)

func TestCreateManualRecordRequestValidate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	t.Run("合法输入", func(t *testing.T) {
		req := models.CreateManualRecordRequest{Seconds: "120", Date: "2026-03-01"}
		sec, ms, err := req.Validate(loc)
		require.NoError(t, err)
		assert.Equal(t, int64(120), sec)

		// 当天零点（所配时区）
		want := time.Date(2026, 3, 1, 0, 0, 0, 0, loc).UnixMilli()
		assert.Equal(t, want, ms)
	})

	t.Run("非法秒数", func(t *testing.T) {
		for _, s := range []string{"0", "-5", "abc", "", "1.5"} {
			req := models.CreateManualRecordRequest{Seconds: s, Date: "2026-03-01"}
			_, _, err := req.Validate(loc)
			assert.Error(t, err, "seconds=%q", s)
		}
	})

	t.Run("非法日期", func(t *testing.T) {
		req := models.CreateManualRecordRequest{Seconds: "60", Date: "03/01/2026"}
		_, _, err := req.Validate(loc)
		assert.Error(t, err)
	})
}

func TestUpdateDurationRequestValidate(t *testing.T) {
	newDur := func(v int64) *int64 { return &v }

	t.Run("非负整数合法", func(t *testing.T) {
		for _, v := range []int64{0, 1, 3600} {
			req := models.UpdateDurationRequest{Duration: newDur(v)}
			got, err := req.Validate()
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("负数拒绝", func(t *testing.T) {
		req := models.UpdateDurationRequest{Duration: newDur(-1)}
		_, err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("缺失拒绝", func(t *testing.T) {
		req := models.UpdateDurationRequest{}
		_, err := req.Validate()
		assert.Error(t, err)
	})
}

func TestTimeRecordHasRange(t *testing.T) {
	manual := models.TimeRecord{Start: 1000, End: 1000, Duration: 120}
	assert.False(t, manual.HasRange())

	timed := models.TimeRecord{Start: 1000, End: 91000, Duration: 90}
	assert.True(t, timed.HasRange())
}
