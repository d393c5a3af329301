package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyangkk/timecounter/config"
	"github.com/hyangkk/timecounter/models"
)

func TestStopwatchStartStopCreatesOneRecord(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)}
	r := setupRouter(t, clock)
	uid, token := newUserToken(t)

	w := doRequest(r, http.MethodPost, "/api/v1/stopwatch/start", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status models.StopwatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.Running)
	assert.Equal(t, clock.now.UnixMilli(), status.Start)

	clock.Advance(90 * time.Second)

	w = doRequest(r, http.MethodPost, "/api/v1/stopwatch/stop", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 恰好一条记录，时长90秒，Start < End
	var records []models.TimeRecord
	require.NoError(t, config.DB.Where("user_id = ?", uid).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, int64(90), records[0].Duration)
	assert.Less(t, records[0].Start, records[0].End)
	assert.True(t, records[0].HasRange())
}

func TestStopwatchStopWhileIdleIsNoop(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)}
	r := setupRouter(t, clock)
	uid, token := newUserToken(t)

	w := doRequest(r, http.MethodPost, "/api/v1/stopwatch/stop", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["running"])
	assert.NotContains(t, body, "record")

	var count int64
	require.NoError(t, config.DB.Model(&models.TimeRecord{}).Where("user_id = ?", uid).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestStopwatchDoubleStopCreatesOneRecord(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)}
	r := setupRouter(t, clock)
	uid, token := newUserToken(t)

	doRequest(r, http.MethodPost, "/api/v1/stopwatch/start", token, nil)
	clock.Advance(10 * time.Second)

	// 连点两次停止只产生一条记录
	w := doRequest(r, http.MethodPost, "/api/v1/stopwatch/stop", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(r, http.MethodPost, "/api/v1/stopwatch/stop", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, config.DB.Model(&models.TimeRecord{}).Where("user_id = ?", uid).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStopwatchStatusWhileRunning(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)}
	r := setupRouter(t, clock)
	_, token := newUserToken(t)

	doRequest(r, http.MethodPost, "/api/v1/stopwatch/start", token, nil)
	clock.Advance(3661 * time.Second)

	w := doRequest(r, http.MethodGet, "/api/v1/stopwatch", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status models.StopwatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.Running)
	assert.Equal(t, int64(3661), status.Elapsed)
	assert.Equal(t, "01:01:01", status.ElapsedText)
}

func TestStopwatchStartIsIdempotent(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)}
	r := setupRouter(t, clock)
	_, token := newUserToken(t)

	w := doRequest(r, http.MethodPost, "/api/v1/stopwatch/start", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var first models.StopwatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	clock.Advance(30 * time.Second)

	// 重复开始不覆盖原起点
	w = doRequest(r, http.MethodPost, "/api/v1/stopwatch/start", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var second models.StopwatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, first.Start, second.Start)
	assert.Equal(t, int64(30), second.Elapsed)
}
