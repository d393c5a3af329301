package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hyangkk/timecounter/config"
	"github.com/hyangkk/timecounter/models"
	"github.com/hyangkk/timecounter/routes"
	"github.com/hyangkk/timecounter/services"
	"github.com/hyangkk/timecounter/utils"
)

// h 请求体简写
type h = map[string]interface{}

// memStopwatchStore 测试用的内存秒表状态存储
type memStopwatchStore struct {
	m map[string]int64
}

func newMemStopwatchStore() *memStopwatchStore {
	return &memStopwatchStore{m: make(map[string]int64)}
}

func (s *memStopwatchStore) Get(_ context.Context, userID string) (int64, bool, error) {
	v, ok := s.m[userID]
	return v, ok, nil
}

func (s *memStopwatchStore) Set(_ context.Context, userID string, startMs int64) error {
	s.m[userID] = startMs
	return nil
}

func (s *memStopwatchStore) Clear(_ context.Context, userID string) (bool, error) {
	_, ok := s.m[userID]
	delete(s.m, userID)
	return ok, nil
}

// fakeClock 可推进的时钟
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

// setupRouter 用内存sqlite和内存秒表状态搭一个完整路由。
// clock 为 nil 时秒表使用真实时钟。
func setupRouter(t *testing.T, clock *fakeClock) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop().Sugar()

	db, err := gorm.Open(
		sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, config.MigrateDB(db))
	config.DB = db

	nowFn := time.Now
	if clock != nil {
		nowFn = clock.Now
	}
	stopwatchService := services.NewStopwatchService(newMemStopwatchStore(), nowFn)

	r := gin.New()
	routes.RegisterRoutes(r, config.Config{AppBaseURL: "http://localhost:5173"}, stopwatchService)
	return r
}

// newUserToken 建一个用户并签发令牌
func newUserToken(t *testing.T) (string, string) {
	t.Helper()

	uid := utils.GenerateID()
	user := models.User{ID: uid, Provider: models.ProviderAnonymous, CreatedAt: time.Now()}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := utils.GenerateToken(uid)
	require.NoError(t, err)
	return uid, token
}

func doRequest(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRequestWithHeader(r *gin.Engine, method, path, headerKey, headerVal string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(headerKey, headerVal)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
