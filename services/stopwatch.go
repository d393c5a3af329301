package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hyangkk/timecounter/models"
	"github.com/hyangkk/timecounter/utils"
)

// StopwatchStore 保存每个用户的计时起点（毫秒时间戳）。
// Clear 返回本次调用是否真正删掉了状态，并发停止时只有一个调用者拿到 true。
type StopwatchStore interface {
	Get(ctx context.Context, userID string) (int64, bool, error)
	Set(ctx context.Context, userID string, startMs int64) error
	Clear(ctx context.Context, userID string) (bool, error)
}

type redisStopwatchStore struct {
	client *redis.Client
}

// NewRedisStopwatchStore 基于Redis的秒表状态存储
func NewRedisStopwatchStore(client *redis.Client) StopwatchStore {
	return &redisStopwatchStore{client: client}
}

func stopwatchKey(userID string) string {
	return "stopwatch:" + userID
}

func (s *redisStopwatchStore) Get(ctx context.Context, userID string) (int64, bool, error) {
	val, err := s.client.Get(ctx, stopwatchKey(userID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	startMs, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("秒表状态损坏: %v", err)
	}
	return startMs, true, nil
}

func (s *redisStopwatchStore) Set(ctx context.Context, userID string, startMs int64) error {
	return s.client.Set(ctx, stopwatchKey(userID), strconv.FormatInt(startMs, 10), 0).Err()
}

func (s *redisStopwatchStore) Clear(ctx context.Context, userID string) (bool, error) {
	// DEL 的返回值是实际删除的键数，借此判断状态是不是被本次调用清掉的
	n, err := s.client.Del(ctx, stopwatchKey(userID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// StopwatchService 秒表：空闲/计时两个状态，按用户隔离。
// 计时中只保存起点，经过时长每次用当前时间重算，不做逐秒累加，
// 这样轮询间隔抖动不会造成误差累积。
type StopwatchService struct {
	store StopwatchStore
	now   func() time.Time
}

func NewStopwatchService(store StopwatchStore, now func() time.Time) *StopwatchService {
	return &StopwatchService{store: store, now: now}
}

// Start 开始计时并返回起点。已在计时中时保持原起点不变。
func (s *StopwatchService) Start(ctx context.Context, userID string) (int64, bool, error) {
	startMs, running, err := s.store.Get(ctx, userID)
	if err != nil {
		return 0, false, err
	}
	if running {
		return startMs, true, nil
	}

	startMs = s.now().UnixMilli()
	if err := s.store.Set(ctx, userID, startMs); err != nil {
		return 0, false, err
	}
	return startMs, false, nil
}

// Status 返回当前秒表状态，计时中时附带实时经过秒数
func (s *StopwatchService) Status(ctx context.Context, userID string) (models.StopwatchResponse, error) {
	startMs, running, err := s.store.Get(ctx, userID)
	if err != nil {
		return models.StopwatchResponse{}, err
	}
	if !running {
		return models.StopwatchResponse{
			Running:     false,
			ElapsedText: utils.FormatTime(0),
		}, nil
	}

	elapsed := (s.now().UnixMilli() - startMs) / 1000
	if elapsed < 0 {
		elapsed = 0
	}
	return models.StopwatchResponse{
		Running:     true,
		Start:       startMs,
		Elapsed:     elapsed,
		ElapsedText: utils.FormatTime(elapsed),
	}, nil
}

// Stop 停止计时并生成一条待保存的记录。未在计时中时返回 nil（不视为错误）。
// 只有真正清掉状态的那次调用会生成记录，并发双击停止也只产生一条。
func (s *StopwatchService) Stop(ctx context.Context, userID string) (*models.TimeRecord, error) {
	startMs, running, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !running {
		return nil, nil
	}

	cleared, err := s.store.Clear(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !cleared {
		// 另一个并发的停止请求抢先清掉了状态
		return nil, nil
	}

	endMs := s.now().UnixMilli()
	duration := (endMs - startMs) / 1000
	if duration < 0 {
		duration = 0
	}

	return &models.TimeRecord{
		ID:       utils.GenerateID(),
		UserID:   userID,
		Start:    startMs,
		End:      endMs,
		Duration: duration,
	}, nil
}
