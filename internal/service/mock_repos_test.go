package service

import (
	"context"
	"errors"
	"time"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/repository"
)

// ── 测试辅助 ──

var errStoreDown = errors.New("store down")

// monday 2024-01-01 是星期一
func at(day int, hhmm string) time.Time {
	m := ToMinutes(hhmm)
	return time.Date(2024, 1, day, m/60, m%60, 0, 0, time.UTC)
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// ── Mock TimeSlotRepository：总是失败 ──

type failingTimeSlotRepo struct{}

func (failingTimeSlotRepo) List(_ context.Context) ([]model.TimeSlot, error) {
	return nil, errStoreDown
}

// ── Mock HistoryRepository：总是失败 ──

type failingHistoryRepo struct{}

func (failingHistoryRepo) List(_ context.Context) ([]model.HistoricalRecord, error) {
	return nil, errStoreDown
}

func (failingHistoryRepo) ListByLecturerDay(_ context.Context, _, _ string) ([]model.HistoricalRecord, error) {
	return nil, errStoreDown
}

// newFailingRepo 时间段表不可读的 Repository
func newFailingRepo() *repository.Repository {
	repo := repository.NewStaticRepository()
	repo.TimeSlot = failingTimeSlotRepo{}
	return repo
}

// withHistory 用给定历史记录替换内置数据
func withHistory(records ...model.HistoricalRecord) *repository.Repository {
	repo := repository.NewStaticRepository()
	repo.History = repository.NewStaticHistoryRepo(records)
	return repo
}
