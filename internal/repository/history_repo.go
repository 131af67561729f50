package repository

import (
	"context"
	"slices"

	"gorm.io/gorm"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
)

// HistoryRepository 教师迟到历史数据访问接口
type HistoryRepository interface {
	List(ctx context.Context) ([]model.HistoricalRecord, error)
	// ListByLecturerDay 精确匹配 (lecturer, day)，大小写敏感
	ListByLecturerDay(ctx context.Context, lecturer, day string) ([]model.HistoricalRecord, error)
}

type staticHistoryRepo struct {
	records []model.HistoricalRecord
}

// NewStaticHistoryRepo 创建基于内存表的 HistoryRepository
func NewStaticHistoryRepo(records []model.HistoricalRecord) HistoryRepository {
	return &staticHistoryRepo{records: slices.Clone(records)}
}

func (r *staticHistoryRepo) List(_ context.Context) ([]model.HistoricalRecord, error) {
	return slices.Clone(r.records), nil
}

func (r *staticHistoryRepo) ListByLecturerDay(_ context.Context, lecturer, day string) ([]model.HistoricalRecord, error) {
	var out []model.HistoricalRecord
	for _, h := range r.records {
		if h.Lecturer == lecturer && h.Day == day {
			out = append(out, h)
		}
	}
	return out, nil
}

type historyRepo struct {
	db *gorm.DB
}

// NewHistoryRepo 创建 HistoryRepository 的 GORM 实例
func NewHistoryRepo(db *gorm.DB) HistoryRepository {
	return &historyRepo{db: db}
}

func (r *historyRepo) List(ctx context.Context) ([]model.HistoricalRecord, error) {
	var records []model.HistoricalRecord
	err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error
	return records, err
}

func (r *historyRepo) ListByLecturerDay(ctx context.Context, lecturer, day string) ([]model.HistoricalRecord, error) {
	var records []model.HistoricalRecord
	err := r.db.WithContext(ctx).
		Where("lecturer = ? AND day = ?", lecturer, day).
		Order("id ASC").
		Find(&records).Error
	return records, err
}
