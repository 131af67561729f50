package repository

import (
	"context"
	"slices"

	"gorm.io/gorm"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
)

// TimeSlotRepository 时间段数据访问接口
// List 必须保持表内原始顺序：多个时间段重叠时按该顺序取第一个
type TimeSlotRepository interface {
	List(ctx context.Context) ([]model.TimeSlot, error)
}

type staticTimeSlotRepo struct {
	slots []model.TimeSlot
}

// NewStaticTimeSlotRepo 创建基于内存表的 TimeSlotRepository
func NewStaticTimeSlotRepo(slots []model.TimeSlot) TimeSlotRepository {
	return &staticTimeSlotRepo{slots: slices.Clone(slots)}
}

func (r *staticTimeSlotRepo) List(_ context.Context) ([]model.TimeSlot, error) {
	return slices.Clone(r.slots), nil
}

type timeSlotRepo struct {
	db *gorm.DB
}

// NewTimeSlotRepo 创建 TimeSlotRepository 的 GORM 实例
func NewTimeSlotRepo(db *gorm.DB) TimeSlotRepository {
	return &timeSlotRepo{db: db}
}

func (r *timeSlotRepo) List(ctx context.Context) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	err := r.db.WithContext(ctx).Order("id ASC").Find(&slots).Error
	return slots, err
}
