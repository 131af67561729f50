package repository

import (
	"context"
	"slices"

	"gorm.io/gorm"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
)

// RealtimeRepository 课程实时状态数据访问接口
type RealtimeRepository interface {
	List(ctx context.Context) ([]model.RealtimeStatus, error)
	GetByCourseCode(ctx context.Context, code string) (*model.RealtimeStatus, error)
}

type staticRealtimeRepo struct {
	statuses []model.RealtimeStatus
}

// NewStaticRealtimeRepo 创建基于内存表的 RealtimeRepository
func NewStaticRealtimeRepo(statuses []model.RealtimeStatus) RealtimeRepository {
	return &staticRealtimeRepo{statuses: slices.Clone(statuses)}
}

func (r *staticRealtimeRepo) List(_ context.Context) ([]model.RealtimeStatus, error) {
	return slices.Clone(r.statuses), nil
}

func (r *staticRealtimeRepo) GetByCourseCode(_ context.Context, code string) (*model.RealtimeStatus, error) {
	for _, s := range r.statuses {
		if s.CourseCode == code {
			s := s
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

type realtimeRepo struct {
	db *gorm.DB
}

// NewRealtimeRepo 创建 RealtimeRepository 的 GORM 实例
func NewRealtimeRepo(db *gorm.DB) RealtimeRepository {
	return &realtimeRepo{db: db}
}

func (r *realtimeRepo) List(ctx context.Context) ([]model.RealtimeStatus, error) {
	var statuses []model.RealtimeStatus
	err := r.db.WithContext(ctx).Order("course_code ASC").Find(&statuses).Error
	return statuses, err
}

func (r *realtimeRepo) GetByCourseCode(ctx context.Context, code string) (*model.RealtimeStatus, error) {
	var status model.RealtimeStatus
	if err := r.db.WithContext(ctx).Where("course_code = ?", code).First(&status).Error; err != nil {
		return nil, notFound(err)
	}
	return &status, nil
}
