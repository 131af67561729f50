package repository

import (
	"context"
	"slices"

	"gorm.io/gorm"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	List(ctx context.Context) ([]model.Course, error)
	GetByCode(ctx context.Context, code string) (*model.Course, error)
}

// ── 静态实现 ──

type staticCourseRepo struct {
	courses []model.Course
}

// NewStaticCourseRepo 创建基于内存表的 CourseRepository
func NewStaticCourseRepo(courses []model.Course) CourseRepository {
	return &staticCourseRepo{courses: slices.Clone(courses)}
}

func (r *staticCourseRepo) List(_ context.Context) ([]model.Course, error) {
	return slices.Clone(r.courses), nil
}

func (r *staticCourseRepo) GetByCode(_ context.Context, code string) (*model.Course, error) {
	for _, c := range r.courses {
		if c.Code == code {
			c := c
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// ── GORM 实现 ──

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 的 GORM 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Order("code ASC").Find(&courses).Error
	return courses, err
}

func (r *courseRepo) GetByCode(ctx context.Context, code string) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&course).Error; err != nil {
		return nil, notFound(err)
	}
	return &course, nil
}
