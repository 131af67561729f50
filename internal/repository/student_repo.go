package repository

import (
	"context"
	"slices"

	"gorm.io/gorm"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
)

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	List(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id string) (*model.Student, error)
}

type staticStudentRepo struct {
	students []model.Student
}

// NewStaticStudentRepo 创建基于内存表的 StudentRepository
func NewStaticStudentRepo(students []model.Student) StudentRepository {
	return &staticStudentRepo{students: slices.Clone(students)}
}

func (r *staticStudentRepo) List(_ context.Context) ([]model.Student, error) {
	return slices.Clone(r.students), nil
}

func (r *staticStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	for _, s := range r.students {
		if s.ID == id {
			s := s
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 的 GORM 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).Order("id ASC").Find(&students).Error
	return students, err
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&student).Error; err != nil {
		return nil, notFound(err)
	}
	return &student, nil
}
