package repository

import (
	"context"
	"slices"

	"gorm.io/gorm"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
)

// SectionRepository 教学班数据访问接口
type SectionRepository interface {
	List(ctx context.Context) ([]model.ClassSection, error)
	GetByID(ctx context.Context, id string) (*model.ClassSection, error)
}

type staticSectionRepo struct {
	sections []model.ClassSection
}

// NewStaticSectionRepo 创建基于内存表的 SectionRepository
func NewStaticSectionRepo(sections []model.ClassSection) SectionRepository {
	return &staticSectionRepo{sections: slices.Clone(sections)}
}

func (r *staticSectionRepo) List(_ context.Context) ([]model.ClassSection, error) {
	return slices.Clone(r.sections), nil
}

func (r *staticSectionRepo) GetByID(_ context.Context, id string) (*model.ClassSection, error) {
	for _, s := range r.sections {
		if s.ID == id {
			s := s
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

type sectionRepo struct {
	db *gorm.DB
}

// NewSectionRepo 创建 SectionRepository 的 GORM 实例
func NewSectionRepo(db *gorm.DB) SectionRepository {
	return &sectionRepo{db: db}
}

func (r *sectionRepo) List(ctx context.Context) ([]model.ClassSection, error) {
	var sections []model.ClassSection
	err := r.db.WithContext(ctx).Order("id ASC").Find(&sections).Error
	return sections, err
}

func (r *sectionRepo) GetByID(ctx context.Context, id string) (*model.ClassSection, error) {
	var section model.ClassSection
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&section).Error; err != nil {
		return nil, notFound(err)
	}
	return &section, nil
}
