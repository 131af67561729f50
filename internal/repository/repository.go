package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound 按主键查找的记录不存在
var ErrNotFound = errors.New("记录不存在")

// Repository 所有 Repository 的聚合入口
//
// 课表数据只读：接口仅提供"全量扫描"与"按键查找"两类能力，
// 默认由内置静态表实现，data.source=postgres 时切换为 GORM 实现。
type Repository struct {
	Course   CourseRepository
	Section  SectionRepository
	TimeSlot TimeSlotRepository
	Student  StudentRepository
	History  HistoryRepository
	Realtime RealtimeRepository
}

// NewStaticRepository 创建基于内置数据的 Repository 聚合
func NewStaticRepository() *Repository {
	return &Repository{
		Course:   NewStaticCourseRepo(seedCourses),
		Section:  NewStaticSectionRepo(seedSections),
		TimeSlot: NewStaticTimeSlotRepo(seedTimeSlots),
		Student:  NewStaticStudentRepo(seedStudents),
		History:  NewStaticHistoryRepo(seedHistory),
		Realtime: NewStaticRealtimeRepo(seedRealtime),
	}
}

// NewRepository 创建基于 PostgreSQL 的 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Course:   NewCourseRepo(db),
		Section:  NewSectionRepo(db),
		TimeSlot: NewTimeSlotRepo(db),
		Student:  NewStudentRepo(db),
		History:  NewHistoryRepo(db),
		Realtime: NewRealtimeRepo(db),
	}
}

// notFound 将 GORM 的未找到错误统一为 ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
