package repository

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/viann980/Jadwal-Integrasi-ai/pkg/errors"
)

// Validate 启动时校验课表引用完整性：
//   - 每个时间段的 ClassID 都能找到教学班
//   - 每个教学班的 CourseCode 都能找到课程
//   - 时间段 day 在 0-6 之间，且 start < end
func Validate(ctx context.Context, repo *Repository) error {
	courses, err := repo.Course.List(ctx)
	if err != nil {
		return fmt.Errorf("读取课程失败: %w", err)
	}
	sections, err := repo.Section.List(ctx)
	if err != nil {
		return fmt.Errorf("读取教学班失败: %w", err)
	}
	slots, err := repo.TimeSlot.List(ctx)
	if err != nil {
		return fmt.Errorf("读取时间段失败: %w", err)
	}

	courseSet := make(map[string]bool, len(courses))
	for _, c := range courses {
		courseSet[c.Code] = true
	}
	sectionSet := make(map[string]bool, len(sections))
	for _, s := range sections {
		if !courseSet[s.CourseCode] {
			return fmt.Errorf("%w: 教学班 %s 引用了不存在的课程 %s", pkgerrors.ErrCatalogInvalid, s.ID, s.CourseCode)
		}
		sectionSet[s.ID] = true
	}

	for _, slot := range slots {
		if !sectionSet[slot.ClassID] {
			return fmt.Errorf("%w: 时间段引用了不存在的教学班 %s", pkgerrors.ErrCatalogInvalid, slot.ClassID)
		}
		if slot.Day < 0 || slot.Day > 6 {
			return fmt.Errorf("%w: 教学班 %s 的星期 %d 非法", pkgerrors.ErrCatalogInvalid, slot.ClassID, slot.Day)
		}
		start, err := time.Parse("15:04", slot.Start)
		if err != nil {
			return fmt.Errorf("%w: 教学班 %s 开始时间 %q 非法", pkgerrors.ErrCatalogInvalid, slot.ClassID, slot.Start)
		}
		end, err := time.Parse("15:04", slot.End)
		if err != nil {
			return fmt.Errorf("%w: 教学班 %s 结束时间 %q 非法", pkgerrors.ErrCatalogInvalid, slot.ClassID, slot.End)
		}
		if !start.Before(end) {
			return fmt.Errorf("%w: 教学班 %s 时间段 %s-%s 开始不早于结束", pkgerrors.ErrCatalogInvalid, slot.ClassID, slot.Start, slot.End)
		}
	}

	return nil
}
