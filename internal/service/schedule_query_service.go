package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/repository"
)

// ── 查询模块业务错误 ──

var (
	ErrStudentNotFound = errors.New("学生不存在")
	ErrInvalidTime     = errors.New("时间参数格式非法")
)

// Filter 按 (program, group) 过滤，空串表示不限；比较不区分大小写
type Filter struct {
	Program string
	Group   string
}

func (f Filter) match(s model.ClassSection) bool {
	if f.Program != "" && !strings.EqualFold(s.Program, f.Program) {
		return false
	}
	if f.Group != "" && !strings.EqualFold(s.Group, f.Group) {
		return false
	}
	return true
}

// CourseQuery 课程查询条件，Code 与 Name 为"或"关系
type CourseQuery struct {
	Code string
	Name string
}

// StudentQuery 学生查询条件：先按 ID 精确匹配，再按姓名子串匹配
type StudentQuery struct {
	ID   string
	Name string
}

// ScheduleQueryService 课表查询接口
//
// 所有查询每次都重新连接 时间段→教学班→课程，不缓存；
// 未命中返回 nil / 空切片，error 只代表数据源故障。
type ScheduleQueryService interface {
	BuildEntries(ctx context.Context) ([]model.ScheduleEntry, error)
	FindCurrent(ctx context.Context, now time.Time, f Filter) (*model.ScheduleEntry, error)
	FindNext(ctx context.Context, now time.Time, f Filter) (*model.ScheduleEntry, error)
	FindByCourse(ctx context.Context, q CourseQuery) ([]model.ScheduleEntry, error)
	FindByLecturer(ctx context.Context, name string) ([]model.ScheduleEntry, error)
	FindByStudent(ctx context.Context, q StudentQuery) (*model.Student, []model.ScheduleEntry, error)
	TodaySchedule(ctx context.Context, now time.Time, f Filter) ([]model.ScheduleEntry, error)
}

type scheduleQueryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleQueryService 创建 ScheduleQueryService 实例
func NewScheduleQueryService(repo *repository.Repository, logger *zap.Logger) ScheduleQueryService {
	return &scheduleQueryService{repo: repo, logger: logger}
}

// ────────────────────── BuildEntries ──────────────────────

// BuildEntries 按时间段表顺序连接出全部课表项。
// 引用缺失的时间段会被跳过并记录告警（启动时已校验，正常不会出现）。
func (s *scheduleQueryService) BuildEntries(ctx context.Context) ([]model.ScheduleEntry, error) {
	slots, err := s.repo.TimeSlot.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取时间段失败: %w", err)
	}
	sections, err := s.repo.Section.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取教学班失败: %w", err)
	}
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取课程失败: %w", err)
	}

	sectionByID := make(map[string]model.ClassSection, len(sections))
	for _, sec := range sections {
		sectionByID[sec.ID] = sec
	}
	courseByCode := make(map[string]model.Course, len(courses))
	for _, c := range courses {
		courseByCode[c.Code] = c
	}

	entries := make([]model.ScheduleEntry, 0, len(slots))
	for _, slot := range slots {
		sec, ok := sectionByID[slot.ClassID]
		if !ok {
			s.logger.Warn("时间段引用的教学班不存在", zap.String("class_id", slot.ClassID))
			continue
		}
		course, ok := courseByCode[sec.CourseCode]
		if !ok {
			s.logger.Warn("教学班引用的课程不存在", zap.String("course_code", sec.CourseCode))
			continue
		}
		entries = append(entries, model.ScheduleEntry{Section: sec, Course: course, Slot: slot})
	}
	return entries, nil
}

// ────────────────────── FindCurrent ──────────────────────

// FindCurrent 返回 now 所在的课，区间两端都包含；多节重叠时取表中第一个
func (s *scheduleQueryService) FindCurrent(ctx context.Context, now time.Time, f Filter) (*model.ScheduleEntry, error) {
	entries, err := s.BuildEntries(ctx)
	if err != nil {
		return nil, err
	}

	day := int(now.Weekday())
	minutes := minuteOfDay(now)
	for _, e := range entries {
		if e.Slot.Day != day || !f.match(e.Section) {
			continue
		}
		if ToMinutes(e.Slot.Start) <= minutes && minutes <= ToMinutes(e.Slot.End) {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

// ────────────────────── FindNext ──────────────────────

// FindNext 先找今天 start > now 的最早一节；没有则逐日向后滚动（6→0 回绕），
// 最多再看 6 天，取第一个有课的日子里最早的一节。
func (s *scheduleQueryService) FindNext(ctx context.Context, now time.Time, f Filter) (*model.ScheduleEntry, error) {
	entries, err := s.BuildEntries(ctx)
	if err != nil {
		return nil, err
	}

	today := int(now.Weekday())
	minutes := minuteOfDay(now)

	todays := entriesOnDay(entries, today, f)
	for _, e := range todays {
		if ToMinutes(e.Slot.Start) > minutes {
			e := e
			return &e, nil
		}
	}

	for i := 1; i <= 6; i++ {
		list := entriesOnDay(entries, (today+i)%7, f)
		if len(list) > 0 {
			return &list[0], nil
		}
	}
	return nil, nil
}

// entriesOnDay 过滤出某天的课表项并按开始时间稳定排序
func entriesOnDay(entries []model.ScheduleEntry, day int, f Filter) []model.ScheduleEntry {
	var out []model.ScheduleEntry
	for _, e := range entries {
		if e.Slot.Day == day && f.match(e.Section) {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b model.ScheduleEntry) int {
		return ToMinutes(a.Slot.Start) - ToMinutes(b.Slot.Start)
	})
	return out
}

// ────────────────────── FindByCourse ──────────────────────

func (s *scheduleQueryService) FindByCourse(ctx context.Context, q CourseQuery) ([]model.ScheduleEntry, error) {
	code := strings.ToLower(strings.TrimSpace(q.Code))
	name := strings.ToLower(strings.TrimSpace(q.Name))
	if code == "" && name == "" {
		return []model.ScheduleEntry{}, nil
	}

	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取课程失败: %w", err)
	}
	matched := make(map[string]bool)
	for _, c := range courses {
		if (code != "" && strings.ToLower(c.Code) == code) ||
			(name != "" && strings.Contains(strings.ToLower(c.Name), name)) {
			matched[c.Code] = true
		}
	}

	entries, err := s.BuildEntries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.ScheduleEntry, 0)
	for _, e := range entries {
		if matched[e.Course.Code] {
			out = append(out, e)
		}
	}
	return out, nil
}

// ────────────────────── FindByLecturer ──────────────────────

// FindByLecturer 教师姓名子串匹配，不区分大小写；空串不匹配任何课
func (s *scheduleQueryService) FindByLecturer(ctx context.Context, name string) ([]model.ScheduleEntry, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return []model.ScheduleEntry{}, nil
	}

	entries, err := s.BuildEntries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.ScheduleEntry, 0)
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Section.Lecturer), needle) {
			out = append(out, e)
		}
	}
	return out, nil
}

// ────────────────────── FindByStudent ──────────────────────

// FindByStudent 解析学生后返回其 (program, group) 对应的全部课表项。
// 学生不存在时返回 (nil, 空切片, nil)。
func (s *scheduleQueryService) FindByStudent(ctx context.Context, q StudentQuery) (*model.Student, []model.ScheduleEntry, error) {
	student, err := s.resolveStudent(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	if student == nil {
		return nil, []model.ScheduleEntry{}, nil
	}

	entries, err := s.BuildEntries(ctx)
	if err != nil {
		return nil, nil, err
	}
	out := make([]model.ScheduleEntry, 0)
	for _, e := range entries {
		if e.Section.Program == student.Program && e.Section.Group == student.Group {
			out = append(out, e)
		}
	}
	return student, out, nil
}

func (s *scheduleQueryService) resolveStudent(ctx context.Context, q StudentQuery) (*model.Student, error) {
	id := strings.TrimSpace(q.ID)
	name := strings.ToLower(strings.TrimSpace(q.Name))
	if id == "" && name == "" {
		return nil, nil
	}

	students, err := s.repo.Student.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取学生失败: %w", err)
	}
	if id != "" {
		for i := range students {
			if strings.EqualFold(students[i].ID, id) {
				return &students[i], nil
			}
		}
	}
	if name != "" {
		for i := range students {
			if strings.Contains(strings.ToLower(students[i].Name), name) {
				return &students[i], nil
			}
		}
	}
	return nil, nil
}

// ────────────────────── TodaySchedule ──────────────────────

// TodaySchedule 返回 now 当天符合过滤条件的课，按开始时间排序
func (s *scheduleQueryService) TodaySchedule(ctx context.Context, now time.Time, f Filter) ([]model.ScheduleEntry, error) {
	entries, err := s.BuildEntries(ctx)
	if err != nil {
		return nil, err
	}
	out := entriesOnDay(entries, int(now.Weekday()), f)
	if out == nil {
		out = []model.ScheduleEntry{}
	}
	return out, nil
}
