package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/dto"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/repository"
)

const realtimeUnknownStatus = "Tidak ada data"

// DashboardService 看板（当前课 / 下一节课）业务接口
type DashboardService interface {
	GetDashboard(ctx context.Context, req *dto.DashboardRequest) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo             *repository.Repository
	query            ScheduleQueryService
	lateness         LatenessService
	clock            Clock
	defaultStudentID string
	logger           *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(
	repo *repository.Repository,
	query ScheduleQueryService,
	lateness LatenessService,
	clock Clock,
	defaultStudentID string,
	logger *zap.Logger,
) DashboardService {
	return &dashboardService{
		repo:             repo,
		query:            query,
		lateness:         lateness,
		clock:            clock,
		defaultStudentID: defaultStudentID,
		logger:           logger,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, req *dto.DashboardRequest) (*dto.DashboardResponse, error) {
	studentID := strings.TrimSpace(req.StudentID)
	if studentID == "" {
		studentID = s.defaultStudentID
	}

	now := s.clock()
	asOf, err := ParseAsOf(req.Now, now, now.Location())
	if err != nil {
		return nil, err
	}

	student, _, err := s.query.FindByStudent(ctx, StudentQuery{ID: studentID})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	cohort := Filter{Program: student.Program, Group: student.Group}
	current, err := s.query.FindCurrent(ctx, asOf, cohort)
	if err != nil {
		return nil, err
	}
	next, err := s.query.FindNext(ctx, asOf, cohort)
	if err != nil {
		return nil, err
	}

	// now 显示的是参考时刻，传入 now 覆盖值时回显该值而非墙上时钟
	resp := &dto.DashboardResponse{
		Now: WeekdayName(int(asOf.Weekday())) + " " + asOf.Format("15:04:05"),
		Student: dto.StudentProfile{
			ID:       student.ID,
			Name:     student.Name,
			Program:  student.Program,
			Group:    student.Group,
			Semester: student.Semester,
		},
	}
	if resp.CurrentClass, err = s.toClassInfo(ctx, current); err != nil {
		return nil, err
	}
	if resp.NextClass, err = s.toClassInfo(ctx, next); err != nil {
		return nil, err
	}
	return resp, nil
}

// toClassInfo 附加实时状态与迟到预测；entry 为 nil 时返回 nil
func (s *dashboardService) toClassInfo(ctx context.Context, e *model.ScheduleEntry) (*dto.ClassInfo, error) {
	if e == nil {
		return nil, nil
	}

	info := &dto.ClassInfo{
		Code:     e.Course.Code,
		Name:     e.Course.Name,
		Lecturer: e.Section.Lecturer,
		Room:     e.Section.Room,
		Start:    e.Slot.Start,
		End:      e.Slot.End,
		Day:      WeekdayName(e.Slot.Day),
		Status:   realtimeUnknownStatus,
	}

	rt, err := s.repo.Realtime.GetByCourseCode(ctx, e.Course.Code)
	switch {
	case err == nil:
		info.Status = rt.Status
		info.LecturerPresent = rt.LecturerPresent
	case errors.Is(err, repository.ErrNotFound):
	default:
		s.logger.Error("查询实时状态失败", zap.String("code", e.Course.Code), zap.Error(err))
		return nil, err
	}

	pred, err := s.lateness.Predict(ctx, e.Section.Lecturer, info.Day)
	if err != nil {
		return nil, err
	}
	info.PredictionProbability = pred.Probability
	info.PredictionWarning = pred.Warning
	return info, nil
}
