package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/dto"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/repository"
)

func setupTestDashboardService(repo *repository.Repository, now time.Time) DashboardService {
	logger := zap.NewNop()
	query := NewScheduleQueryService(repo, logger)
	lateness := NewLatenessService(repo, DefaultLateThreshold, logger)
	return NewDashboardService(repo, query, lateness, fixedClock(now), "NIM001", logger)
}

func TestGetDashboard_DefaultStudent(t *testing.T) {
	svc := setupTestDashboardService(repository.NewStaticRepository(), at(1, "08:30"))

	resp, err := svc.GetDashboard(context.Background(), &dto.DashboardRequest{})
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if resp.Now != "Senin 08:30:00" {
		t.Errorf("now 期望 Senin 08:30:00，实际 %s", resp.Now)
	}
	if resp.Student.ID != "NIM001" || resp.Student.Semester != 3 {
		t.Errorf("学生信息错误: %+v", resp.Student)
	}

	cur := resp.CurrentClass
	if cur == nil || cur.Code != "IF101" {
		t.Fatalf("当前课期望 IF101，实际 %+v", cur)
	}
	if cur.Status != "Berlangsung" || !cur.LecturerPresent {
		t.Errorf("实时状态错误: %+v", cur)
	}
	if cur.Day != "Senin" || cur.PredictionWarning != nil || cur.PredictionProbability != 0 {
		t.Errorf("预测字段错误: %+v", cur)
	}

	next := resp.NextClass
	if next == nil || next.Code != "IF102" {
		t.Fatalf("下一节期望 IF102，实际 %+v", next)
	}
	if next.Status != "Tidak ada data" || next.LecturerPresent {
		t.Errorf("无实时数据时应为默认状态: %+v", next)
	}
}

func TestGetDashboard_NowOverride(t *testing.T) {
	svc := setupTestDashboardService(repository.NewStaticRepository(), at(1, "08:30"))

	resp, err := svc.GetDashboard(context.Background(), &dto.DashboardRequest{StudentID: "NIM003", Now: "2024-01-02T08:15:00Z"})
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if resp.Now != "Selasa 08:15:00" {
		t.Errorf("now 期望 Selasa 08:15:00，实际 %s", resp.Now)
	}
	if resp.CurrentClass == nil || resp.CurrentClass.Code != "SI101" {
		t.Fatalf("当前课期望 SI101，实际 %+v", resp.CurrentClass)
	}
	// Dosen Z 周二历史 1/2
	if resp.CurrentClass.PredictionProbability != 0.5 || resp.CurrentClass.PredictionWarning != nil {
		t.Errorf("预测错误: %+v", resp.CurrentClass)
	}
	// 只向后看 6 天，下周二不在范围内
	if resp.NextClass != nil {
		t.Errorf("下一节期望为空，实际 %+v", resp.NextClass)
	}
}

func TestGetDashboard_PredictionWarning(t *testing.T) {
	repo := withHistory(
		model.HistoricalRecord{Lecturer: "Dr. Sinta", Day: "Senin", LateMinutes: 10},
		model.HistoricalRecord{Lecturer: "Dr. Sinta", Day: "Senin", LateMinutes: 12},
	)
	svc := setupTestDashboardService(repo, at(1, "08:30"))

	resp, err := svc.GetDashboard(context.Background(), &dto.DashboardRequest{StudentID: "NIM001"})
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if resp.CurrentClass.PredictionWarning == nil || resp.CurrentClass.PredictionProbability != 1 {
		t.Errorf("期望产生迟到告警，实际 %+v", resp.CurrentClass)
	}
}

func TestGetDashboard_SeedLatenessWarning(t *testing.T) {
	svc := setupTestDashboardService(repository.NewStaticRepository(), at(1, "08:30"))
	want := "Prediksi AI: Kelas ini memiliki potensi terlambat 10-15 menit berdasarkan pola Dosen Y."

	// 周一上午：下一节是 Dosen Y 的 IF201
	resp, err := svc.GetDashboard(context.Background(), &dto.DashboardRequest{StudentID: "NIM002"})
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	next := resp.NextClass
	if next == nil || next.Code != "IF201" || next.Lecturer != "Dosen Y" {
		t.Fatalf("下一节期望 Dosen Y 的 IF201，实际 %+v", next)
	}
	if next.PredictionWarning == nil || *next.PredictionWarning != want || next.PredictionProbability != 1 {
		t.Errorf("期望迟到告警，实际 %+v", next)
	}
	if next.Status != "Tunda 15 Menit" || next.LecturerPresent {
		t.Errorf("实时状态错误: %+v", next)
	}

	// 上课期间：当前课带告警，下一节（周二 Dr. Sinta）不带
	resp, err = svc.GetDashboard(context.Background(), &dto.DashboardRequest{StudentID: "NIM002", Now: "13:30"})
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if resp.CurrentClass == nil || resp.CurrentClass.PredictionWarning == nil {
		t.Fatalf("当前课期望迟到告警，实际 %+v", resp.CurrentClass)
	}
	if resp.NextClass == nil || resp.NextClass.Code != "IF101" || resp.NextClass.PredictionWarning != nil {
		t.Errorf("下一节期望无告警的 IF101，实际 %+v", resp.NextClass)
	}
}

func TestGetDashboard_NoClasses(t *testing.T) {
	svc := setupTestDashboardService(repository.NewStaticRepository(), at(1, "08:30"))

	resp, err := svc.GetDashboard(context.Background(), &dto.DashboardRequest{StudentID: "NIM004"})
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if resp.CurrentClass != nil || resp.NextClass != nil {
		t.Errorf("无课学生应返回空课程，实际 %+v / %+v", resp.CurrentClass, resp.NextClass)
	}
}

func TestGetDashboard_Errors(t *testing.T) {
	ctx := context.Background()

	svc := setupTestDashboardService(repository.NewStaticRepository(), at(1, "08:30"))
	if _, err := svc.GetDashboard(ctx, &dto.DashboardRequest{StudentID: "NIM999"}); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound，实际 %v", err)
	}
	if _, err := svc.GetDashboard(ctx, &dto.DashboardRequest{Now: "jam 8"}); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("期望 ErrInvalidTime，实际 %v", err)
	}

	failing := setupTestDashboardService(newFailingRepo(), at(1, "08:30"))
	if _, err := failing.GetDashboard(ctx, &dto.DashboardRequest{}); !errors.Is(err, errStoreDown) {
		t.Errorf("期望透传数据源错误，实际 %v", err)
	}
}
