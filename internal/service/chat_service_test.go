package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/dto"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/repository"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/summarizer"
)

func setupTestChatService(sum summarizer.Summarizer, now time.Time) ChatService {
	logger := zap.NewNop()
	query := NewScheduleQueryService(repository.NewStaticRepository(), logger)
	return NewChatService(query, sum, 50*time.Millisecond, fixedClock(now), logger)
}

func askOK(t *testing.T, svc ChatService, req *dto.ChatRequest) *dto.ChatResponse {
	t.Helper()
	resp, err := svc.Ask(context.Background(), req)
	if err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if resp.Assistant.Role != "assistant" || !strings.HasPrefix(resp.Assistant.ID, "asst-") {
		t.Errorf("助手消息头错误: %+v", resp.Assistant)
	}
	if len(resp.Assistant.Parts) != 2 || resp.Assistant.Parts[0].Type != dto.PartTypeText {
		t.Fatalf("期望 [text, tool] 两个片段，实际 %+v", resp.Assistant.Parts)
	}
	if resp.Assistant.Parts[1].State != dto.PartStateOutputAvailable {
		t.Errorf("工具片段状态错误: %s", resp.Assistant.Parts[1].State)
	}
	return resp
}

// ── 意图路由 ──

func TestChat_CurrentClass(t *testing.T) {
	svc := setupTestChatService(nil, at(1, "08:30"))

	resp := askOK(t, svc, &dto.ChatRequest{Text: "Ada kuliah sekarang?", Program: "Informatika"})
	tool := resp.Assistant.Parts[1]
	if tool.Type != dto.PartTypeCurrentClass {
		t.Fatalf("期望 %s，实际 %s", dto.PartTypeCurrentClass, tool.Type)
	}
	out, ok := tool.Output.(dto.EntryOutput)
	if !ok || !out.Found || out.Entry.Course.Code != "IF101" {
		t.Fatalf("期望找到 IF101，实际 %+v", tool.Output)
	}
	if out.Time != "08:00-09:40" || out.Room != "R101" {
		t.Errorf("输出字段错误: %+v", out)
	}
	if got := resp.Assistant.Parts[0].Text; got != "Berikut hasil pencarian jadwal (filter: Informatika)." {
		t.Errorf("本地摘要错误: %q", got)
	}
}

func TestChat_StudentBackfillsFilter(t *testing.T) {
	svc := setupTestChatService(nil, at(1, "08:30"))

	// NIM002 属于 Informatika-B，周一 08:30 没有课
	resp := askOK(t, svc, &dto.ChatRequest{Text: "kuliah sekarang nim 002"})
	out, ok := resp.Assistant.Parts[1].Output.(dto.NotFoundOutput)
	if !ok || out.Found || out.Message != msgNoCurrentClass {
		t.Errorf("期望未找到，实际 %+v", resp.Assistant.Parts[1].Output)
	}
}

func TestChat_DatetimeAndMessageAlias(t *testing.T) {
	svc := setupTestChatService(nil, at(1, "08:30"))

	resp := askOK(t, svc, &dto.ChatRequest{
		Message:  "kuliah sekarang informatika kelas b",
		Datetime: "2024-01-02T09:30:00Z",
	})
	out, ok := resp.Assistant.Parts[1].Output.(dto.EntryOutput)
	if !ok || out.Entry.Section.ID != "S2" {
		t.Errorf("期望周二 S2，实际 %+v", resp.Assistant.Parts[1].Output)
	}
}

func TestChat_NextClass(t *testing.T) {
	svc := setupTestChatService(nil, at(1, "12:00"))

	resp := askOK(t, svc, &dto.ChatRequest{Text: "kelas berikutnya informatika kelas a"})
	tool := resp.Assistant.Parts[1]
	out, ok := tool.Output.(dto.EntryOutput)
	if tool.Type != dto.PartTypeNextClass || !ok || out.Entry.Course.Code != "IF201" {
		t.Errorf("期望下一节 IF201，实际 %s %+v", tool.Type, tool.Output)
	}
}

func TestChat_ListIntents(t *testing.T) {
	svc := setupTestChatService(nil, at(1, "08:30"))

	tests := []struct {
		text     string
		wantType string
		wantN    int
	}{
		{"Jadwal Pak Bima hari ini", dto.PartTypeLecturer, 1},
		{"Kapan Bu Rani mengajar?", dto.PartTypeLecturer, 1},
		{"Jadwal IF101 hari ini", dto.PartTypeCourse, 2},
		{"mata kuliah data", dto.PartTypeCourse, 3},
	}
	for _, tt := range tests {
		resp := askOK(t, svc, &dto.ChatRequest{Text: tt.text})
		tool := resp.Assistant.Parts[1]
		out, ok := tool.Output.(dto.ListOutput)
		if tool.Type != tt.wantType || !ok || out.Count != tt.wantN || len(out.Items) != tt.wantN {
			t.Errorf("%q: 期望 %s/%d，实际 %s %+v", tt.text, tt.wantType, tt.wantN, tool.Type, tool.Output)
		}
	}
}

func TestChat_StudentIntent(t *testing.T) {
	svc := setupTestChatService(nil, at(1, "08:30"))

	resp := askOK(t, svc, &dto.ChatRequest{Text: "jadwal NIM001"})
	out, ok := resp.Assistant.Parts[1].Output.(dto.StudentOutput)
	if !ok || !out.Found || out.Student.Name != "Adi Nugraha" || out.Count != 3 {
		t.Errorf("学生课表错误: %+v", resp.Assistant.Parts[1].Output)
	}

	resp = askOK(t, svc, &dto.ChatRequest{Text: "jadwal nim 999"})
	nf, ok := resp.Assistant.Parts[1].Output.(dto.NotFoundOutput)
	if !ok || nf.Message != msgStudentNotFound {
		t.Errorf("期望学生未找到，实际 %+v", resp.Assistant.Parts[1].Output)
	}

	// name 上下文优先
	resp = askOK(t, svc, &dto.ChatRequest{Text: "jadwal nim 001", Name: "Bela"})
	out, ok = resp.Assistant.Parts[1].Output.(dto.StudentOutput)
	if !ok || out.Student.ID != "NIM002" {
		t.Errorf("期望 NIM002，实际 %+v", resp.Assistant.Parts[1].Output)
	}
}

func TestChat_Today(t *testing.T) {
	svc := setupTestChatService(nil, at(2, "07:00"))

	resp := askOK(t, svc, &dto.ChatRequest{})
	tool := resp.Assistant.Parts[1]
	out, ok := tool.Output.(dto.TodayOutput)
	if tool.Type != dto.PartTypeToday || !ok || out.Count != 3 || out.Message != "" {
		t.Fatalf("今日课表错误: %s %+v", tool.Type, tool.Output)
	}
	if out.Items[0].Time != "08:00-09:30" || out.Items[0].Room != "Ruang A.102" {
		t.Errorf("应按开始时间排序: %+v", out.Items[0])
	}
	if resp.Assistant.Parts[0].Text != summaryFallbackText {
		t.Errorf("无过滤条件时摘要应为固定文案: %q", resp.Assistant.Parts[0].Text)
	}

	sunday := setupTestChatService(nil, at(7, "07:00"))
	resp = askOK(t, sunday, &dto.ChatRequest{Text: "jadwal"})
	out = resp.Assistant.Parts[1].Output.(dto.TodayOutput)
	if out.Count != 0 || out.Message != msgNoClassToday {
		t.Errorf("周日应无课: %+v", out)
	}
}

func TestChat_LocalSummaryFilters(t *testing.T) {
	svc := setupTestChatService(nil, at(1, "08:30"))

	resp := askOK(t, svc, &dto.ChatRequest{Text: "halo", Program: "Informatika", Semester: "3", Name: "Adi"})
	want := "Berikut hasil pencarian jadwal (filter: Informatika, 3, Adi)."
	if got := resp.Assistant.Parts[0].Text; got != want {
		t.Errorf("摘要 =\n%q\n期望\n%q", got, want)
	}
}

// ── 外部摘要 ──

func TestChat_SummarizerSuccess(t *testing.T) {
	var prompt string
	sum := summarizer.Func(func(_ context.Context, p string) (string, error) {
		prompt = p
		return "Ada kelas Algoritma sekarang.", nil
	})
	svc := setupTestChatService(sum, at(1, "08:30"))

	resp := askOK(t, svc, &dto.ChatRequest{Text: "Ada kuliah sekarang?", Program: "Informatika"})
	if resp.Assistant.Parts[0].Text != "Ada kelas Algoritma sekarang." {
		t.Errorf("应使用外部摘要: %q", resp.Assistant.Parts[0].Text)
	}
	if !strings.Contains(prompt, "Pertanyaan: Ada kuliah sekarang?") ||
		!strings.Contains(prompt, "program=Informatika, semester=-, nama=-") ||
		!strings.Contains(prompt, `"found":true`) {
		t.Errorf("提示词缺少上下文:\n%s", prompt)
	}
}

func TestChat_SummarizerFallback(t *testing.T) {
	tests := []struct {
		name string
		fn   summarizer.Func
	}{
		{"返回错误", func(context.Context, string) (string, error) {
			return "", errors.New("quota exceeded")
		}},
		{"返回空白", func(context.Context, string) (string, error) {
			return "   ", nil
		}},
		{"发生 panic", func(context.Context, string) (string, error) {
			panic("boom")
		}},
		{"超时", func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setupTestChatService(tt.fn, at(1, "08:30"))
			resp := askOK(t, svc, &dto.ChatRequest{Text: "Ada kuliah sekarang?", Program: "Informatika"})
			if resp.Assistant.Parts[0].Text != summaryFallbackText {
				t.Errorf("期望回退文案，实际 %q", resp.Assistant.Parts[0].Text)
			}
			if resp.Assistant.Parts[1].Type != dto.PartTypeCurrentClass {
				t.Errorf("摘要失败不应影响工具结果: %+v", resp.Assistant.Parts[1])
			}
		})
	}
}

func TestChat_StoreError(t *testing.T) {
	logger := zap.NewNop()
	query := NewScheduleQueryService(newFailingRepo(), logger)
	svc := NewChatService(query, nil, time.Second, fixedClock(at(1, "08:30")), logger)

	if _, err := svc.Ask(context.Background(), &dto.ChatRequest{Text: "sekarang"}); !errors.Is(err, errStoreDown) {
		t.Errorf("期望透传数据源错误，实际 %v", err)
	}
}
