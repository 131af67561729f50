package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/dto"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/summarizer"
	pkgerrors "github.com/viann980/Jadwal-Integrasi-ai/pkg/errors"
)

// ── 对话模块文案 ──

const (
	msgNoCurrentClass   = "Tidak ada kuliah yang sedang berlangsung."
	msgNoNextClass      = "Tidak ada kuliah berikutnya."
	msgStudentNotFound  = "Mahasiswa tidak ditemukan."
	msgNoClassToday     = "Tidak ada mata kuliah hari ini."
	summaryFallbackText = "Berikut hasil pencarian jadwal."

	// ChatUsage GET /schedule-chat 返回的说明
	ChatUsage = "POST { text: string, program?: string, semester?: string, name?: string } → " +
		"returns assistant message with parts including tool outputs (today/current/next/course/lecturer/student)."

	summaryToolJSONLimit = 2000
)

// ChatService 自由文本课表查询接口
type ChatService interface {
	Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	query          ScheduleQueryService
	summarizer     summarizer.Summarizer // nil 表示只用本地摘要
	summaryTimeout time.Duration
	clock          Clock
	logger         *zap.Logger
}

// NewChatService 创建 ChatService 实例；sum 可为 nil
func NewChatService(
	query ScheduleQueryService,
	sum summarizer.Summarizer,
	summaryTimeout time.Duration,
	clock Clock,
	logger *zap.Logger,
) ChatService {
	return &chatService{
		query:          query,
		summarizer:     sum,
		summaryTimeout: summaryTimeout,
		clock:          clock,
		logger:         logger,
	}
}

func (s *chatService) Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	text := req.Text
	if text == "" {
		text = req.Message
	}
	q := strings.TrimSpace(text)

	parsed := ParseQuery(q, QueryContext{
		Program:     req.Program,
		Semester:    string(req.Semester),
		StudentName: req.Name,
	})

	// 解析出的学生只补全缺失的 program/group，不覆盖显式条件
	filter := Filter{Program: parsed.Program, Group: parsed.Group}
	if parsed.HasStudent() {
		student, _, err := s.query.FindByStudent(ctx, StudentQuery{ID: parsed.StudentID, Name: parsed.StudentName})
		if err != nil {
			return nil, err
		}
		if student != nil {
			if filter.Program == "" {
				filter.Program = student.Program
			}
			if filter.Group == "" {
				filter.Group = student.Group
			}
		}
	}

	now := s.clock()
	if req.Datetime != "" {
		if t, err := ParseAsOf(req.Datetime, now, now.Location()); err == nil {
			now = t
		}
	}

	tool, err := s.runIntent(ctx, parsed, filter, now)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("对话查询完成",
		zap.String("intent", string(parsed.Intent)),
		zap.String("program", filter.Program),
		zap.String("group", filter.Group),
	)

	summary := s.summarize(ctx, q, tool, filter.Program, string(req.Semester), req.Name)
	return &dto.ChatResponse{
		Assistant: dto.AssistantMessage{
			ID:    "asst-" + uuid.NewString(),
			Role:  "assistant",
			Parts: []dto.Part{{Type: dto.PartTypeText, Text: summary}, tool},
		},
	}, nil
}

// runIntent 按意图调用对应查询并包装为工具结果片段
func (s *chatService) runIntent(ctx context.Context, p ParsedQuery, f Filter, now time.Time) (dto.Part, error) {
	switch p.Intent {
	case IntentCurrent:
		e, err := s.query.FindCurrent(ctx, now, f)
		if err != nil {
			return dto.Part{}, err
		}
		return toolPart(dto.PartTypeCurrentClass, entryOutput(e, msgNoCurrentClass)), nil

	case IntentNext:
		e, err := s.query.FindNext(ctx, now, f)
		if err != nil {
			return dto.Part{}, err
		}
		return toolPart(dto.PartTypeNextClass, entryOutput(e, msgNoNextClass)), nil

	case IntentLecturer:
		list, err := s.query.FindByLecturer(ctx, p.Lecturer)
		if err != nil {
			return dto.Part{}, err
		}
		return toolPart(dto.PartTypeLecturer, listOutput(list)), nil

	case IntentCourse:
		list, err := s.query.FindByCourse(ctx, CourseQuery{Code: p.CourseCode, Name: p.CourseName})
		if err != nil {
			return dto.Part{}, err
		}
		return toolPart(dto.PartTypeCourse, listOutput(list)), nil

	case IntentStudent:
		student, list, err := s.query.FindByStudent(ctx, StudentQuery{ID: p.StudentID, Name: p.StudentName})
		if err != nil {
			return dto.Part{}, err
		}
		if student == nil {
			return toolPart(dto.PartTypeStudent, dto.NotFoundOutput{Found: false, Message: msgStudentNotFound}), nil
		}
		out := listOutput(list)
		return toolPart(dto.PartTypeStudent, dto.StudentOutput{
			Found:   true,
			Student: student,
			Count:   out.Count,
			Items:   out.Items,
		}), nil

	default:
		list, err := s.query.TodaySchedule(ctx, now, f)
		if err != nil {
			return dto.Part{}, err
		}
		out := dto.TodayOutput{Count: len(list), Items: make([]dto.TodayItem, 0, len(list))}
		for _, e := range list {
			out.Items = append(out.Items, dto.TodayItem{
				Text: HumanLine(e),
				Time: e.Slot.Start + "-" + e.Slot.End,
				Room: e.Section.Room,
			})
		}
		if out.Count == 0 {
			out.Message = msgNoClassToday
		}
		return toolPart(dto.PartTypeToday, out), nil
	}
}

func toolPart(typ string, output interface{}) dto.Part {
	return dto.Part{Type: typ, State: dto.PartStateOutputAvailable, Output: output}
}

func entryOutput(e *model.ScheduleEntry, notFoundMsg string) interface{} {
	if e == nil {
		return dto.NotFoundOutput{Found: false, Message: notFoundMsg}
	}
	return dto.EntryOutput{
		Found: true,
		Entry: e,
		Text:  HumanLine(*e),
		Time:  e.Slot.Start + "-" + e.Slot.End,
		Room:  e.Section.Room,
	}
}

func listOutput(list []model.ScheduleEntry) dto.ListOutput {
	items := make([]string, 0, len(list))
	for _, e := range list {
		items = append(items, HumanLine(e))
	}
	return dto.ListOutput{Count: len(items), Items: items}
}

// summarize 生成首个文本片段。
// 未配置外部摘要时输出带过滤条件的本地文案；外部调用失败统一回退为固定文案。
func (s *chatService) summarize(ctx context.Context, q string, tool dto.Part, program, semester, name string) string {
	if s.summarizer == nil {
		var filters []string
		for _, v := range []string{program, semester, name} {
			if v != "" {
				filters = append(filters, v)
			}
		}
		if len(filters) == 0 {
			return summaryFallbackText
		}
		return fmt.Sprintf("Berikut hasil pencarian jadwal (filter: %s).", strings.Join(filters, ", "))
	}

	toolJSON := "[]"
	if b, err := json.Marshal(tool.Output); err == nil {
		toolJSON = string(b)
		if len(toolJSON) > summaryToolJSONLimit {
			toolJSON = toolJSON[:summaryToolJSONLimit]
		}
	}
	prompt := "Ringkas jawaban jadwal berdasarkan data tool berikut dalam bahasa Indonesia yang singkat dan ramah.\n" +
		fmt.Sprintf("Konteks pengguna: program=%s, semester=%s, nama=%s\n", orDash(program), orDash(semester), orDash(name)) +
		fmt.Sprintf("Pertanyaan: %s\n", q) +
		fmt.Sprintf("Data tool (JSON): %s\n", toolJSON)

	if s.summaryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.summaryTimeout)
		defer cancel()
	}

	text, err := s.callSummarizer(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		s.logger.Warn("外部摘要不可用，使用本地文案", zap.Error(err))
		return summaryFallbackText
	}
	return text
}

// callSummarizer 外部实现 panic 时同样视为依赖不可用
func (s *chatService) callSummarizer(ctx context.Context, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", pkgerrors.ErrDependencyUnavailable, r)
		}
	}()
	return s.summarizer.Summarize(ctx, prompt)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
