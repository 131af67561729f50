package dto

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
)

// ── 看板（当前/下一节课）DTO ──

// DashboardRequest 看板查询参数
type DashboardRequest struct {
	StudentID string `form:"studentId"`
	Now       string `form:"now"` // 可选："HH:MM"（当天）或 RFC3339
}

// StudentProfile 学生简要信息
type StudentProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Program  string `json:"program"`
	Group    string `json:"group"`
	Semester int    `json:"semester"`
}

// ClassInfo 看板中的一节课
type ClassInfo struct {
	Code                  string  `json:"code"`
	Name                  string  `json:"name"`
	Lecturer              string  `json:"lecturer"`
	Room                  string  `json:"room"`
	Start                 string  `json:"start"`
	End                   string  `json:"end"`
	Day                   string  `json:"day"`
	Status                string  `json:"status"`
	LecturerPresent       bool    `json:"lecturerPresent"`
	PredictionWarning     *string `json:"predictionWarning"`
	PredictionProbability float64 `json:"predictionProbability"`
}

// DashboardResponse 看板响应；无匹配课程时 CurrentClass/NextClass 输出 null
type DashboardResponse struct {
	Now          string         `json:"now"`
	Student      StudentProfile `json:"student"`
	CurrentClass *ClassInfo     `json:"currentClass"`
	NextClass    *ClassInfo     `json:"nextClass"`
}

// ── 对话（自由文本查询）DTO ──

// ChatRequest 自由文本查询请求
// 请求体无法解析时按空请求处理
type ChatRequest struct {
	Text     string     `json:"text"`
	Message  string     `json:"message"`
	Program  string     `json:"program"`
	Semester FlexString `json:"semester"`
	Name     string     `json:"name"`
	Datetime string     `json:"datetime"` // 可选，RFC3339，便于前端演示指定时间
}

// FlexString 兼容 JSON 字符串与数字
type FlexString string

// UnmarshalJSON 实现 json.Unmarshaler
func (f *FlexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// Part 片段类型
const (
	PartTypeText             = "text"
	PartTypeCurrentClass     = "tool-findCurrentClass"
	PartTypeNextClass        = "tool-findNextClass"
	PartTypeLecturer         = "tool-lecturerSchedule"
	PartTypeCourse           = "tool-courseSchedule"
	PartTypeStudent          = "tool-studentSchedule"
	PartTypeToday            = "tool-todaySchedule"
	PartStateOutputAvailable = "output-available"
)

// Part 助手消息中的一个片段：纯文本或工具结果
type Part struct {
	Type   string      `json:"type"`
	Text   string      `json:"text,omitempty"`
	State  string      `json:"state,omitempty"`
	Output interface{} `json:"output,omitempty"`
}

// AssistantMessage 助手消息
type AssistantMessage struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// ChatResponse 自由文本查询响应
type ChatResponse struct {
	Assistant AssistantMessage `json:"assistant"`
}

// ChatUsageResponse GET 请求返回的接口说明
type ChatUsageResponse struct {
	Status string `json:"status"`
	Usage  string `json:"usage"`
}

// NotFoundOutput 未找到结果
type NotFoundOutput struct {
	Found   bool   `json:"found"`
	Message string `json:"message"`
}

// EntryOutput 当前/下一节课结果
type EntryOutput struct {
	Found bool                 `json:"found"`
	Entry *model.ScheduleEntry `json:"entry"`
	Text  string               `json:"text"`
	Time  string               `json:"time"`
	Room  string               `json:"room"`
}

// ListOutput 课程/教师课表结果
type ListOutput struct {
	Count int      `json:"count"`
	Items []string `json:"items"`
}

// StudentOutput 学生课表结果
type StudentOutput struct {
	Found   bool           `json:"found"`
	Student *model.Student `json:"student"`
	Count   int            `json:"count"`
	Items   []string       `json:"items"`
}

// TodayItem 当日课表中的一行
type TodayItem struct {
	Text string `json:"text"`
	Time string `json:"time"`
	Room string `json:"room"`
}

// TodayOutput 当日课表结果
type TodayOutput struct {
	Count   int         `json:"count"`
	Items   []TodayItem `json:"items"`
	Message string      `json:"message,omitempty"`
}

// ── 导出 DTO ──

// ExportRequest 导出查询参数
type ExportRequest struct {
	StudentID string `form:"studentId"`
	Format    string `form:"format"` // csv（默认）| xlsx | ics
}
