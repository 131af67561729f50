package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
)

// ── 导出模块业务错误 ──

var (
	ErrUnknownExportFormat = errors.New("不支持的导出格式")
	ErrExportGenerateFail  = errors.New("生成导出文件失败")
)

// 导出格式
const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
	ExportFormatICS  = "ics"
)

var exportHeader = []string{
	"ID_Mahasiswa",
	"Nama_Mahasiswa",
	"Jurusan",
	"Semester",
	"Kode_MK",
	"Nama_MK",
	"Dosen",
	"Hari",
	"Waktu_Mulai",
	"Waktu_Selesai",
	"Lokasi_Ruangan",
	"Kapasitas",
}

// ExportFile 导出结果
type ExportFile struct {
	Body        []byte
	Filename    string
	ContentType string
}

// ExportService 学生课表导出接口
//
// 设计说明：
//   - 数据行 = 该学生 (program, group) 对应的全部课表项，顺序同时间段表
//   - CSV 每个单元格都加双引号，内部双引号转义为两个双引号；无数据时只有表头
//   - XLSX / ICS 为附加格式，内容与 CSV 同源
type ExportService interface {
	Export(ctx context.Context, studentID, format string) (*ExportFile, error)
}

type exportService struct {
	query            ScheduleQueryService
	clock            Clock
	defaultStudentID string
	logger           *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(query ScheduleQueryService, clock Clock, defaultStudentID string, logger *zap.Logger) ExportService {
	return &exportService{
		query:            query,
		clock:            clock,
		defaultStudentID: defaultStudentID,
		logger:           logger,
	}
}

func (s *exportService) Export(ctx context.Context, studentID, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	switch format {
	case ExportFormatCSV, ExportFormatXLSX, ExportFormatICS:
	default:
		return nil, ErrUnknownExportFormat
	}

	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		studentID = s.defaultStudentID
	}
	student, entries, err := s.query.FindByStudent(ctx, StudentQuery{ID: studentID})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	base := "jadwal_" + student.ID
	switch format {
	case ExportFormatXLSX:
		body, err := s.buildXLSX(student, entries)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Body:        body,
			Filename:    base + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		}, nil
	case ExportFormatICS:
		return &ExportFile{
			Body:        []byte(s.buildICS(student, entries)),
			Filename:    base + ".ics",
			ContentType: "text/calendar; charset=utf-8",
		}, nil
	default:
		return &ExportFile{
			Body:        []byte(toCSV(exportRows(student, entries))),
			Filename:    base + ".csv",
			ContentType: "text/csv; charset=utf-8",
		}, nil
	}
}

// exportRows 表头 + 每个课表项一行
func exportRows(student *model.Student, entries []model.ScheduleEntry) [][]string {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, exportHeader)
	for _, e := range entries {
		rows = append(rows, []string{
			student.ID,
			student.Name,
			student.Program,
			strconv.Itoa(student.Semester),
			e.Course.Code,
			e.Course.Name,
			e.Section.Lecturer,
			WeekdayName(e.Slot.Day),
			e.Slot.Start,
			e.Slot.End,
			e.Section.Room,
			strconv.Itoa(e.Section.Capacity),
		})
	}
	return rows
}

// toCSV 所有单元格统一加引号；encoding/csv 只在必要时加引号，不满足前端约定
func toCSV(rows [][]string) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		cells := make([]string, len(r))
		for i, cell := range r {
			cells[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

// ────────────────────── XLSX ──────────────────────

func (s *exportService) buildXLSX(student *model.Student, entries []model.ScheduleEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Jadwal"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, row := range exportRows(student, entries) {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			s.logger.Error("写入 Excel 行失败", zap.Int("row", i+1), zap.Error(err))
			return nil, ErrExportGenerateFail
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(exportHeader))
	f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)
	f.SetColWidth(sheet, "A", lastCol, 16)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	return buf.Bytes(), nil
}

// ────────────────────── ICS ──────────────────────

// buildICS 每个课表项生成一个按周重复的事件，首次发生日为今天起最近的对应星期
func (s *exportService) buildICS(student *model.Student, entries []model.ScheduleEntry) string {
	now := s.clock()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Jadwal Kampus//ID")
	cal.SetXWRCalName("Jadwal " + student.Name)

	for _, e := range entries {
		start, end := firstOccurrence(now, e.Slot)

		ev := cal.AddEvent(fmt.Sprintf("%s-%s-%d@jadwal-kampus", student.ID, e.Section.ID, e.Slot.Day))
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(e.Course.Code + " " + e.Course.Name)
		ev.SetLocation(e.Section.Room)
		ev.SetDescription(HumanLine(e))
		ev.AddRrule("FREQ=WEEKLY")
	}
	return cal.Serialize()
}

func firstOccurrence(now time.Time, slot model.TimeSlot) (time.Time, time.Time) {
	offset := (slot.Day - int(now.Weekday()) + 7) % 7
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, offset)
	start := day.Add(time.Duration(ToMinutes(slot.Start)) * time.Minute)
	end := day.Add(time.Duration(ToMinutes(slot.End)) * time.Minute)
	return start, end
}
