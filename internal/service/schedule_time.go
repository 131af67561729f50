package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
)

// ── 时间与展示辅助 ──
//
// 课表只关心"星期几 + 当天第几分钟"，不做跨时区换算。

var weekdayNames = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// WeekdayName 返回印尼语星期名称，越界返回空串
func WeekdayName(day int) string {
	if day < 0 || day > 6 {
		return ""
	}
	return weekdayNames[day]
}

// ToMinutes 将 "HH:MM" 转为当天分钟数，格式非法时返回 -1
func ToMinutes(hhmm string) int {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return -1
	}
	hour, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return -1
	}
	minute, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil || hour < 0 || minute < 0 || minute > 59 {
		return -1
	}
	return hour*60 + minute
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// HumanLine 生成一条课表的可读描述
func HumanLine(e model.ScheduleEntry) string {
	return fmt.Sprintf("%s %s — %s-%s, %s, %s, %s %s-%s",
		e.Course.Code, e.Course.Name,
		e.Section.Program, e.Section.Group,
		e.Section.Lecturer, e.Section.Room,
		WeekdayName(e.Slot.Day), e.Slot.Start, e.Slot.End,
	)
}

// ParseAsOf 解析"as-of"时间参数：
//   - 空串：返回 now
//   - "HH:MM"：取 now 当天的该时刻
//   - RFC3339：按 loc 换算为本地墙上时间
func ParseAsOf(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		if loc != nil {
			t = t.In(loc)
		}
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04", raw, now.Location()); err == nil {
		return t, nil
	}
	m := ToMinutes(raw)
	if m < 0 || m >= 24*60 {
		return time.Time{}, ErrInvalidTime
	}
	return time.Date(now.Year(), now.Month(), now.Day(), m/60, m%60, 0, 0, now.Location()), nil
}
