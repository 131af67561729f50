package service

import (
	"regexp"
	"strings"
)

// ── 自由文本意图解析 ──
//
// 基于有序正则规则的尽力匹配，不做真正的自然语言理解。
// 每个字段有自己的规则列表，自上而下取第一个命中的规则；
// 意图选择同样是有序规则链，第一个命中者胜出。

// Intent 查询意图
type Intent string

const (
	IntentCurrent  Intent = "current"
	IntentNext     Intent = "next"
	IntentLecturer Intent = "lecturer"
	IntentCourse   Intent = "course"
	IntentStudent  Intent = "student"
	IntentToday    Intent = "today"
)

// QueryContext 调用方提供的上下文，非空时优先于文本解析结果
type QueryContext struct {
	Program     string
	Semester    string
	StudentName string
}

// ParsedQuery 解析结果
type ParsedQuery struct {
	Intent      Intent
	Program     string
	Group       string
	CourseCode  string
	CourseName  string
	Lecturer    string
	StudentID   string
	StudentName string
}

// HasStudent 是否解析出学生线索
func (p ParsedQuery) HasStudent() bool {
	return p.StudentID != "" || p.StudentName != ""
}

// extractRule 字段抽取规则：pattern 命中后由 apply 写入结果
type extractRule struct {
	pattern *regexp.Regexp
	apply   func(p *ParsedQuery, m []string)
}

// intentRule 意图规则：按顺序求值，第一个返回 true 的规则决定意图
type intentRule struct {
	intent Intent
	match  func(lower string, p *ParsedQuery) bool
}

var (
	currentPattern = regexp.MustCompile(`\b(sekarang|saat ini|sedang berlangsung)\b`)
	nextPattern    = regexp.MustCompile(`\b(berikutnya|selanjutnya|next)\b`)

	// courseCodePattern 作用于原始大小写文本
	courseCodePattern = regexp.MustCompile(`\b[A-Z]{2,}\d{3,}\b`)

	// stopPattern 自由文本值在这些关键词处截断（含常见动词，如 "Bu Rani mengajar"）
	stopPattern = regexp.MustCompile(`\b(hari ini|sekarang|saat ini|besok|minggu ini|jadwal|kelas|kelompok|grup|untuk|kapan|dimana|di|jam|dong|ya|apa|mengajar|ngajar|masuk|kuliah|mulai|selesai|hadir|datang|telat|terlambat)\b`)
)

var programRules = []extractRule{
	{regexp.MustCompile(`\binformatika\b`), func(p *ParsedQuery, _ []string) { p.Program = "Informatika" }},
	{regexp.MustCompile(`\bsistem informasi\b`), func(p *ParsedQuery, _ []string) { p.Program = "Sistem Informasi" }},
}

var groupRules = []extractRule{
	{regexp.MustCompile(`\bkelas\s+([a-z])\b`), setGroup},
	{regexp.MustCompile(`\bkelompok\s+([a-z])\b`), setGroup},
	{regexp.MustCompile(`\bgrup\s+([a-z])\b`), setGroup},
	{regexp.MustCompile(`\bgroup\s+([a-z])\b`), setGroup},
}

var courseNameRules = []extractRule{
	{regexp.MustCompile(`\bmata kuliah\s+([a-z0-9 .-]+)`), func(p *ParsedQuery, m []string) { p.CourseName = cutFreeText(m[1]) }},
	{regexp.MustCompile(`\bmk\s+([a-z0-9 .-]+)`), func(p *ParsedQuery, m []string) { p.CourseName = cutFreeText(m[1]) }},
}

var lecturerRules = []extractRule{
	{regexp.MustCompile(`\bdosen\s+([a-z .-]+)`), setLecturer},
	{regexp.MustCompile(`\bdr\.?\s+([a-z .-]+)`), setLecturer},
	{regexp.MustCompile(`\bibu\s+([a-z .-]+)`), setLecturer},
	{regexp.MustCompile(`\bbu\s+([a-z .-]+)`), setLecturer},
	{regexp.MustCompile(`\bbapak\s+([a-z .-]+)`), setLecturer},
	{regexp.MustCompile(`\bpak\s+([a-z .-]+)`), setLecturer},
}

var studentIDRules = []extractRule{
	{regexp.MustCompile(`\bnim\s*:?\s*(?:nim)?(\d+)\b`), func(p *ParsedQuery, m []string) { p.StudentID = "NIM" + m[1] }},
}

var studentNameRules = []extractRule{
	{regexp.MustCompile(`\bmahasiswa\s+([a-z .-]+)`), func(p *ParsedQuery, m []string) { p.StudentName = cutFreeText(m[1]) }},
}

var intentRules = []intentRule{
	{IntentCurrent, func(lower string, _ *ParsedQuery) bool { return currentPattern.MatchString(lower) }},
	{IntentNext, func(lower string, _ *ParsedQuery) bool { return nextPattern.MatchString(lower) }},
	{IntentLecturer, func(_ string, p *ParsedQuery) bool { return p.Lecturer != "" }},
	{IntentCourse, func(_ string, p *ParsedQuery) bool { return p.CourseCode != "" || p.CourseName != "" }},
	{IntentStudent, func(_ string, p *ParsedQuery) bool { return p.HasStudent() }},
}

func setGroup(p *ParsedQuery, m []string) { p.Group = strings.ToUpper(m[1]) }

func setLecturer(p *ParsedQuery, m []string) { p.Lecturer = cutFreeText(m[1]) }

// applyFirst 执行第一个命中的规则
func applyFirst(rules []extractRule, text string, p *ParsedQuery) {
	for _, r := range rules {
		if m := r.pattern.FindStringSubmatch(text); m != nil {
			r.apply(p, m)
			return
		}
	}
}

// cutFreeText 在第一个停用词处截断并去掉首尾空白与标点
func cutFreeText(s string) string {
	if loc := stopPattern.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	return strings.Trim(s, " .-")
}

// ParseQuery 从自由文本中抽取意图与过滤条件
func ParseQuery(text string, qc QueryContext) ParsedQuery {
	q := strings.TrimSpace(text)
	lower := strings.ToLower(q)

	var p ParsedQuery
	applyFirst(programRules, lower, &p)
	applyFirst(groupRules, lower, &p)
	applyFirst(lecturerRules, lower, &p)
	applyFirst(studentIDRules, lower, &p)
	applyFirst(studentNameRules, lower, &p)
	applyFirst(courseNameRules, lower, &p)

	// 形如 NIM001 的学号同样满足课程代码格式，需排除
	for _, code := range courseCodePattern.FindAllString(q, -1) {
		if !strings.EqualFold(code, p.StudentID) {
			p.CourseCode = code
			break
		}
	}

	// 调用方上下文优先
	if qc.Program != "" {
		p.Program = qc.Program
	}
	if qc.StudentName != "" {
		p.StudentID = ""
		p.StudentName = strings.TrimSpace(qc.StudentName)
	}

	p.Intent = IntentToday
	for _, r := range intentRules {
		if r.match(lower, &p) {
			p.Intent = r.intent
			break
		}
	}
	return p
}
