package model

// ScheduleEntry 时间段 + 教学班 + 课程 的连接结果，每次查询现场构建，不落库
type ScheduleEntry struct {
	Section ClassSection `json:"section"`
	Course  Course       `json:"course"`
	Slot    TimeSlot     `json:"slot"`
}
