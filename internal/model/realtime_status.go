package model

// RealtimeStatus 课程实时状态 — 对应 realtime_statuses
type RealtimeStatus struct {
	CourseCode      string `gorm:"type:varchar(20);primaryKey" json:"code"`
	Status          string `gorm:"type:varchar(50);not null"   json:"status"`
	LecturerPresent bool   `gorm:"not null;default:false"      json:"lecturer_present"`
}

// TableName 指定表名
func (RealtimeStatus) TableName() string { return "realtime_statuses" }
