package model

// HistoricalRecord 教师历史迟到记录 — 对应 lecturer_lateness_history
// Day 为印尼语星期名称（Senin、Selasa…）
type HistoricalRecord struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"   json:"-"`
	Lecturer    string `gorm:"type:varchar(100);not null" json:"lecturer"`
	Day         string `gorm:"type:varchar(10);not null"  json:"day"`
	LateMinutes int    `gorm:"not null;default:0"         json:"late_minutes"`
}

// TableName 指定表名
func (HistoricalRecord) TableName() string { return "lecturer_lateness_history" }
