package model

// TimeSlot 每周固定上课时间 — 对应 time_slots
type TimeSlot struct {
	ID      uint   `gorm:"primaryKey;autoIncrement"  json:"-"`
	ClassID string `gorm:"type:varchar(20);not null" json:"class_id"`
	Day     int    `gorm:"type:smallint;not null"    json:"day"`                    // 0-6，周日=0
	Start   string `gorm:"column:start_time;type:varchar(5);not null" json:"start"` // "HH:MM"
	End     string `gorm:"column:end_time;type:varchar(5);not null"   json:"end"`
}

// TableName 指定表名
func (TimeSlot) TableName() string { return "time_slots" }
