package model

// Course 课程基础信息 — 对应 courses
type Course struct {
	Code    string `gorm:"type:varchar(20);primaryKey" json:"code"`
	Name    string `gorm:"type:varchar(100);not null"  json:"name"`
	Credits int    `gorm:"type:smallint;not null"      json:"credits"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
