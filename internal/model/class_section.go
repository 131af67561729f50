package model

// ClassSection 教学班 — 对应 class_sections
// 一个课程可开设多个教学班，每个教学班归属唯一的 (Program, Group)
type ClassSection struct {
	ID         string `gorm:"type:varchar(20);primaryKey"  json:"id"`
	CourseCode string `gorm:"type:varchar(20);not null"    json:"course_code"`
	Lecturer   string `gorm:"type:varchar(100);not null"   json:"lecturer"`
	Room       string `gorm:"type:varchar(50);not null"    json:"room"`
	Program    string `gorm:"type:varchar(100);not null"   json:"program"`
	Group      string `gorm:"column:group_name;type:varchar(5);not null" json:"group"`
	Capacity   int    `gorm:"type:smallint;not null;default:0" json:"capacity"`
}

// TableName 指定表名
func (ClassSection) TableName() string { return "class_sections" }
