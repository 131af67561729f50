package model

// Student 学生 — 对应 students
// 学生课表由 (Program, Group) 与教学班匹配得出，不单独存储选课关系
type Student struct {
	ID       string `gorm:"type:varchar(20);primaryKey"                json:"id"`
	Name     string `gorm:"type:varchar(100);not null"                 json:"name"`
	Program  string `gorm:"type:varchar(100);not null"                 json:"program"`
	Group    string `gorm:"column:group_name;type:varchar(5);not null" json:"group"`
	Semester int    `gorm:"type:smallint;not null;default:1"           json:"semester"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }
