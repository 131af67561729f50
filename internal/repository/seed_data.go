package repository

import "github.com/viann980/Jadwal-Integrasi-ai/internal/model"

// ── 内置课表数据 ──
//
// 进程生命周期内只读；Postgres 模式下由 pkg/database/migrations 写入同样的数据。

var seedCourses = []model.Course{
	{Code: "IF101", Name: "Algoritma dan Pemrograman", Credits: 3},
	{Code: "IF102", Name: "Struktur Data", Credits: 3},
	{Code: "IF201", Name: "Basis Data", Credits: 3},
	{Code: "IF202", Name: "Jaringan Komputer", Credits: 3},
	{Code: "SI101", Name: "Pengantar Sistem Informasi", Credits: 2},
}

var seedSections = []model.ClassSection{
	{ID: "S1", CourseCode: "IF101", Lecturer: "Dr. Sinta", Room: "R101", Program: "Informatika", Group: "A", Capacity: 40},
	{ID: "S2", CourseCode: "IF101", Lecturer: "Dr. Sinta", Room: "R102", Program: "Informatika", Group: "B", Capacity: 40},
	{ID: "S3", CourseCode: "IF102", Lecturer: "Pak Bima", Room: "R201", Program: "Informatika", Group: "A", Capacity: 35},
	{ID: "S4", CourseCode: "IF201", Lecturer: "Bu Rani", Room: "R202", Program: "Informatika", Group: "A", Capacity: 40},
	{ID: "S5", CourseCode: "IF202", Lecturer: "Pak Dedi", Room: "R203", Program: "Informatika", Group: "B", Capacity: 30},
	{ID: "S6", CourseCode: "SI101", Lecturer: "Dosen Z", Room: "Ruang A.102", Program: "Sistem Informasi", Group: "A", Capacity: 35},
	{ID: "S7", CourseCode: "IF201", Lecturer: "Dosen Y", Room: "Ruang C.101", Program: "Informatika", Group: "B", Capacity: 40},
}

var seedTimeSlots = []model.TimeSlot{
	// Senin
	{ID: 1, ClassID: "S1", Day: 1, Start: "08:00", End: "09:40"},
	{ID: 2, ClassID: "S3", Day: 1, Start: "10:00", End: "11:40"},
	// Selasa
	{ID: 3, ClassID: "S2", Day: 2, Start: "09:00", End: "10:40"},
	{ID: 4, ClassID: "S4", Day: 2, Start: "11:00", End: "12:40"},
	{ID: 5, ClassID: "S6", Day: 2, Start: "08:00", End: "09:30"},
	// Rabu
	{ID: 6, ClassID: "S5", Day: 3, Start: "13:00", End: "14:40"},
	// Senin 下午，Dosen Y 的历史迟到记录落在此节
	{ID: 7, ClassID: "S7", Day: 1, Start: "13:00", End: "14:30"},
}

var seedStudents = []model.Student{
	{ID: "NIM001", Name: "Adi Nugraha", Program: "Informatika", Group: "A", Semester: 3},
	{ID: "NIM002", Name: "Bela Santosa", Program: "Informatika", Group: "B", Semester: 3},
	{ID: "NIM003", Name: "Budi Hartono", Program: "Sistem Informasi", Group: "A", Semester: 3},
	{ID: "NIM004", Name: "Citra Lestari", Program: "Informatika", Group: "C", Semester: 1},
}

var seedRealtime = []model.RealtimeStatus{
	{CourseCode: "IF101", Status: "Berlangsung", LecturerPresent: true},
	{CourseCode: "IF201", Status: "Tunda 15 Menit", LecturerPresent: false},
	{CourseCode: "SI101", Status: "Berlangsung", LecturerPresent: true},
}

var seedHistory = []model.HistoricalRecord{
	// Dosen X 基本准时
	{ID: 1, Lecturer: "Dosen X", Day: "Senin", LateMinutes: 0},
	{ID: 2, Lecturer: "Dosen X", Day: "Senin", LateMinutes: 0},
	{ID: 3, Lecturer: "Dosen X", Day: "Rabu", LateMinutes: 0},
	// Dosen Y 周一经常迟到
	{ID: 4, Lecturer: "Dosen Y", Day: "Senin", LateMinutes: 10},
	{ID: 5, Lecturer: "Dosen Y", Day: "Senin", LateMinutes: 15},
	{ID: 6, Lecturer: "Dosen Y", Day: "Senin", LateMinutes: 5},
	{ID: 7, Lecturer: "Dosen Y", Day: "Kamis", LateMinutes: 0},
	// Dosen Z 不规律
	{ID: 8, Lecturer: "Dosen Z", Day: "Selasa", LateMinutes: 5},
	{ID: 9, Lecturer: "Dosen Z", Day: "Selasa", LateMinutes: 0},
}
