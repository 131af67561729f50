package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/model"
	pkgerrors "github.com/viann980/Jadwal-Integrasi-ai/pkg/errors"
)

func TestValidate_SeedData(t *testing.T) {
	if err := Validate(context.Background(), NewStaticRepository()); err != nil {
		t.Fatalf("内置数据应通过校验: %v", err)
	}
}

func TestValidate_Broken(t *testing.T) {
	tests := []struct {
		name     string
		sections []model.ClassSection
		slots    []model.TimeSlot
	}{
		{
			name:     "教学班引用未知课程",
			sections: []model.ClassSection{{ID: "X1", CourseCode: "ZZ999"}},
		},
		{
			name:     "时间段引用未知教学班",
			sections: []model.ClassSection{{ID: "X1", CourseCode: "IF101"}},
			slots:    []model.TimeSlot{{ClassID: "X9", Day: 1, Start: "08:00", End: "09:00"}},
		},
		{
			name:     "星期越界",
			sections: []model.ClassSection{{ID: "X1", CourseCode: "IF101"}},
			slots:    []model.TimeSlot{{ClassID: "X1", Day: 7, Start: "08:00", End: "09:00"}},
		},
		{
			name:     "开始不早于结束",
			sections: []model.ClassSection{{ID: "X1", CourseCode: "IF101"}},
			slots:    []model.TimeSlot{{ClassID: "X1", Day: 1, Start: "10:00", End: "10:00"}},
		},
		{
			name:     "时间格式非法",
			sections: []model.ClassSection{{ID: "X1", CourseCode: "IF101"}},
			slots:    []model.TimeSlot{{ClassID: "X1", Day: 1, Start: "8am", End: "10:00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewStaticRepository()
			repo.Section = NewStaticSectionRepo(tt.sections)
			repo.TimeSlot = NewStaticTimeSlotRepo(tt.slots)

			err := Validate(context.Background(), repo)
			if !errors.Is(err, pkgerrors.ErrCatalogInvalid) {
				t.Errorf("期望 ErrCatalogInvalid，实际: %v", err)
			}
		})
	}
}

func TestStaticRepos_LookupAndCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewStaticRepository()

	if _, err := repo.Course.GetByCode(ctx, "IF101"); err != nil {
		t.Errorf("IF101 应存在: %v", err)
	}
	if _, err := repo.Course.GetByCode(ctx, "if101"); !errors.Is(err, ErrNotFound) {
		t.Errorf("按键查找大小写敏感，期望 ErrNotFound，实际: %v", err)
	}
	if _, err := repo.Student.GetByID(ctx, "NIM999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际: %v", err)
	}
	if _, err := repo.Realtime.GetByCourseCode(ctx, "IF102"); !errors.Is(err, ErrNotFound) {
		t.Errorf("IF102 无实时状态，期望 ErrNotFound，实际: %v", err)
	}

	// 修改返回的切片不应影响内部数据
	slots, _ := repo.TimeSlot.List(ctx)
	slots[0].Start = "23:00"
	again, _ := repo.TimeSlot.List(ctx)
	if again[0].Start != "08:00" {
		t.Errorf("静态表应不可变，实际首个时间段开始=%s", again[0].Start)
	}
}

func TestStaticHistoryRepo_ListByLecturerDay(t *testing.T) {
	repo := NewStaticRepository()

	records, err := repo.History.ListByLecturerDay(context.Background(), "Dosen Y", "Senin")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("期望 3 条记录，实际=%d", len(records))
	}

	records, _ = repo.History.ListByLecturerDay(context.Background(), "dosen y", "Senin")
	if len(records) != 0 {
		t.Errorf("匹配大小写敏感，期望 0 条，实际=%d", len(records))
	}
}
