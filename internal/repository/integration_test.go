//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/repository"
	"github.com/viann980/Jadwal-Integrasi-ai/pkg/database"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=jadwal password=jadwal dbname=jadwal_test sslmode=disable TimeZone=Asia/Jakarta"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	sqlDB, err := testDB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "获取 sql.DB 失败: %v\n", err)
		os.Exit(1)
	}
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "迁移失败: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// ═══════════════════════════════════════════════════════════
// 数据库实现与内置数据一致
// ═══════════════════════════════════════════════════════════

func TestPostgres_MatchesStaticCatalog(t *testing.T) {
	ctx := context.Background()
	db := repository.NewRepository(testDB)
	static := repository.NewStaticRepository()

	if err := repository.Validate(ctx, db); err != nil {
		t.Fatalf("数据库数据应通过校验: %v", err)
	}

	dbSlots, err := db.TimeSlot.List(ctx)
	if err != nil {
		t.Fatalf("读取时间段失败: %v", err)
	}
	staticSlots, _ := static.TimeSlot.List(ctx)
	if len(dbSlots) != len(staticSlots) {
		t.Fatalf("时间段数量不一致: %d vs %d", len(dbSlots), len(staticSlots))
	}
	for i := range dbSlots {
		if dbSlots[i] != staticSlots[i] {
			t.Errorf("第 %d 个时间段不一致: %+v vs %+v", i, dbSlots[i], staticSlots[i])
		}
	}

	dbSections, _ := db.Section.List(ctx)
	staticSections, _ := static.Section.List(ctx)
	if len(dbSections) != len(staticSections) {
		t.Errorf("教学班数量不一致: %d vs %d", len(dbSections), len(staticSections))
	}

	dbStudents, _ := db.Student.List(ctx)
	if len(dbStudents) != 4 {
		t.Errorf("期望 4 名学生，实际 %d", len(dbStudents))
	}
}

func TestPostgres_Lookups(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRepository(testDB)

	course, err := repo.Course.GetByCode(ctx, "IF201")
	if err != nil || course.Name != "Basis Data" {
		t.Errorf("按代码查询课程失败: %+v, %v", course, err)
	}

	if _, err := repo.Student.GetByID(ctx, "NIM999"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际 %v", err)
	}

	rt, err := repo.Realtime.GetByCourseCode(ctx, "IF201")
	if err != nil || rt.Status != "Tunda 15 Menit" || rt.LecturerPresent {
		t.Errorf("实时状态错误: %+v, %v", rt, err)
	}

	records, err := repo.History.ListByLecturerDay(ctx, "Dosen Y", "Senin")
	if err != nil || len(records) != 3 {
		t.Errorf("期望 3 条历史记录，实际 %d, %v", len(records), err)
	}
}
