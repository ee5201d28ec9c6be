package service

import (
	"codecoach_backend/internal/model"
	"codecoach_backend/pkg/logger"
	"os"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// newTestDB 每个用例独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Problem{},
		&model.Attempt{},
		&model.Recommendation{},
		&model.RevisionEntry{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
