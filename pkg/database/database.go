package database

import (
	"codecoach_backend/internal/config"
	"codecoach_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Problem{},
		&model.Attempt{},
		&model.Recommendation{},
		&model.RevisionEntry{},
	); err != nil {
		return err
	}

	log.Println("Database migration completed")
	seedProblems(db)
	return nil
}

// 题库为空时种入几道示例题，方便本地起服务后直接联调
func seedProblems(db *gorm.DB) {
	var count int64
	db.Model(&model.Problem{}).Count(&count)
	if count == 0 {
		samples := []model.Problem{
			{ProblemID: "LC-001", Title: "Two Sum", Topic: "Arrays", Pattern: "HashMap", Difficulty: model.Easy, Tags: "array,hash-table"},
			{ProblemID: "LC-053", Title: "Maximum Subarray", Topic: "DynamicProgramming", Pattern: "Kadane", Difficulty: model.Medium, Tags: "array,dp"},
			{ProblemID: "LC-076", Title: "Minimum Window Substring", Topic: "Strings", Pattern: "SlidingWindow", Difficulty: model.Hard, Tags: "string,sliding-window"},
			{ProblemID: "LC-094", Title: "Binary Tree Inorder Traversal", Topic: "Trees", Pattern: "DFS", Difficulty: model.Easy, Tags: "tree,dfs"},
			{ProblemID: "LC-200", Title: "Number of Islands", Topic: "Graphs", Pattern: "BFS", Difficulty: model.Medium, Tags: "graph,bfs"},
			{ProblemID: "LC-322", Title: "Coin Change", Topic: "DynamicProgramming", Pattern: "Knapsack", Difficulty: model.Medium, Tags: "dp"},
		}
		for _, p := range samples {
			db.Create(&p)
		}
	}
}
