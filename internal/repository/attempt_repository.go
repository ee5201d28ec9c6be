package repository

import (
	"codecoach_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.Attempt) error {
	return r.DB.Create(attempt).Error
}

// ListByUser 全量练习记录，统计重算的输入
func (r *AttemptRepository) ListByUser(userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) ListRecentByUser(userID uint, limit int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Limit(limit).Find(&attempts).Error
	return attempts, err
}
