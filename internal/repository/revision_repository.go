package repository

import (
	"codecoach_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type RevisionRepository struct {
	DB *gorm.DB
}

func NewRevisionRepository(db *gorm.DB) *RevisionRepository {
	return &RevisionRepository{DB: db}
}

func (r *RevisionRepository) Find(userID uint, problemID string) (*model.RevisionEntry, error) {
	var entry model.RevisionEntry
	err := r.DB.Where("user_id = ? AND problem_id = ?", userID, problemID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *RevisionRepository) Create(entry *model.RevisionEntry) error {
	return r.DB.Create(entry).Error
}

func (r *RevisionRepository) Update(entry *model.RevisionEntry) error {
	return r.DB.Save(entry).Error
}

// ListDue 到期条目，最逾期的在前，到期时间相同时按题号排序
func (r *RevisionRepository) ListDue(userID uint, asOf time.Time, limit int) ([]model.RevisionEntry, error) {
	var entries []model.RevisionEntry
	err := r.DB.Where("user_id = ? AND next_due_at <= ?", userID, asOf).
		Order("next_due_at asc, problem_id asc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *RevisionRepository) Stats(userID uint, asOf time.Time) (*model.RevisionStats, error) {
	stats := &model.RevisionStats{}
	base := r.DB.Model(&model.RevisionEntry{}).Where("user_id = ?", userID)

	if err := base.Session(&gorm.Session{}).Where("next_due_at <= ?", asOf).Count(&stats.Due).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("next_due_at > ?", asOf).Count(&stats.Upcoming).Error; err != nil {
		return nil, err
	}
	// interval_index > 0 说明至少完成过一次复习
	if err := base.Session(&gorm.Session{}).Where("interval_index > 0").Count(&stats.Completed).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
