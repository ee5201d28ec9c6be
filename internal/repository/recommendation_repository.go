package repository

import (
	"codecoach_backend/internal/model"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

func (r *RecommendationRepository) FindByID(id uint) (*model.Recommendation, error) {
	var rec model.Recommendation
	err := r.DB.First(&rec, id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecommendationRepository) ListByUserAndStatus(userID uint, status model.RecommendationStatus, limit int) ([]model.Recommendation, error) {
	var recs []model.Recommendation
	err := r.DB.Where("user_id = ? AND status = ?", userID, status).
		Order("score desc, problem_id asc").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

// RegeneratePendingBatch 在一个事务里先废弃旧的 Pending 批次，再用 build
// 基于废弃后的状态计算新批次并写入。调用方通过 per-user 锁保证同一用户
// 不会并发执行。
func (r *RecommendationRepository) RegeneratePendingBatch(userID uint, build func(tx *gorm.DB) ([]model.Recommendation, error)) ([]model.Recommendation, error) {
	var batch []model.Recommendation
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND status = ?", userID, model.RecPending).
			Delete(&model.Recommendation{}).Error; err != nil {
			return err
		}

		var err error
		batch, err = build(tx)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			return nil
		}
		return tx.Create(&batch).Error
	})
	return batch, err
}

func (r *RecommendationRepository) Update(rec *model.Recommendation) error {
	return r.DB.Save(rec).Error
}
