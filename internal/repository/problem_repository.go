package repository

import (
	"codecoach_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ProblemRepository struct {
	DB *gorm.DB
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{DB: db}
}

func (r *ProblemRepository) Create(problem *model.Problem) error {
	return r.DB.Create(problem).Error
}

func (r *ProblemRepository) FindByProblemID(problemID string) (*model.Problem, error) {
	var problem model.Problem
	err := r.DB.Where("problem_id = ?", problemID).First(&problem).Error
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

func (r *ProblemRepository) List(topic string, difficulty model.Difficulty, limit int) ([]model.Problem, error) {
	query := r.DB.Model(&model.Problem{})
	if topic != "" {
		query = query.Where("topic = ?", topic)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var problems []model.Problem
	err := query.Order("problem_id asc").Limit(limit).Find(&problems).Error
	return problems, err
}

// ListCandidates 推荐候选集：排除用户做过的题、还挂着 Pending 推荐的题，
// 以及冷却期内刚处理完推荐的题。tx 不为 nil 时在该事务里查询，
// 这样 generate 废弃旧批次后马上选候选也能看到一致的状态。
func (r *ProblemRepository) ListCandidates(tx *gorm.DB, userID uint, cooldownSince time.Time) ([]model.Problem, error) {
	if tx == nil {
		tx = r.DB
	}

	attempted := tx.Model(&model.Attempt{}).
		Select("problem_id").
		Where("user_id = ?", userID)

	blocked := tx.Model(&model.Recommendation{}).
		Select("problem_id").
		Where("user_id = ?", userID).
		Where("status = ? OR resolved_at >= ?", model.RecPending, cooldownSince)

	var problems []model.Problem
	err := tx.
		Where("problem_id NOT IN (?)", attempted).
		Where("problem_id NOT IN (?)", blocked).
		Find(&problems).Error
	return problems, err
}

// FindByProblemIDs 批量取题目元数据，用于给推荐/复习列表补充标题等字段
func (r *ProblemRepository) FindByProblemIDs(problemIDs []string) (map[string]model.Problem, error) {
	var problems []model.Problem
	if err := r.DB.Where("problem_id IN ?", problemIDs).Find(&problems).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]model.Problem, len(problems))
	for _, p := range problems {
		byID[p.ProblemID] = p
	}
	return byID, nil
}
