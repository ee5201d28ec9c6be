package service

import (
	"codecoach_backend/internal/model"
	"codecoach_backend/internal/repository"
	"codecoach_backend/internal/util"
	"codecoach_backend/pkg/logger"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LearnerService 负责练习记录与学习者画像。
// 所有统计都按需从全量 attempts 重算，不维护增量计数器。
type LearnerService struct {
	AttemptRepo  *repository.AttemptRepository
	ProblemRepo  *repository.ProblemRepository
	RevisionServ *RevisionService
}

func NewLearnerService(attemptRepo *repository.AttemptRepository, problemRepo *repository.ProblemRepository, revisionServ *RevisionService) *LearnerService {
	return &LearnerService{
		AttemptRepo:  attemptRepo,
		ProblemRepo:  problemRepo,
		RevisionServ: revisionServ,
	}
}

// RecordAttempt 记录一次练习。verdict/error_type 必须是已知枚举值，
// 主题、模式、难度在写入时从题目冗余，之后的统计只看 attempts 表。
// Accepted 的提交会把题目送进复习队列。
func (s *LearnerService) RecordAttempt(userID uint, problemID string, verdict model.Verdict, errorType model.ErrorType, timeTaken int) (*model.Attempt, error) {
	if !verdict.Valid() {
		return nil, fmt.Errorf("%w: unknown verdict %q", util.ErrInvalidArgument, verdict)
	}
	if !errorType.Valid() {
		return nil, fmt.Errorf("%w: unknown error type %q", util.ErrInvalidArgument, errorType)
	}
	if timeTaken < 0 {
		return nil, fmt.Errorf("%w: time_taken must be >= 0, got %d", util.ErrInvalidArgument, timeTaken)
	}

	problem, err := s.ProblemRepo.FindByProblemID(problemID)
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("%w: problem %s", util.ErrNotFound, problemID)
	}
	if err != nil {
		return nil, err
	}

	attempt := &model.Attempt{
		UserID:     userID,
		ProblemID:  problem.ProblemID,
		Topic:      problem.Topic,
		Pattern:    problem.Pattern,
		Difficulty: problem.Difficulty,
		Verdict:    verdict,
		ErrorType:  errorType,
		TimeTaken:  timeTaken,
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	if verdict == model.Accepted {
		if _, err := s.RevisionServ.Admit(userID, problem.ProblemID, time.Now()); err != nil {
			// 复习队列失败不影响练习记录本身
			logger.Log.Error("failed to admit problem into revision schedule",
				zap.Uint("userId", userID),
				zap.String("problemId", problem.ProblemID),
				zap.Error(err))
		}
	}

	return attempt, nil
}

func (s *LearnerService) RecentAttempts(userID uint, limit int) ([]model.Attempt, error) {
	return s.AttemptRepo.ListRecentByUser(userID, limit)
}

// Stats 重算当前用户的主题/模式统计
func (s *LearnerService) Stats(userID uint) (map[string]*model.AreaStat, map[string]*model.AreaStat, error) {
	attempts, err := s.AttemptRepo.ListByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	topics, patterns := ComputeStats(attempts)
	return topics, patterns, nil
}

// Weaknesses 主题与模式混排后的弱点 Top-N
func (s *LearnerService) Weaknesses(userID uint, limit int) ([]model.Weakness, error) {
	topics, patterns, err := s.Stats(userID)
	if err != nil {
		return nil, err
	}

	weaknesses := RankWeaknesses(topics, patterns)
	if limit > 0 && len(weaknesses) > limit {
		weaknesses = weaknesses[:limit]
	}
	return weaknesses, nil
}

func (s *LearnerService) ErrorPatterns(userID uint) (map[model.ErrorType]int, error) {
	attempts, err := s.AttemptRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return ErrorPatterns(attempts), nil
}
