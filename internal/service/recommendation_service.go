package service

import (
	"codecoach_backend/internal/config"
	"codecoach_backend/internal/model"
	"codecoach_backend/internal/repository"
	"codecoach_backend/internal/util"
	"codecoach_backend/pkg/logger"
	"codecoach_backend/pkg/monitoring"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// generateLockTTL 每用户 generate 锁的过期时间，防止崩溃后锁残留
const generateLockTTL = 10 * time.Second

type RecommendationService struct {
	RecRepo      *repository.RecommendationRepository
	ProblemRepo  *repository.ProblemRepository
	AttemptRepo  *repository.AttemptRepository
	UserRepo     *repository.UserRepository
	RevisionServ *RevisionService
	Redis        *redis.Client
	Cfg          *config.Config
}

func NewRecommendationService(
	recRepo *repository.RecommendationRepository,
	problemRepo *repository.ProblemRepository,
	attemptRepo *repository.AttemptRepository,
	userRepo *repository.UserRepository,
	revisionServ *RevisionService,
	rdb *redis.Client,
	cfg *config.Config,
) *RecommendationService {
	return &RecommendationService{
		RecRepo:      recRepo,
		ProblemRepo:  problemRepo,
		AttemptRepo:  attemptRepo,
		UserRepo:     userRepo,
		RevisionServ: revisionServ,
		Redis:        rdb,
		Cfg:          cfg,
	}
}

// Generate 重新生成用户的 Top-K 推荐。
// 同一用户的并发调用由 Redis 锁串行化，旧的 Pending 批次和新批次的写入
// 在同一个事务里完成，所以任何时刻至多只有一个活跃批次。
func (s *RecommendationService) Generate(userID uint, k int) ([]model.Recommendation, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: top_k must be > 0, got %d", util.ErrInvalidArgument, k)
	}

	unlock, err := s.lockUser(userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	attempts, err := s.AttemptRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	topicStats, patternStats := ComputeStats(attempts)

	cooldownSince := time.Now().AddDate(0, 0, -s.Cfg.Recommendation.CooldownDays)
	scoringCfg := ScoringConfig{
		TopicBaseline:   s.Cfg.Recommendation.TopicBaseline,
		PatternBaseline: s.Cfg.Recommendation.PatternBaseline,
	}

	batchID := uuid.New().String()
	now := time.Now()

	// 先废弃旧批次再选候选，被取代的 Pending 题目可以重新参与评分
	batch, err := s.RecRepo.RegeneratePendingBatch(userID, func(tx *gorm.DB) ([]model.Recommendation, error) {
		candidates, err := s.ProblemRepo.ListCandidates(tx, userID, cooldownSince)
		if err != nil {
			return nil, err
		}

		batch := make([]model.Recommendation, 0, len(candidates))
		for i := range candidates {
			p := &candidates[i]
			score, reasons := ScoreProblem(p, topicStats, patternStats, user.TargetLevel, scoringCfg)
			batch = append(batch, model.Recommendation{
				UserID:      userID,
				ProblemID:   p.ProblemID,
				BatchID:     batchID,
				Score:       score,
				Reasons:     reasons,
				Status:      model.RecPending,
				GeneratedAt: now,
			})
		}

		sort.Slice(batch, func(i, j int) bool {
			if batch[i].Score != batch[j].Score {
				return batch[i].Score > batch[j].Score
			}
			return batch[i].ProblemID < batch[j].ProblemID
		})
		if len(batch) > k {
			batch = batch[:k]
		}
		return batch, nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.RecommendationBatches.Inc()
	logger.Log.Info("recommendation batch generated",
		zap.Uint("userId", userID),
		zap.String("batchId", batchID),
		zap.Int("count", len(batch)))

	if err := s.attachProblemMeta(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// List 查询既有推荐，默认只看 Pending
func (s *RecommendationService) List(userID uint, status model.RecommendationStatus, limit int) ([]model.Recommendation, error) {
	switch status {
	case model.RecPending, model.RecCompleted, model.RecNotSolved:
	default:
		return nil, fmt.Errorf("%w: unknown recommendation status %q", util.ErrInvalidArgument, status)
	}

	recs, err := s.RecRepo.ListByUserAndStatus(userID, status, limit)
	if err != nil {
		return nil, err
	}
	if err := s.attachProblemMeta(recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// Complete 推荐的完成转移，每条推荐只允许发生一次。
// solved=true 时把题目送进复习队列。
func (s *RecommendationService) Complete(userID uint, recID uint, solved bool) (*model.Recommendation, error) {
	rec, err := s.RecRepo.FindByID(recID)
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("%w: recommendation %d", util.ErrNotFound, recID)
	}
	if err != nil {
		return nil, err
	}
	if rec.UserID != userID {
		// 不属于当前用户的推荐按不存在处理
		return nil, fmt.Errorf("%w: recommendation %d", util.ErrNotFound, recID)
	}
	if rec.Resolved() {
		return nil, fmt.Errorf("%w: recommendation %d already %s", util.ErrInvalidState, recID, rec.Status)
	}

	now := time.Now()
	if solved {
		rec.Status = model.RecCompleted
	} else {
		rec.Status = model.RecNotSolved
	}
	rec.ResolvedAt = &now

	if err := s.RecRepo.Update(rec); err != nil {
		return nil, err
	}

	if solved {
		if _, err := s.RevisionServ.Admit(userID, rec.ProblemID, now); err != nil {
			logger.Log.Error("failed to admit completed recommendation into revision schedule",
				zap.Uint("userId", userID),
				zap.String("problemId", rec.ProblemID),
				zap.Error(err))
		}
	}

	return rec, nil
}

// lockUser SET NX 实现的每用户互斥。未配置 Redis 时（单测环境）退化为无锁。
func (s *RecommendationService) lockUser(userID uint) (func(), error) {
	if s.Redis == nil {
		return func() {}, nil
	}

	ctx := context.Background()
	key := fmt.Sprintf("codecoach:recommend:lock:%d", userID)

	ok, err := s.Redis.SetNX(ctx, key, 1, generateLockTTL).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: recommendation generation already in progress", util.ErrInvalidState)
	}

	return func() {
		s.Redis.Del(ctx, key)
	}, nil
}

func (s *RecommendationService) attachProblemMeta(recs []model.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}

	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ProblemID)
	}

	problems, err := s.ProblemRepo.FindByProblemIDs(ids)
	if err != nil {
		return err
	}
	for i := range recs {
		if p, ok := problems[recs[i].ProblemID]; ok {
			recs[i].ProblemTitle = p.Title
			recs[i].ProblemTopic = p.Topic
			recs[i].ProblemDifficulty = p.Difficulty
		}
	}
	return nil
}
