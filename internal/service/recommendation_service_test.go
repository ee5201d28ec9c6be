package service

import (
	"codecoach_backend/internal/config"
	"codecoach_backend/internal/model"
	"codecoach_backend/internal/repository"
	"codecoach_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRecommendationService(t *testing.T) (*RecommendationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)

	cfg := &config.Config{
		Recommendation: config.RecommendationConfig{
			TopicBaseline:   25,
			PatternBaseline: 15,
			CooldownDays:    14,
			DefaultTopK:     5,
		},
	}

	problemRepo := repository.NewProblemRepository(db)
	revisionServ := NewRevisionService(repository.NewRevisionRepository(db), problemRepo)
	svc := NewRecommendationService(
		repository.NewRecommendationRepository(db),
		problemRepo,
		repository.NewAttemptRepository(db),
		repository.NewUserRepository(db),
		revisionServ,
		nil, // 单测不起 Redis，退化为无锁
		cfg,
	)
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, target model.Difficulty) *model.User {
	t.Helper()
	user := &model.User{Name: "alice", Email: "alice@example.com", Password: "x", TargetLevel: target}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProblem(t *testing.T, db *gorm.DB, id, topic, pattern string, difficulty model.Difficulty) {
	t.Helper()
	require.NoError(t, db.Create(&model.Problem{
		ProblemID: id, Title: id, Topic: topic, Pattern: pattern, Difficulty: difficulty,
	}).Error)
}

func TestGenerateRejectsInvalidTopK(t *testing.T) {
	svc, db := newRecommendationService(t)
	seedUser(t, db, model.Medium)

	_, err := svc.Generate(1, 0)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = svc.Generate(1, -3)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestGenerateScoresAndOrders(t *testing.T) {
	svc, db := newRecommendationService(t)
	user := seedUser(t, db, model.Medium)

	seedProblem(t, db, "LC-010", "Arrays", "HashMap", model.Medium)
	seedProblem(t, db, "LC-020", "Graphs", "BFS", model.Medium)
	seedProblem(t, db, "LC-030", "Strings", "SlidingWindow", model.Hard)

	// Arrays 很弱，Graphs 已掌握
	require.NoError(t, db.Create(&model.Attempt{
		UserID: user.ID, ProblemID: "LC-001", Topic: "Arrays", Pattern: "HashMap",
		Difficulty: model.Easy, Verdict: model.WrongAnswer, ErrorType: model.ErrorOffByOne,
	}).Error)
	require.NoError(t, db.Create(&model.Attempt{
		UserID: user.ID, ProblemID: "LC-002", Topic: "Graphs", Pattern: "BFS",
		Difficulty: model.Medium, Verdict: model.Accepted,
	}).Error)

	recs, err := svc.Generate(user.ID, 3)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Arrays: 50+30+20=100，Strings(未练习): 25+15+10=50，Graphs: 0+0+20=20
	assert.Equal(t, "LC-010", recs[0].ProblemID)
	assert.Equal(t, 100, recs[0].Score)
	assert.Equal(t, "LC-030", recs[1].ProblemID)
	assert.Equal(t, 50, recs[1].Score)
	assert.Equal(t, "LC-020", recs[2].ProblemID)
	assert.Equal(t, 20, recs[2].Score)

	for _, rec := range recs {
		assert.Equal(t, model.RecPending, rec.Status)
		assert.NotEmpty(t, rec.Reasons)
		assert.Equal(t, recs[0].BatchID, rec.BatchID)
		assert.NotEmpty(t, rec.ProblemTitle)
	}
}

func TestGenerateExcludesAttemptedProblems(t *testing.T) {
	svc, db := newRecommendationService(t)
	user := seedUser(t, db, model.Medium)

	seedProblem(t, db, "LC-010", "Arrays", "HashMap", model.Medium)
	seedProblem(t, db, "LC-020", "Graphs", "BFS", model.Medium)

	require.NoError(t, db.Create(&model.Attempt{
		UserID: user.ID, ProblemID: "LC-010", Topic: "Arrays", Pattern: "HashMap",
		Difficulty: model.Medium, Verdict: model.WrongAnswer,
	}).Error)

	recs, err := svc.Generate(user.ID, 10)
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, "LC-020", recs[0].ProblemID)
}

func TestGenerateReplacesPendingBatch(t *testing.T) {
	svc, db := newRecommendationService(t)
	user := seedUser(t, db, model.Medium)

	seedProblem(t, db, "LC-010", "Arrays", "HashMap", model.Medium)
	seedProblem(t, db, "LC-020", "Graphs", "BFS", model.Medium)

	first, err := svc.Generate(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.Generate(user.ID, 10)
	require.NoError(t, err)

	// 旧的 Pending 批次被整批取代，任何时刻只有一个活跃批次
	var pending []model.Recommendation
	require.NoError(t, db.Where("user_id = ? AND status = ?", user.ID, model.RecPending).Find(&pending).Error)
	require.Len(t, pending, 2)
	for _, rec := range pending {
		assert.Equal(t, second[0].BatchID, rec.BatchID)
		assert.NotEqual(t, first[0].BatchID, rec.BatchID)
	}
}

func TestGenerateCooldownWindow(t *testing.T) {
	svc, db := newRecommendationService(t)
	user := seedUser(t, db, model.Medium)

	seedProblem(t, db, "LC-010", "Arrays", "HashMap", model.Medium)
	seedProblem(t, db, "LC-020", "Graphs", "BFS", model.Medium)

	recent := time.Now().AddDate(0, 0, -2)
	old := time.Now().AddDate(0, 0, -30)

	// LC-010 两天前处理过，还在 14 天冷却期里；LC-020 一个月前处理过
	require.NoError(t, db.Create(&model.Recommendation{
		UserID: user.ID, ProblemID: "LC-010", BatchID: "old-batch-1", Score: 50,
		Status: model.RecCompleted, GeneratedAt: recent, ResolvedAt: &recent,
	}).Error)
	require.NoError(t, db.Create(&model.Recommendation{
		UserID: user.ID, ProblemID: "LC-020", BatchID: "old-batch-2", Score: 50,
		Status: model.RecNotSolved, GeneratedAt: old, ResolvedAt: &old,
	}).Error)

	recs, err := svc.Generate(user.ID, 10)
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, "LC-020", recs[0].ProblemID)
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc, _ := newRecommendationService(t)

	_, err := svc.List(1, "bogus", 10)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestCompleteTransitions(t *testing.T) {
	svc, db := newRecommendationService(t)
	user := seedUser(t, db, model.Medium)
	seedProblem(t, db, "LC-010", "Arrays", "HashMap", model.Medium)

	recs, err := svc.Generate(user.ID, 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec, err := svc.Complete(user.ID, recs[0].ID, true)
	require.NoError(t, err)
	assert.Equal(t, model.RecCompleted, rec.Status)
	require.NotNil(t, rec.ResolvedAt)

	// 解决的推荐自动进入复习队列
	entry, err := svc.RevisionServ.RevisionRepo.Find(user.ID, "LC-010")
	require.NoError(t, err)
	assert.Equal(t, 0, entry.IntervalIndex)

	// 完成转移只允许发生一次
	_, err = svc.Complete(user.ID, recs[0].ID, false)
	assert.ErrorIs(t, err, util.ErrInvalidState)
}

func TestCompleteNotSolvedSkipsRevision(t *testing.T) {
	svc, db := newRecommendationService(t)
	user := seedUser(t, db, model.Medium)
	seedProblem(t, db, "LC-010", "Arrays", "HashMap", model.Medium)

	recs, err := svc.Generate(user.ID, 1)
	require.NoError(t, err)

	rec, err := svc.Complete(user.ID, recs[0].ID, false)
	require.NoError(t, err)
	assert.Equal(t, model.RecNotSolved, rec.Status)

	_, err = svc.RevisionServ.RevisionRepo.Find(user.ID, "LC-010")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompleteUnknownOrForeignRecommendation(t *testing.T) {
	svc, db := newRecommendationService(t)
	user := seedUser(t, db, model.Medium)
	seedProblem(t, db, "LC-010", "Arrays", "HashMap", model.Medium)

	recs, err := svc.Generate(user.ID, 1)
	require.NoError(t, err)

	_, err = svc.Complete(user.ID, 9999, true)
	assert.ErrorIs(t, err, util.ErrNotFound)

	// 别人的推荐按不存在处理
	_, err = svc.Complete(user.ID+1, recs[0].ID, true)
	assert.ErrorIs(t, err, util.ErrNotFound)
}
