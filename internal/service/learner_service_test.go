package service

import (
	"codecoach_backend/internal/model"
	"codecoach_backend/internal/repository"
	"codecoach_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLearnerService(t *testing.T) (*LearnerService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)

	problemRepo := repository.NewProblemRepository(db)
	revisionServ := NewRevisionService(repository.NewRevisionRepository(db), problemRepo)
	svc := NewLearnerService(repository.NewAttemptRepository(db), problemRepo, revisionServ)
	return svc, db
}

func TestRecordAttemptValidation(t *testing.T) {
	svc, _ := newLearnerService(t)

	_, err := svc.RecordAttempt(1, "LC-001", "Maybe", model.ErrorNone, 0)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = svc.RecordAttempt(1, "LC-001", model.Accepted, "whoops", 0)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = svc.RecordAttempt(1, "LC-001", model.Accepted, model.ErrorNone, -1)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestRecordAttemptUnknownProblem(t *testing.T) {
	svc, _ := newLearnerService(t)

	_, err := svc.RecordAttempt(1, "LC-404", model.Accepted, model.ErrorNone, 0)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestRecordAttemptDenormalizesProblemFields(t *testing.T) {
	svc, db := newLearnerService(t)
	require.NoError(t, db.Create(&model.Problem{
		ProblemID: "LC-001", Title: "Two Sum", Topic: "Arrays", Pattern: "HashMap", Difficulty: model.Easy,
	}).Error)

	attempt, err := svc.RecordAttempt(1, "LC-001", model.WrongAnswer, model.ErrorOffByOne, 300)
	require.NoError(t, err)

	assert.Equal(t, "Arrays", attempt.Topic)
	assert.Equal(t, "HashMap", attempt.Pattern)
	assert.Equal(t, model.Easy, attempt.Difficulty)
	assert.Equal(t, 300, attempt.TimeTaken)

	// 失败的提交不进复习队列
	_, err = svc.RevisionServ.RevisionRepo.Find(1, "LC-001")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecordAttemptAcceptedEntersRevisionSchedule(t *testing.T) {
	svc, db := newLearnerService(t)
	require.NoError(t, db.Create(&model.Problem{
		ProblemID: "LC-001", Title: "Two Sum", Topic: "Arrays", Pattern: "HashMap", Difficulty: model.Easy,
	}).Error)

	_, err := svc.RecordAttempt(1, "LC-001", model.Accepted, model.ErrorNone, 120)
	require.NoError(t, err)

	entry, err := svc.RevisionServ.RevisionRepo.Find(1, "LC-001")
	require.NoError(t, err)
	assert.Equal(t, 0, entry.IntervalIndex)
}

func TestWeaknessesMergesTopicsAndPatterns(t *testing.T) {
	svc, db := newLearnerService(t)
	require.NoError(t, db.Create(&model.Problem{
		ProblemID: "LC-001", Title: "Two Sum", Topic: "Arrays", Pattern: "HashMap", Difficulty: model.Easy,
	}).Error)

	_, err := svc.RecordAttempt(1, "LC-001", model.WrongAnswer, model.ErrorOffByOne, 60)
	require.NoError(t, err)

	weaknesses, err := svc.Weaknesses(1, 0)
	require.NoError(t, err)

	// 主题和模式各出一条
	require.Len(t, weaknesses, 2)
	keys := []string{weaknesses[0].Key, weaknesses[1].Key}
	assert.Contains(t, keys, "Arrays")
	assert.Contains(t, keys, "HashMap")

	limited, err := svc.Weaknesses(1, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestErrorPatternsPerUser(t *testing.T) {
	svc, db := newLearnerService(t)
	require.NoError(t, db.Create(&model.Problem{
		ProblemID: "LC-001", Title: "Two Sum", Topic: "Arrays", Pattern: "HashMap", Difficulty: model.Easy,
	}).Error)

	_, err := svc.RecordAttempt(1, "LC-001", model.WrongAnswer, model.ErrorOffByOne, 60)
	require.NoError(t, err)
	_, err = svc.RecordAttempt(2, "LC-001", model.TimeLimitExceeded, model.ErrorTimeout, 60)
	require.NoError(t, err)

	errors, err := svc.ErrorPatterns(1)
	require.NoError(t, err)
	assert.Equal(t, map[model.ErrorType]int{model.ErrorOffByOne: 1}, errors)
}
