package service

import (
	"codecoach_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attempt(problemID, topic, pattern string, verdict model.Verdict, errorType model.ErrorType) model.Attempt {
	return model.Attempt{
		ProblemID:  problemID,
		Topic:      topic,
		Pattern:    pattern,
		Difficulty: model.Medium,
		Verdict:    verdict,
		ErrorType:  errorType,
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	topics, patterns := ComputeStats(nil)
	assert.Empty(t, topics)
	assert.Empty(t, patterns)
}

func TestComputeStatsMasteryAndErrorFrequency(t *testing.T) {
	attempts := []model.Attempt{
		attempt("LC-001", "Arrays", "HashMap", model.Accepted, model.ErrorNone),
		attempt("LC-001", "Arrays", "HashMap", model.WrongAnswer, model.ErrorOffByOne),
		attempt("LC-002", "Arrays", "TwoPointers", model.WrongAnswer, model.ErrorEdgeCase),
		attempt("LC-003", "Graphs", "BFS", model.Accepted, model.ErrorNone),
	}

	topics, patterns := ComputeStats(attempts)

	arrays := topics["Arrays"]
	require.NotNil(t, arrays)
	assert.Equal(t, 3, arrays.Attempts)
	assert.Equal(t, 1, arrays.Accepted)
	assert.InDelta(t, 1.0/3.0, arrays.Mastery, 1e-9)
	assert.InDelta(t, 2.0/3.0, arrays.ErrorFrequency, 1e-9)
	assert.Equal(t, 1, arrays.ErrorsByType[model.ErrorOffByOne])
	assert.Equal(t, 1, arrays.ErrorsByType[model.ErrorEdgeCase])

	graphs := topics["Graphs"]
	require.NotNil(t, graphs)
	assert.Equal(t, 1.0, graphs.Mastery)
	assert.Equal(t, 0.0, graphs.ErrorFrequency)

	hashMap := patterns["HashMap"]
	require.NotNil(t, hashMap)
	assert.Equal(t, 2, hashMap.Attempts)
	assert.Equal(t, 0.5, hashMap.Mastery)
}

func TestComputeStatsSkipsEmptyPattern(t *testing.T) {
	attempts := []model.Attempt{
		attempt("LC-001", "Arrays", "", model.Accepted, model.ErrorNone),
	}

	topics, patterns := ComputeStats(attempts)
	assert.Len(t, topics, 1)
	assert.Empty(t, patterns)
}

func TestRankWeaknessesOrdering(t *testing.T) {
	topics := map[string]*model.AreaStat{
		"Arrays": {Key: "Arrays", Attempts: 4, Accepted: 1, Mastery: 0.25, ErrorFrequency: 0.75},
		"Graphs": {Key: "Graphs", Attempts: 2, Accepted: 2, Mastery: 1.0, ErrorFrequency: 0.0},
	}
	patterns := map[string]*model.AreaStat{
		"DFS": {Key: "DFS", Attempts: 8, Accepted: 2, Mastery: 0.25, ErrorFrequency: 0.75},
		"BFS": {Key: "BFS", Attempts: 8, Accepted: 2, Mastery: 0.25, ErrorFrequency: 0.75},
	}

	weaknesses := RankWeaknesses(topics, patterns)
	require.Len(t, weaknesses, 4)

	// 掌握度相同时尝试次数多的在前，再按名称字典序打破平局
	assert.Equal(t, "BFS", weaknesses[0].Key)
	assert.Equal(t, "DFS", weaknesses[1].Key)
	assert.Equal(t, "Arrays", weaknesses[2].Key)
	assert.Equal(t, "Graphs", weaknesses[3].Key)
}

func TestRankWeaknessesDeterministic(t *testing.T) {
	stats := map[string]*model.AreaStat{
		"A": {Key: "A", Attempts: 1, Mastery: 0.5, ErrorFrequency: 0.5},
		"B": {Key: "B", Attempts: 1, Mastery: 0.5, ErrorFrequency: 0.5},
		"C": {Key: "C", Attempts: 1, Mastery: 0.5, ErrorFrequency: 0.5},
	}

	first := RankWeaknesses(stats)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, RankWeaknesses(stats))
	}
}

func TestErrorPatterns(t *testing.T) {
	attempts := []model.Attempt{
		attempt("LC-001", "Arrays", "", model.WrongAnswer, model.ErrorOffByOne),
		attempt("LC-002", "Arrays", "", model.WrongAnswer, model.ErrorOffByOne),
		attempt("LC-003", "Arrays", "", model.TimeLimitExceeded, model.ErrorTimeout),
		attempt("LC-004", "Arrays", "", model.Accepted, model.ErrorNone),
	}

	errors := ErrorPatterns(attempts)
	assert.Equal(t, 2, errors[model.ErrorOffByOne])
	assert.Equal(t, 1, errors[model.ErrorTimeout])
	assert.NotContains(t, errors, model.ErrorNone)
}

func TestSummarizeStreakAndRate(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mk := func(offset int, verdict model.Verdict) model.Attempt {
		a := attempt("LC-001", "Arrays", "", verdict, model.ErrorNone)
		a.CreatedAt = base.Add(time.Duration(offset) * time.Hour)
		return a
	}

	attempts := []model.Attempt{
		mk(0, model.WrongAnswer),
		mk(1, model.Accepted),
		mk(2, model.Accepted),
		mk(3, model.Accepted),
	}

	summary := Summarize(attempts)
	assert.Equal(t, 4, summary.TotalAttempts)
	assert.Equal(t, 3, summary.TotalSolved)
	assert.Equal(t, 1, summary.UniqueProblems)
	assert.Equal(t, 3, summary.CurrentStreak)
	assert.Equal(t, 75.0, summary.SuccessRate)
}

func TestSummarizeStreakBrokenByRecentFailure(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mk := func(offset int, verdict model.Verdict) model.Attempt {
		a := attempt("LC-001", "Arrays", "", verdict, model.ErrorNone)
		a.CreatedAt = base.Add(time.Duration(offset) * time.Hour)
		return a
	}

	attempts := []model.Attempt{
		mk(0, model.Accepted),
		mk(1, model.Accepted),
		mk(2, model.WrongAnswer),
	}

	summary := Summarize(attempts)
	assert.Equal(t, 0, summary.CurrentStreak)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.TotalAttempts)
	assert.Equal(t, 0.0, summary.SuccessRate)
	assert.Equal(t, 0, summary.CurrentStreak)
}
