package service

import (
	"codecoach_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testScoringCfg = ScoringConfig{TopicBaseline: 25, PatternBaseline: 15}

func stat(key string, attempts, accepted int) *model.AreaStat {
	return &model.AreaStat{
		Key:      key,
		Attempts: attempts,
		Accepted: accepted,
		Mastery:  float64(accepted) / float64(attempts),
	}
}

func TestScoreProblemWeakEverywhere(t *testing.T) {
	p := &model.Problem{ProblemID: "LC-076", Topic: "Strings", Pattern: "SlidingWindow", Difficulty: model.Medium}
	// 主题掌握度 0.1，模式掌握度 0
	topicStats := map[string]*model.AreaStat{"Strings": stat("Strings", 10, 1)}
	patternStats := map[string]*model.AreaStat{"SlidingWindow": stat("SlidingWindow", 5, 0)}

	score, reasons := ScoreProblem(p, topicStats, patternStats, model.Medium, testScoringCfg)

	// 45 + 30 + 20
	assert.Equal(t, 95, score)
	assert.Equal(t, []string{
		"Weak in Strings (mastery: 10%)",
		"Practice SlidingWindow pattern",
		"Matches your target level",
	}, reasons)
}

func TestScoreProblemComponentCaps(t *testing.T) {
	p := &model.Problem{ProblemID: "LC-001", Topic: "Arrays", Pattern: "HashMap", Difficulty: model.Medium}
	topicStats := map[string]*model.AreaStat{"Arrays": stat("Arrays", 4, 0)}
	patternStats := map[string]*model.AreaStat{"HashMap": stat("HashMap", 4, 0)}

	score, _ := ScoreProblem(p, topicStats, patternStats, model.Medium, testScoringCfg)
	assert.Equal(t, 100, score)
	assert.LessOrEqual(t, score, 100)
}

func TestScoreProblemUnexploredBaselines(t *testing.T) {
	p := &model.Problem{ProblemID: "LC-200", Topic: "Graphs", Pattern: "BFS", Difficulty: model.Hard}

	score, reasons := ScoreProblem(p, nil, nil, model.Medium, testScoringCfg)

	// 25 + 15 + 10（相邻难度）
	assert.Equal(t, 50, score)
	assert.Equal(t, []string{"Good next step"}, reasons)
}

func TestScoreProblemMasteredTopicNoReason(t *testing.T) {
	p := &model.Problem{ProblemID: "LC-001", Topic: "Arrays", Pattern: "", Difficulty: model.Easy}
	topicStats := map[string]*model.AreaStat{"Arrays": stat("Arrays", 10, 9)} // mastery 0.9

	score, reasons := ScoreProblem(p, topicStats, nil, model.Hard, testScoringCfg)

	// round(50*0.1)=5，模式为空不得分，难度距离 2 不得分
	assert.Equal(t, 5, score)
	assert.Equal(t, []string{"Good next step"}, reasons)
}

func TestScoreProblemDifficultyDistance(t *testing.T) {
	cases := []struct {
		name     string
		problem  model.Difficulty
		target   model.Difficulty
		expected int
	}{
		{"exact match", model.Medium, model.Medium, 20},
		{"adjacent", model.Easy, model.Medium, 10},
		{"far", model.Easy, model.Hard, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &model.Problem{ProblemID: "LC-001", Topic: "Arrays", Difficulty: tc.problem}
			topicStats := map[string]*model.AreaStat{"Arrays": stat("Arrays", 1, 1)}

			score, _ := ScoreProblem(p, topicStats, nil, tc.target, testScoringCfg)
			// 主题掌握度 1.0 → 0 分，模式为空 → 0 分，剩下的就是难度分
			assert.Equal(t, tc.expected, score)
		})
	}
}

func TestScoreProblemMasteryReasonThreshold(t *testing.T) {
	p := &model.Problem{ProblemID: "LC-001", Topic: "Arrays", Difficulty: model.Easy}

	// 掌握度正好 0.5 不算弱点，不生成解释
	topicStats := map[string]*model.AreaStat{"Arrays": stat("Arrays", 2, 1)}
	_, reasons := ScoreProblem(p, topicStats, nil, model.Hard, testScoringCfg)
	assert.NotContains(t, reasons, "Weak in Arrays (mastery: 50%)")

	topicStats = map[string]*model.AreaStat{"Arrays": stat("Arrays", 10, 4)}
	_, reasons = ScoreProblem(p, topicStats, nil, model.Hard, testScoringCfg)
	assert.Contains(t, reasons, "Weak in Arrays (mastery: 40%)")
}
