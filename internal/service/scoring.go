package service

import (
	"codecoach_backend/internal/model"
	"fmt"
	"math"
)

// 混合打分的三个分量各自封顶，彼此不借用额度
const (
	maxTopicScore      = 50
	maxPatternScore    = 30
	maxDifficultyScore = 20

	// 掌握度低于该阈值时，对应分量才会生成解释文案
	masteryReasonThreshold = 0.5

	adjacentDifficultyScore = 10
)

// ScoringConfig 推荐打分的策略参数，来自配置
type ScoringConfig struct {
	TopicBaseline   int // 未练习过的主题得到的固定中档分，鼓励探索
	PatternBaseline int
}

// ScoreProblem 对单个候选题打分并生成解释。
// 解释与打分使用同一组数字，不做二次推导。
func ScoreProblem(p *model.Problem, topicStats, patternStats map[string]*model.AreaStat, target model.Difficulty, cfg ScoringConfig) (int, []string) {
	var reasons []string

	// 分量一：主题弱点（0-50）
	topicScore := clampComponent(cfg.TopicBaseline, maxTopicScore)
	if st, ok := topicStats[p.Topic]; ok && st.Attempts > 0 {
		topicScore = clampComponent(int(math.Round(maxTopicScore*(1-st.Mastery))), maxTopicScore)
		if st.Mastery < masteryReasonThreshold {
			reasons = append(reasons, fmt.Sprintf("Weak in %s (mastery: %d%%)", p.Topic, int(math.Round(st.Mastery*100))))
		}
	}

	// 分量二：模式弱点（0-30），没有模式的题不得分
	patternScore := 0
	if p.Pattern != "" {
		patternScore = clampComponent(cfg.PatternBaseline, maxPatternScore)
		if st, ok := patternStats[p.Pattern]; ok && st.Attempts > 0 {
			patternScore = clampComponent(int(math.Round(maxPatternScore*(1-st.Mastery))), maxPatternScore)
			if st.Mastery < masteryReasonThreshold {
				reasons = append(reasons, fmt.Sprintf("Practice %s pattern", p.Pattern))
			}
		}
	}

	// 分量三：难度匹配（0-20）
	difficultyScore := 0
	switch distance := abs(p.Difficulty.Rank() - target.Rank()); distance {
	case 0:
		difficultyScore = maxDifficultyScore
		reasons = append(reasons, "Matches your target level")
	case 1:
		difficultyScore = adjacentDifficultyScore
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Good next step")
	}

	return topicScore + patternScore + difficultyScore, reasons
}

func clampComponent(score, max int) int {
	if score < 0 {
		return 0
	}
	if score > max {
		return max
	}
	return score
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
