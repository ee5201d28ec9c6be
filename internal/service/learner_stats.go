package service

import (
	"codecoach_backend/internal/model"
	"math"
	"sort"
)

// ComputeStats 从完整的练习记录重算主题与模式两套统计。
// 纯函数：相同的 attempts 永远得到相同的结果，空集合得到空 map。
func ComputeStats(attempts []model.Attempt) (map[string]*model.AreaStat, map[string]*model.AreaStat) {
	topics := make(map[string]*model.AreaStat)
	patterns := make(map[string]*model.AreaStat)

	for _, a := range attempts {
		accumulate(topics, a.Topic, a)
		// 没有模式的题目不参与模式统计
		if a.Pattern != "" {
			accumulate(patterns, a.Pattern, a)
		}
	}

	finalize(topics)
	finalize(patterns)
	return topics, patterns
}

func accumulate(stats map[string]*model.AreaStat, key string, a model.Attempt) {
	st, ok := stats[key]
	if !ok {
		st = &model.AreaStat{
			Key:          key,
			ErrorsByType: make(map[model.ErrorType]int),
		}
		stats[key] = st
	}

	st.Attempts++
	if a.Verdict == model.Accepted {
		st.Accepted++
	}
	if a.ErrorType != model.ErrorNone {
		st.ErrorsByType[a.ErrorType]++
	}
}

func finalize(stats map[string]*model.AreaStat) {
	for _, st := range stats {
		if st.Attempts == 0 {
			continue
		}
		st.Mastery = float64(st.Accepted) / float64(st.Attempts)
		st.ErrorFrequency = float64(st.Attempts-st.Accepted) / float64(st.Attempts)
	}
}

// RankWeaknesses 按掌握度升序排出弱点。掌握度相同时错误率高的在前，
// 再按尝试次数降序（数据多的弱点信号更可信），最后按名称字典序保证稳定。
func RankWeaknesses(statMaps ...map[string]*model.AreaStat) []model.Weakness {
	var weaknesses []model.Weakness
	for _, stats := range statMaps {
		for _, st := range stats {
			weaknesses = append(weaknesses, model.Weakness{
				Key:            st.Key,
				Mastery:        st.Mastery,
				ErrorFrequency: st.ErrorFrequency,
				Attempts:       st.Attempts,
			})
		}
	}

	sort.Slice(weaknesses, func(i, j int) bool {
		a, b := weaknesses[i], weaknesses[j]
		if a.Mastery != b.Mastery {
			return a.Mastery < b.Mastery
		}
		if a.ErrorFrequency != b.ErrorFrequency {
			return a.ErrorFrequency > b.ErrorFrequency
		}
		if a.Attempts != b.Attempts {
			return a.Attempts > b.Attempts
		}
		return a.Key < b.Key
	})

	return weaknesses
}

// ErrorPatterns 统计各错误类型出现的次数，未标记错误类型的记录不计入
func ErrorPatterns(attempts []model.Attempt) map[model.ErrorType]int {
	errors := make(map[model.ErrorType]int)
	for _, a := range attempts {
		if a.ErrorType != model.ErrorNone {
			errors[a.ErrorType]++
		}
	}
	return errors
}

// Summarize 计算练习总览。连击数是以最近一次提交为终点的连续 Accepted 次数。
func Summarize(attempts []model.Attempt) model.LearnerSummary {
	summary := model.LearnerSummary{
		TotalAttempts: len(attempts),
	}

	unique := make(map[string]bool)
	for _, a := range attempts {
		unique[a.ProblemID] = true
		if a.Verdict == model.Accepted {
			summary.TotalSolved++
		}
	}
	summary.UniqueProblems = len(unique)

	if summary.TotalAttempts > 0 {
		rate := float64(summary.TotalSolved) / float64(summary.TotalAttempts) * 100
		summary.SuccessRate = math.Round(rate*100) / 100
	}

	ordered := make([]model.Attempt, len(attempts))
	copy(ordered, attempts)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	for _, a := range ordered {
		if a.Verdict != model.Accepted {
			break
		}
		summary.CurrentStreak++
	}

	return summary
}
