package model

// AreaStat 某个主题或模式的统计。每次请求都从完整的 attempts 集合重算，
// 不做增量维护，保证统计永远是当前练习记录的纯函数。
type AreaStat struct {
	Key            string            `json:"key"`
	Attempts       int               `json:"attempts"`
	Accepted       int               `json:"accepted"`
	ErrorsByType   map[ErrorType]int `json:"errorsByType"`
	Mastery        float64           `json:"mastery"`        // accepted/attempts，无记录时为 0
	ErrorFrequency float64           `json:"errorFrequency"` // (attempts-accepted)/attempts
}

// Weakness 弱点排名中的一项
type Weakness struct {
	Key            string  `json:"key"`
	Mastery        float64 `json:"mastery"`
	ErrorFrequency float64 `json:"errorFrequency"`
	Attempts       int     `json:"attempts"`
}

// LearnerSummary 用户练习总览
type LearnerSummary struct {
	TotalAttempts  int     `json:"totalAttempts"`
	TotalSolved    int     `json:"totalSolved"`
	UniqueProblems int     `json:"uniqueProblems"`
	CurrentStreak  int     `json:"currentStreak"` // 以最近一次提交为终点的连续 Accepted 次数
	SuccessRate    float64 `json:"successRate"`   // 百分比
}

// DashboardStats 面板聚合数据
type DashboardStats struct {
	Summary        LearnerSummary `json:"summary"`
	TopWeaknesses  []Weakness     `json:"topWeaknesses"`
	RecentAttempts []Attempt      `json:"recentAttempts"`
}

// RevisionStats 复习队列的计数统计
type RevisionStats struct {
	Due       int64 `json:"due"`
	Upcoming  int64 `json:"upcoming"`
	Completed int64 `json:"completed"` // 至少完成过一次复习的条目数
}
