package model

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// difficultyRank Easy < Medium < Hard，用于难度匹配打分
var difficultyRank = map[Difficulty]int{
	Easy:   0,
	Medium: 1,
	Hard:   2,
}

func (d Difficulty) Valid() bool {
	_, ok := difficultyRank[d]
	return ok
}

// Rank returns the position of the difficulty in the Easy < Medium < Hard order.
func (d Difficulty) Rank() int {
	return difficultyRank[d]
}

// Problem 题库中的一道题，只有管理员可以维护
// swagger:model Problem
type Problem struct {
	BaseModel
	ProblemID   string     `gorm:"size:50;uniqueIndex;not null" json:"problemId"` // 外部题目编号，如 LC-001
	Title       string     `gorm:"size:255;not null" json:"title"`
	Topic       string     `gorm:"size:100;index;not null" json:"topic"`
	Pattern     string     `gorm:"size:100;index" json:"pattern"`
	Difficulty  Difficulty `gorm:"type:varchar(20);index;not null" json:"difficulty"`
	Tags        string     `gorm:"size:255" json:"tags"`
	Description string     `gorm:"type:text" json:"description"`
}

func (Problem) TableName() string {
	return "problems"
}
