package model

import "time"

// RevisionEntry 某用户对某道题的间隔复习状态。
// IntervalIndex 指向间隔表的下标，只会前进或被失败重置，不会越过表尾。
// swagger:model RevisionEntry
type RevisionEntry struct {
	BaseModel
	UserID          uint      `gorm:"uniqueIndex:idx_revision_user_problem;not null" json:"userId"`
	ProblemID       string    `gorm:"size:50;uniqueIndex:idx_revision_user_problem;not null" json:"problemId"`
	IntervalIndex   int       `gorm:"default:0" json:"intervalIndex"`
	NextDueAt       time.Time `gorm:"index;not null" json:"nextDueAt"`
	LastCompletedAt time.Time `json:"lastCompletedAt"`

	ProblemTitle string `gorm:"-" json:"problemTitle,omitempty"`
	ProblemTopic string `gorm:"-" json:"problemTopic,omitempty"`
}

func (RevisionEntry) TableName() string {
	return "revision_entries"
}
