package model

import "time"

type RecommendationStatus string

const (
	RecPending   RecommendationStatus = "Pending"
	RecCompleted RecommendationStatus = "Completed"
	RecNotSolved RecommendationStatus = "NotSolved"
)

// Recommendation 一条推荐。生成后只允许发生一次完成转移，
// 新一轮 generate 会整批取代尚未处理的 Pending 批次。
// swagger:model Recommendation
type Recommendation struct {
	BaseModel
	UserID      uint                 `gorm:"index;not null" json:"userId"`
	ProblemID   string               `gorm:"size:50;not null" json:"problemId"`
	BatchID     string               `gorm:"size:36;index;not null" json:"batchId"` // 同一次 generate 的推荐共享一个批次号
	Score       int                  `gorm:"not null" json:"score"`                 // 0-100
	Reasons     []string             `gorm:"serializer:json;type:text" json:"reasons"`
	Status      RecommendationStatus `gorm:"type:varchar(20);index;default:'Pending'" json:"status"`
	GeneratedAt time.Time            `json:"generatedAt"`
	ResolvedAt  *time.Time           `json:"resolvedAt"`

	// Virtual fields filled from the problem catalog for list responses
	ProblemTitle      string     `gorm:"-" json:"problemTitle,omitempty"`
	ProblemTopic      string     `gorm:"-" json:"problemTopic,omitempty"`
	ProblemDifficulty Difficulty `gorm:"-" json:"problemDifficulty,omitempty"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}

// Resolved reports whether the recommendation already went through its
// completion transition.
func (r *Recommendation) Resolved() bool {
	return r.Status != RecPending
}
