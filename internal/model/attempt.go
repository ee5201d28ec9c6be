package model

// Verdict 判题结果，封闭枚举，未知值归入 VerdictOther
type Verdict string

const (
	Accepted            Verdict = "Accepted"
	WrongAnswer         Verdict = "WrongAnswer"
	TimeLimitExceeded   Verdict = "TimeLimitExceeded"
	RuntimeError        Verdict = "RuntimeError"
	MemoryLimitExceeded Verdict = "MemoryLimitExceeded"
	CompileError        Verdict = "CompileError"
	VerdictOther        Verdict = "Other"
)

var knownVerdicts = map[Verdict]bool{
	Accepted:            true,
	WrongAnswer:         true,
	TimeLimitExceeded:   true,
	RuntimeError:        true,
	MemoryLimitExceeded: true,
	CompileError:        true,
	VerdictOther:        true,
}

func (v Verdict) Valid() bool {
	return knownVerdicts[v]
}

// ErrorType 错误归类。空串表示本次尝试没有记录错误类型
type ErrorType string

const (
	ErrorNone        ErrorType = ""
	ErrorOffByOne    ErrorType = "off-by-one"
	ErrorEdgeCase    ErrorType = "edge-case"
	ErrorTimeout     ErrorType = "timeout"
	ErrorLogic       ErrorType = "logic-error"
	ErrorMemoryLimit ErrorType = "memory-limit"
	ErrorOther       ErrorType = "other"
)

var knownErrorTypes = map[ErrorType]bool{
	ErrorNone:        true,
	ErrorOffByOne:    true,
	ErrorEdgeCase:    true,
	ErrorTimeout:     true,
	ErrorLogic:       true,
	ErrorMemoryLimit: true,
	ErrorOther:       true,
}

func (e ErrorType) Valid() bool {
	return knownErrorTypes[e]
}

// Attempt 一次练习记录。创建后不可变，是学习者画像的唯一输入。
// topic/pattern/difficulty 在记录时从题目冗余过来，保证统计只依赖 attempts 表本身。
// swagger:model Attempt
type Attempt struct {
	BaseModel
	UserID     uint       `gorm:"index;not null" json:"userId"`
	ProblemID  string     `gorm:"size:50;index;not null" json:"problemId"`
	Topic      string     `gorm:"size:100;not null" json:"topic"`
	Pattern    string     `gorm:"size:100" json:"pattern"`
	Difficulty Difficulty `gorm:"type:varchar(20);not null" json:"difficulty"`
	Verdict    Verdict    `gorm:"type:varchar(30);not null" json:"verdict"`
	ErrorType  ErrorType  `gorm:"type:varchar(30)" json:"errorType"`
	TimeTaken  int        `gorm:"default:0" json:"timeTaken"` // 秒
}

func (Attempt) TableName() string {
	return "attempts"
}
