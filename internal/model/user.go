package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name        string     `gorm:"size:100;not null" json:"name"`
	Email       string     `gorm:"size:100;unique;not null" json:"email"`
	Password    string     `gorm:"size:100;not null" json:"-"`
	Role        UserRole   `gorm:"type:varchar(20);default:'student'" json:"role"`
	TargetLevel Difficulty `gorm:"type:varchar(20);default:'Medium'" json:"targetLevel"` // 推荐的目标难度
	Disabled    bool       `gorm:"default:false" json:"disabled"`
	LastLogin   time.Time  `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
