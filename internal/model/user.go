package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	// Admin 仅出现在管理员令牌的角色声明中，普通用户表不存该值
	Admin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:varchar(20);default:'student'" json:"role"`
	LastLogin time.Time `json:"lastLogin"`
	LastSeen  time.Time `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
