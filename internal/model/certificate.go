package model

import "time"

// Certificate 完课证书，服务端签发，序列号可公开核验
// swagger:model Certificate
type Certificate struct {
	BaseModel
	UserID       uint      `gorm:"index;not null" json:"userId"`
	CourseID     uint      `gorm:"index;not null" json:"courseId"`
	EnrollmentID uint      `gorm:"uniqueIndex;not null" json:"enrollmentId"`
	Serial       string    `gorm:"size:36;uniqueIndex;not null" json:"serial"`
	IssuedAt     time.Time `json:"issuedAt"`
}

func (Certificate) TableName() string {
	return "certificates"
}
