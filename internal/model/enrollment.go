package model

// SectionProgress 章节完成标记，追加写入、不去重
// swagger:model SectionProgress
type SectionProgress struct {
	BaseModel
	EnrollmentID uint `gorm:"index;not null" json:"enrollmentId"`
	SectionIndex int  `gorm:"not null" json:"sectionIndex"`
}

func (SectionProgress) TableName() string {
	return "section_progress"
}

// Enrollment 用户与课程的报名记录。
// (user_id, course_id) 上的唯一索引让并发报名退化为"已报名"而不是重复记录。
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	UserID   uint `gorm:"uniqueIndex:idx_user_course;not null" json:"userId"`
	CourseID uint `gorm:"uniqueIndex:idx_user_course;not null" json:"courseId"`
	// 报名时课程章节数的快照，仅作展示，不参与报名判定
	SectionCount int               `gorm:"not null" json:"sectionCount"`
	Progress     []SectionProgress `gorm:"constraint:OnDelete:CASCADE" json:"progress"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// IsCompleted 完课是派生状态：完成标记数覆盖全部章节即完课。
// 重复完成同一章节会虚增计数，因此用 >= 而不是 ==。
func (e *Enrollment) IsCompleted(totalSections int) bool {
	return totalSections > 0 && len(e.Progress) >= totalSections
}

// CompletionRate 完成率（百分比，保留两位在调用方处理）
func (e *Enrollment) CompletionRate(totalSections int) float64 {
	if totalSections == 0 {
		return 0
	}
	return float64(len(e.Progress)) / float64(totalSections) * 100
}
