package repository

import (
	"time"

	"course_market_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) FindByUserAndCourse(userID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.Preload("Progress").
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	return &enrollment, err
}

func (r *EnrollmentRepository) FindByUser(userID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Preload("Progress").Where("user_id = ?", userID).Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) FindByCourse(courseID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Preload("Progress").Where("course_id = ?", courseID).Find(&enrollments).Error
	return enrollments, err
}

// AppendProgress 追加一条完成标记并刷新报名记录的修改时间
// （修改时间用于教师分析里的7天活跃统计）
func (r *EnrollmentRepository) AppendProgress(enrollmentID uint, sectionIndex int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		marker := &model.SectionProgress{
			EnrollmentID: enrollmentID,
			SectionIndex: sectionIndex,
		}
		if err := tx.Create(marker).Error; err != nil {
			return err
		}
		return tx.Model(&model.Enrollment{}).
			Where("id = ?", enrollmentID).
			Update("updated_at", time.Now()).
			Error
	})
}

func (r *EnrollmentRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).Count(&count).Error
	return count, err
}

// CountDistinctUsers 报名记录中去重后的用户数（平台分析的"活跃用户"）
func (r *EnrollmentRepository) CountDistinctUsers() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).Distinct("user_id").Count(&count).Error
	return count, err
}
