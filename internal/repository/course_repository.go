package repository

import (
	"course_market_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByOwner(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("user_id = ?", userID).Order("created_at DESC").Find(&courses).Error
	return courses, err
}

// UpdateFields 部分更新：只覆盖显式传入的字段
func (r *CourseRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&model.Course{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CourseRepository) Delete(id uint) error {
	res := r.DB.Select("Sections").Delete(&model.Course{BaseModel: model.BaseModel{ID: id}})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CourseRepository) IncrementEnrolled(id uint) error {
	return r.DB.Model(&model.Course{}).
		Where("id = ?", id).
		Update("enrolled", gorm.Expr("enrolled + ?", 1)).
		Error
}

func (r *CourseRepository) IncrementViews(id uint) error {
	return r.DB.Model(&model.Course{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + ?", 1)).
		Error
}

func (r *CourseRepository) IncrementCompletions(id uint) error {
	return r.DB.Model(&model.Course{}).
		Where("id = ?", id).
		Update("completions", gorm.Expr("completions + ?", 1)).
		Error
}

func (r *CourseRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}
