package repository

import (
	"course_market_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

// CreateIfAbsent 同一报名记录只签发一张证书，冲突时静默跳过
func (r *CertificateRepository) CreateIfAbsent(cert *model.Certificate) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "enrollment_id"}},
		DoNothing: true,
	}).Create(cert).Error
}

func (r *CertificateRepository) FindByUserAndCourse(userID, courseID uint) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&cert).Error
	return &cert, err
}

func (r *CertificateRepository) FindBySerial(serial string) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.Where("serial = ?", serial).First(&cert).Error
	return &cert, err
}

func (r *CertificateRepository) FindByEnrollment(enrollmentID uint) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.Where("enrollment_id = ?", enrollmentID).First(&cert).Error
	return &cert, err
}
