package repository

import (
	"course_market_backend/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(payment *model.CoursePayment) error {
	return r.DB.Create(payment).Error
}
