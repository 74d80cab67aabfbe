package service

import (
	"errors"
	"time"

	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/internal/util"
	"course_market_backend/pkg/monitoring"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateView 对学员和公开核验接口暴露的证书视图
type CertificateView struct {
	Serial      string    `json:"serial"`
	StudentName string    `json:"studentName"`
	CourseTitle string    `json:"courseTitle"`
	IssuedAt    time.Time `json:"issuedAt"`
}

// CertificateService 服务端签发完课证书，序列号全局唯一
type CertificateService struct {
	CertificateRepo *repository.CertificateRepository
	EnrollmentRepo  *repository.EnrollmentRepository
	CourseRepo      *repository.CourseRepository
	UserRepo        *repository.UserRepository
}

func NewCertificateService(
	certificateRepo *repository.CertificateRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	userRepo *repository.UserRepository,
) *CertificateService {
	return &CertificateService{
		CertificateRepo: certificateRepo,
		EnrollmentRepo:  enrollmentRepo,
		CourseRepo:      courseRepo,
		UserRepo:        userRepo,
	}
}

// Issue 为完课报名签发证书，幂等：重复签发返回既有证书
func (s *CertificateService) Issue(enrollment *model.Enrollment) (*model.Certificate, error) {
	cert := &model.Certificate{
		UserID:       enrollment.UserID,
		CourseID:     enrollment.CourseID,
		EnrollmentID: enrollment.ID,
		Serial:       uuid.NewString(),
		IssuedAt:     time.Now(),
	}
	if err := s.CertificateRepo.CreateIfAbsent(cert); err != nil {
		return nil, err
	}
	// OnConflict DoNothing 不回填主键，重新按报名记录取一次
	existing, err := s.CertificateRepo.FindByEnrollment(enrollment.ID)
	if err != nil {
		return nil, err
	}
	if existing.Serial == cert.Serial {
		monitoring.CertificateCounter.Inc()
	}
	return existing, nil
}

// GetForUserCourse 学员查询自己某门课的证书
func (s *CertificateService) GetForUserCourse(userID, courseID uint) (*CertificateView, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotEnrolled
	}
	if err != nil {
		return nil, err
	}
	if !enrollment.IsCompleted(len(course.Sections)) {
		return nil, util.ErrCourseNotCompleted
	}

	cert, err := s.CertificateRepo.FindByEnrollment(enrollment.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 旧数据补发：完课但尚未持有证书
		cert, err = s.Issue(enrollment)
	}
	if err != nil {
		return nil, err
	}

	return s.buildView(cert, course.Title)
}

// VerifyBySerial 公开核验，无需登录
func (s *CertificateService) VerifyBySerial(serial string) (*CertificateView, error) {
	cert, err := s.CertificateRepo.FindBySerial(serial)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCertificateNotFound
	}
	if err != nil {
		return nil, err
	}

	courseTitle := ""
	if course, err := s.CourseRepo.FindByID(cert.CourseID); err == nil {
		courseTitle = course.Title
	}
	return s.buildView(cert, courseTitle)
}

func (s *CertificateService) buildView(cert *model.Certificate, courseTitle string) (*CertificateView, error) {
	studentName := ""
	if user, err := s.UserRepo.FindByID(cert.UserID); err == nil {
		studentName = user.Name
	}
	return &CertificateView{
		Serial:      cert.Serial,
		StudentName: studentName,
		CourseTitle: courseTitle,
		IssuedAt:    cert.IssuedAt,
	}, nil
}
