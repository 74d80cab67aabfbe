package service

import (
	"errors"

	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/internal/util"
	"course_market_backend/pkg/logger"
	"course_market_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PaymentInput 报名时附带的模拟支付表单
type PaymentInput struct {
	CardHolder string `json:"cardHolder"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCVV    string `json:"cardCvv"`
}

// EnrollResult Enrolled=false 表示重复报名，调用方需检查该标志而不是 HTTP 状态码
type EnrollResult struct {
	Enrolled    bool   `json:"enrolled"`
	Message     string `json:"message"`
	CourseID    uint   `json:"courseId"`
	CourseTitle string `json:"courseTitle"`
}

// CourseContent 已报名学员可见的课程内容与自己的进度
type CourseContent struct {
	Sections   []model.Section         `json:"sections"`
	Progress   []model.SectionProgress `json:"progress"`
	Enrollment *model.Enrollment       `json:"enrollment"`
}

// EnrollmentService 报名/进度状态机：NotEnrolled → Enrolled → Completed，无回退
type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	PaymentRepo    *repository.PaymentRepository
	Certificates   *CertificateService
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	paymentRepo *repository.PaymentRepository,
	certificates *CertificateService,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		PaymentRepo:    paymentRepo,
		Certificates:   certificates,
	}
}

// Enroll 报名判定只看 (user, course)，章节数快照仅作记录。
// 预检查负责友好提示，(user_id, course_id) 唯一索引兜底并发场景。
func (s *EnrollmentService) Enroll(userID, courseID uint, payment *PaymentInput) (*EnrollResult, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID); err == nil {
		return &EnrollResult{
			Enrolled:    false,
			Message:     "You are already enrolled in this course",
			CourseID:    course.ID,
			CourseTitle: course.Title,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 支付记录无条件落库，免费课程也不例外
	if err := s.PaymentRepo.Create(&model.CoursePayment{
		UserID:     userID,
		CourseID:   courseID,
		CardHolder: payment.CardHolder,
		CardNumber: payment.CardNumber,
		CardExpiry: payment.CardExpiry,
		CardCVV:    payment.CardCVV,
		Amount:     course.Price,
	}); err != nil {
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:       userID,
		CourseID:     courseID,
		SectionCount: len(course.Sections),
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &EnrollResult{
				Enrolled:    false,
				Message:     "You are already enrolled in this course",
				CourseID:    course.ID,
				CourseTitle: course.Title,
			}, nil
		}
		return nil, err
	}

	if err := s.CourseRepo.IncrementEnrolled(courseID); err != nil {
		logger.Log.Error("enrolled counter update failed", zap.Uint("course", courseID), zap.Error(err))
	}
	monitoring.EnrollmentCounter.Inc()

	return &EnrollResult{
		Enrolled:    true,
		Message:     "Enrolled successfully",
		CourseID:    course.ID,
		CourseTitle: course.Title,
	}, nil
}

// CompleteSection 追加完成标记，不去重：同一章节重复提交会虚增完成计数，
// 这是对外已经暴露的行为，保持不变
func (s *EnrollmentService) CompleteSection(userID, courseID uint, sectionIndex int) error {
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrNotEnrolled
	}
	if err != nil {
		return err
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 课程在报名后被删除
		return util.ErrCourseNotFound
	}
	if err != nil {
		return err
	}

	wasCompleted := enrollment.IsCompleted(len(course.Sections))

	if err := s.EnrollmentRepo.AppendProgress(enrollment.ID, sectionIndex); err != nil {
		return err
	}

	enrollment.Progress = append(enrollment.Progress, model.SectionProgress{
		EnrollmentID: enrollment.ID,
		SectionIndex: sectionIndex,
	})

	// 首次越过完课线：累加完课计数并签发证书
	if !wasCompleted && enrollment.IsCompleted(len(course.Sections)) {
		if err := s.CourseRepo.IncrementCompletions(courseID); err != nil {
			logger.Log.Error("completions counter update failed", zap.Uint("course", courseID), zap.Error(err))
		}
		if _, err := s.Certificates.Issue(enrollment); err != nil {
			logger.Log.Error("certificate issue failed", zap.Uint("enrollment", enrollment.ID), zap.Error(err))
		}
	}

	return nil
}

// FetchContent 返回章节列表、调用者进度和报名记录（前端证书渲染直接用它）
func (s *EnrollmentService) FetchContent(userID, courseID uint) (*CourseContent, error) {
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

	return &CourseContent{
		Sections:   course.Sections,
		Progress:   enrollment.Progress,
		Enrollment: enrollment,
	}, nil
}

// ListEnrolledCourses 调用者报名过的全部课程
func (s *EnrollmentService) ListEnrolledCourses(userID uint) ([]model.Course, error) {
	enrollments, err := s.EnrollmentRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	courses := make([]model.Course, 0, len(enrollments))
	for _, e := range enrollments {
		course, err := s.CourseRepo.FindByID(e.CourseID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 课程在报名后被删除，跳过
			continue
		}
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, nil
}
