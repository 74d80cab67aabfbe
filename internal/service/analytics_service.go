package service

import (
	"errors"
	"time"

	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/internal/util"

	"gorm.io/gorm"
)

// PlatformAnalytics 管理端平台总览
type PlatformAnalytics struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalCourses     int64 `json:"totalCourses"`
	TotalEnrollments int64 `json:"totalEnrollments"`
	ActiveUsers      int64 `json:"activeUsers"`
}

// StudentAnalytics 教师课程分析里的单个学员行
type StudentAnalytics struct {
	UserID            uint      `json:"userId"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	CompletedSections int       `json:"completedSections"`
	TotalSections     int       `json:"totalSections"`
	CompletionRate    float64   `json:"completionRate"`
	IsCompleted       bool      `json:"isCompleted"`
	EnrolledDate      time.Time `json:"enrolledDate"`
	LastActivity      time.Time `json:"lastActivity"`
}

// SectionAnalytics 每章节的到达人数与到达率
type SectionAnalytics struct {
	SectionIndex      int     `json:"sectionIndex"`
	Title             string  `json:"title"`
	StudentsCompleted int     `json:"studentsCompleted"`
	CompletionRate    float64 `json:"completionRate"`
}

// CourseAnalytics 教师视角的单课程分析
type CourseAnalytics struct {
	CourseID              uint               `json:"courseId"`
	CourseTitle           string             `json:"courseTitle"`
	TotalStudents         int                `json:"totalStudents"`
	CompletedStudents     int                `json:"completedStudents"`
	AverageCompletionRate float64            `json:"averageCompletionRate"`
	RecentActivity        int                `json:"recentActivity"`
	Students              []StudentAnalytics `json:"students"`
	Sections              []SectionAnalytics `json:"sections"`
}

type AnalyticsService struct {
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewAnalyticsService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
) *AnalyticsService {
	return &AnalyticsService{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

// Platform 平台总览，活跃用户取报名表去重后的用户数
func (s *AnalyticsService) Platform() (*PlatformAnalytics, error) {
	users, err := s.UserRepo.Count()
	if err != nil {
		return nil, err
	}
	courses, err := s.CourseRepo.Count()
	if err != nil {
		return nil, err
	}
	enrollments, err := s.EnrollmentRepo.Count()
	if err != nil {
		return nil, err
	}
	active, err := s.EnrollmentRepo.CountDistinctUsers()
	if err != nil {
		return nil, err
	}
	return &PlatformAnalytics{
		TotalUsers:       users,
		TotalCourses:     courses,
		TotalEnrollments: enrollments,
		ActiveUsers:      active,
	}, nil
}

// ForCourse 单课程分析，仅课程归属教师（或管理员）可见
func (s *AnalyticsService) ForCourse(courseID, requesterID uint) (*CourseAnalytics, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	if course.UserID != requesterID {
		requester, err := s.UserRepo.FindByID(requesterID)
		if err != nil || requester.Role != model.Admin {
			return nil, util.ErrPermissionDenied
		}
	}

	enrollments, err := s.EnrollmentRepo.FindByCourse(courseID)
	if err != nil {
		return nil, err
	}

	total := len(course.Sections)
	result := &CourseAnalytics{
		CourseID:    course.ID,
		CourseTitle: course.Title,
		Students:    make([]StudentAnalytics, 0, len(enrollments)),
		Sections:    make([]SectionAnalytics, total),
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	var rateSum float64
	for _, e := range enrollments {
		row := StudentAnalytics{
			UserID:            e.UserID,
			CompletedSections: len(e.Progress),
			TotalSections:     total,
			CompletionRate:    util.Round2(e.CompletionRate(total)),
			IsCompleted:       e.IsCompleted(total),
			EnrolledDate:      e.CreatedAt,
			LastActivity:      e.UpdatedAt,
		}
		if user, err := s.UserRepo.FindByID(e.UserID); err == nil {
			row.Name = user.Name
			row.Email = user.Email
		}
		result.Students = append(result.Students, row)

		rateSum += row.CompletionRate
		if row.IsCompleted {
			result.CompletedStudents++
		}
		if e.UpdatedAt.After(weekAgo) {
			result.RecentActivity++
		}
	}

	result.TotalStudents = len(enrollments)
	if len(enrollments) > 0 {
		result.AverageCompletionRate = util.Round2(rateSum / float64(len(enrollments)))
	}

	// 章节到达人数：完成标记数超过该章节下标即视为到达
	for i, section := range course.Sections {
		reached := 0
		for _, e := range enrollments {
			if len(e.Progress) > i {
				reached++
			}
		}
		rate := 0.0
		if len(enrollments) > 0 {
			rate = util.Round2(float64(reached) / float64(len(enrollments)) * 100)
		}
		result.Sections[i] = SectionAnalytics{
			SectionIndex:      i,
			Title:             section.Title,
			StudentsCompleted: reached,
			CompletionRate:    rate,
		}
	}

	return result, nil
}
