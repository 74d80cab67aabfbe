package util

import "errors"

var (
	ErrUserNotFound         = errors.New("用户不存在")
	ErrEmailRegistered      = errors.New("该邮箱已被注册")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrCourseNotFound       = errors.New("course not found")
	ErrNotEnrolled          = errors.New("user is not enrolled in the course")
	ErrCourseNotCompleted   = errors.New("course not completed yet")
	ErrCertificateNotFound  = errors.New("certificate not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)
