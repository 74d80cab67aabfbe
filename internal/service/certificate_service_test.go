package service

import (
	"testing"

	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCertificateRequiresCompletion(t *testing.T) {
	db := newTestDB(t)
	enrollments := newEnrollmentService(db)
	certs := enrollments.Certificates
	student := createUser(t, db, model.Student)
	teacher := createUser(t, db, model.Teacher)
	course := createCourse(t, db, teacher.ID, 2)

	_, err := certs.GetForUserCourse(student.ID, course.ID)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)

	_, err = enrollments.Enroll(student.ID, course.ID, testPayment())
	require.NoError(t, err)

	_, err = certs.GetForUserCourse(student.ID, course.ID)
	assert.ErrorIs(t, err, util.ErrCourseNotCompleted)

	require.NoError(t, enrollments.CompleteSection(student.ID, course.ID, 0))
	require.NoError(t, enrollments.CompleteSection(student.ID, course.ID, 1))

	view, err := certs.GetForUserCourse(student.ID, course.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, view.Serial)
	assert.Equal(t, student.Name, view.StudentName)
	assert.Equal(t, course.Title, view.CourseTitle)
	assert.False(t, view.IssuedAt.IsZero())
}

func TestIssueIdempotent(t *testing.T) {
	db := newTestDB(t)
	enrollments := newEnrollmentService(db)
	student := createUser(t, db, model.Student)
	teacher := createUser(t, db, model.Teacher)
	course := createCourse(t, db, teacher.ID, 1)

	_, err := enrollments.Enroll(student.ID, course.ID, testPayment())
	require.NoError(t, err)
	enrollment, err := repository.NewEnrollmentRepository(db).FindByUserAndCourse(student.ID, course.ID)
	require.NoError(t, err)

	first, err := enrollments.Certificates.Issue(enrollment)
	require.NoError(t, err)
	second, err := enrollments.Certificates.Issue(enrollment)
	require.NoError(t, err)
	// 重复签发返回同一张证书
	assert.Equal(t, first.Serial, second.Serial)

	var count int64
	require.NoError(t, db.Model(&model.Certificate{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestVerifyBySerial(t *testing.T) {
	db := newTestDB(t)
	enrollments := newEnrollmentService(db)
	certs := enrollments.Certificates
	student := createUser(t, db, model.Student)
	teacher := createUser(t, db, model.Teacher)
	course := createCourse(t, db, teacher.ID, 1)

	_, err := enrollments.Enroll(student.ID, course.ID, testPayment())
	require.NoError(t, err)
	require.NoError(t, enrollments.CompleteSection(student.ID, course.ID, 0))

	issued, err := certs.GetForUserCourse(student.ID, course.ID)
	require.NoError(t, err)

	verified, err := certs.VerifyBySerial(issued.Serial)
	require.NoError(t, err)
	assert.Equal(t, issued.Serial, verified.Serial)
	assert.Equal(t, student.Name, verified.StudentName)

	_, err = certs.VerifyBySerial("no-such-serial")
	assert.ErrorIs(t, err, util.ErrCertificateNotFound)
}
