package service

import (
	"testing"

	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayment() *PaymentInput {
	return &PaymentInput{
		CardHolder: "张三",
		CardNumber: "4242424242424242",
		CardExpiry: "12/30",
		CardCVV:    "123",
	}
}

func TestEnroll(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	student := createUser(t, db, model.Student)
	teacher := createUser(t, db, model.Teacher)
	course := createCourse(t, db, teacher.ID, 3)

	result, err := svc.Enroll(student.ID, course.ID, testPayment())
	require.NoError(t, err)
	assert.True(t, result.Enrolled)
	assert.Equal(t, course.ID, result.CourseID)
	assert.Equal(t, course.Title, result.CourseTitle)

	// 报名计数加一，支付记录落库（免费课程也不例外）
	refreshed, err := repository.NewCourseRepository(db).FindByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.Enrolled)

	var payments int64
	require.NoError(t, db.Model(&model.CoursePayment{}).Count(&payments).Error)
	assert.EqualValues(t, 1, payments)
}

func TestEnrollTwice(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	student := createUser(t, db, model.Student)
	teacher := createUser(t, db, model.Teacher)
	course := createCourse(t, db, teacher.ID, 2)

	first, err := svc.Enroll(student.ID, course.ID, testPayment())
	require.NoError(t, err)
	require.True(t, first.Enrolled)

	// 重复报名不报错，enrolled=false，计数不再增长
	second, err := svc.Enroll(student.ID, course.ID, testPayment())
	require.NoError(t, err)
	assert.False(t, second.Enrolled)

	refreshed, err := repository.NewCourseRepository(db).FindByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.Enrolled)
}

func TestEnrollCourseNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	student := createUser(t, db, model.Student)

	_, err := svc.Enroll(student.ID, 9999, testPayment())
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestCompleteSectionRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	student := createUser(t, db, model.Student)
	teacher := createUser(t, db, model.Teacher)
	course := createCourse(t, db, teacher.ID, 2)

	err := svc.CompleteSection(student.ID, course.ID, 0)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)
}

func TestCompleteSectionCourseDeleted(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	student := createUser(t, db, model.Student)
	teacher := createUser(t, db, model.Teacher)
	course := createCourse(t, db, teacher.ID, 2)

	_, err := svc.Enroll(student.ID, course.ID, testPayment())
	require.NoError(t, err)

	// 课程在报名后被删除，继续提交进度返回课程不存在而不是内部错误
	require.NoError(t, repository.NewCourseRepository(db).Delete(course.ID))

	err = svc.CompleteSection(student.ID, course.ID, 0)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestCompleteAllSections(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	student := createUser(t, db, model.Student)
	teacher := createUser(t, db, model.Teacher)
	course := createCourse(t, db, teacher.ID, 3)

	_, err := svc.Enroll(student.ID, course.ID, testPayment())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.CompleteSection(student.ID, course.ID, i))
	}

	enrollment, err := repository.NewEnrollmentRepository(db).FindByUserAndCourse(student.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, enrollment.IsCompleted(3))
	assert.InDelta(t, 100.0, enrollment.CompletionRate(3), 0.001)

	// 首次完课：完课计数加一并签发证书
	refreshed, err := repository.NewCourseRepository(db).FindByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.Completions)

	cert, err := repository.NewCertificateRepository(db).FindByEnrollment(enrollment.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, cert.Serial)
}

func TestCompleteSameSectionTwice(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	student := createUser(t, db, model.Student)
	teacher := createUser(t, db, model.Teacher)
	course := createCourse(t, db, teacher.ID, 3)

	_, err := svc.Enroll(student.ID, course.ID, testPayment())
	require.NoError(t, err)

	// 完成标记按提交追加，同一章节提交两次就是两条记录
	require.NoError(t, svc.CompleteSection(student.ID, course.ID, 0))
	require.NoError(t, svc.CompleteSection(student.ID, course.ID, 0))

	enrollment, err := repository.NewEnrollmentRepository(db).FindByUserAndCourse(student.ID, course.ID)
	require.NoError(t, err)
	assert.Len(t, enrollment.Progress, 2)
	assert.False(t, enrollment.IsCompleted(3))
}

func TestCompletionCountedOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	student := createUser(t, db, model.Student)
	teacher := createUser(t, db, model.Teacher)
	course := createCourse(t, db, teacher.ID, 2)

	_, err := svc.Enroll(student.ID, course.ID, testPayment())
	require.NoError(t, err)

	require.NoError(t, svc.CompleteSection(student.ID, course.ID, 0))
	require.NoError(t, svc.CompleteSection(student.ID, course.ID, 1))
	// 完课之后继续提交不再增长完课计数
	require.NoError(t, svc.CompleteSection(student.ID, course.ID, 1))

	refreshed, err := repository.NewCourseRepository(db).FindByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.Completions)
}

func TestFetchContent(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	student := createUser(t, db, model.Student)
	teacher := createUser(t, db, model.Teacher)
	course := createCourse(t, db, teacher.ID, 2)

	_, err := svc.FetchContent(student.ID, course.ID)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)

	_, err = svc.Enroll(student.ID, course.ID, testPayment())
	require.NoError(t, err)
	require.NoError(t, svc.CompleteSection(student.ID, course.ID, 0))

	content, err := svc.FetchContent(student.ID, course.ID)
	require.NoError(t, err)
	assert.Len(t, content.Sections, 2)
	assert.Len(t, content.Progress, 1)
	require.NotNil(t, content.Enrollment)
	assert.Equal(t, student.ID, content.Enrollment.UserID)

	_, err = svc.FetchContent(student.ID, 9999)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestListEnrolledCourses(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	student := createUser(t, db, model.Student)
	teacher := createUser(t, db, model.Teacher)
	first := createCourse(t, db, teacher.ID, 1)
	second := createCourse(t, db, teacher.ID, 1)
	createCourse(t, db, teacher.ID, 1)

	_, err := svc.Enroll(student.ID, first.ID, testPayment())
	require.NoError(t, err)
	_, err = svc.Enroll(student.ID, second.ID, testPayment())
	require.NoError(t, err)

	courses, err := svc.ListEnrolledCourses(student.ID)
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}
