package service

import (
	"context"
	"testing"

	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCourseService(t *testing.T, db *gorm.DB) *CourseService {
	t.Helper()
	return NewCourseService(
		repository.NewCourseRepository(db),
		repository.NewUserRepository(db),
		NewStorageService(testConfig(t)),
		nil,
	)
}

func TestNormalizePrice(t *testing.T) {
	assert.Equal(t, model.PriceFree, NormalizePrice(""))
	assert.Equal(t, model.PriceFree, NormalizePrice("0"))
	assert.Equal(t, model.PriceFree, NormalizePrice("0.00"))
	assert.Equal(t, model.PriceFree, NormalizePrice("  0  "))
	assert.Equal(t, "499", NormalizePrice("499"))
	assert.Equal(t, "19.99", NormalizePrice("19.99"))
	// 非数字字符串原样保留
	assert.Equal(t, "free", NormalizePrice("free"))
}

func TestGetCourseIncrementsViews(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(t, db)
	teacher := createUser(t, db, model.Teacher)
	course := createCourse(t, db, teacher.ID, 2)

	_, err := svc.GetCourse(course.ID)
	require.NoError(t, err)
	got, err := svc.GetCourse(course.ID)
	require.NoError(t, err)
	// 第二次读取时第一次的浏览已入库
	assert.Equal(t, 1, got.Views)

	_, err = svc.GetCourse(9999)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestUpdateCoursePartial(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(t, db)
	teacher := createUser(t, db, model.Teacher)
	course := createCourse(t, db, teacher.ID, 1)

	title := "新标题"
	price := "0"
	updated, err := svc.UpdateCourse(context.Background(), teacher.ID, false, course.ID, &CourseUpdate{
		Title: &title,
		Price: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "新标题", updated.Title)
	// 价格为 0 统一存为 free
	assert.Equal(t, model.PriceFree, updated.Price)
	// 未提交的字段保持原值
	assert.Equal(t, course.Category, updated.Category)
}

func TestUpdateCoursePermissions(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(t, db)
	owner := createUser(t, db, model.Teacher)
	other := createUser(t, db, model.Teacher)
	course := createCourse(t, db, owner.ID, 1)

	title := "改名"
	_, err := svc.UpdateCourse(context.Background(), other.ID, false, course.ID, &CourseUpdate{Title: &title})
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestDeleteCoursePermissions(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(t, db)
	owner := createUser(t, db, model.Teacher)
	other := createUser(t, db, model.Teacher)
	course := createCourse(t, db, owner.ID, 2)

	// 非归属教师删除被拒
	err := svc.DeleteCourse(context.Background(), other.ID, false, course.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	// 归属教师删除成功，之后课程不可见
	require.NoError(t, svc.DeleteCourse(context.Background(), owner.ID, false, course.ID))
	_, err = svc.GetCourse(course.ID)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	err = svc.DeleteCourse(context.Background(), owner.ID, false, course.ID)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestDeleteCourseAsAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(t, db)
	owner := createUser(t, db, model.Teacher)
	course := createCourse(t, db, owner.ID, 1)

	// 管理端删除跳过归属校验
	require.NoError(t, svc.DeleteCourse(context.Background(), 0, true, course.ID))
	_, err := svc.GetCourse(course.ID)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestListCoursesByOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(t, db)
	first := createUser(t, db, model.Teacher)
	second := createUser(t, db, model.Teacher)
	createCourse(t, db, first.ID, 1)
	createCourse(t, db, first.ID, 1)
	createCourse(t, db, second.ID, 1)

	courses, err := svc.ListCoursesByOwner(first.ID)
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}

func TestListCoursesWithoutRedis(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(t, db)
	teacher := createUser(t, db, model.Teacher)
	createCourse(t, db, teacher.ID, 1)

	courses, err := svc.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestCreateCourseRequiresTeacher(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(t, db)
	student := createUser(t, db, model.Student)

	_, err := svc.CreateCourse(context.Background(), student, &CreateCourseInput{
		Educator:    "A",
		Title:       "T",
		Category:    "C",
		Description: "D",
	})
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestCreateCourseValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(t, db)
	teacher := createUser(t, db, model.Teacher)

	// 缺少必填字段
	_, err := svc.CreateCourse(context.Background(), teacher, &CreateCourseInput{Title: "T"})
	assert.Error(t, err)

	// 没有章节
	_, err = svc.CreateCourse(context.Background(), teacher, &CreateCourseInput{
		Educator:    "A",
		Title:       "T",
		Category:    "C",
		Description: "D",
	})
	assert.Error(t, err)
}
