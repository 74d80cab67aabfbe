// 本地开发用演示数据脚本
//
// 建库并写入一个演示教师、演示学员和一门带三个章节的课程，
// 管理员种子账号按 configs/config.yaml 的 admin 段写入。
// 已存在的记录按邮箱跳过，可以重复执行。
//
// 用法: go run scripts/seed_demo.go

package main

import (
	"errors"
	"log"

	"course_market_backend/internal/config"
	"course_market_backend/internal/model"
	"course_market_backend/internal/repository"
	"course_market_backend/pkg/database"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("连接数据库失败: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}
	if err := database.EnsureDefaultAdmin(db, &cfg.Admin); err != nil {
		log.Fatalf("写入管理员种子账号失败: %v", err)
	}

	teacher := ensureUser(db, "demo.teacher@example.com", "演示教师", model.Teacher)
	ensureUser(db, "demo.student@example.com", "演示学员", model.Student)

	courseRepo := repository.NewCourseRepository(db)
	courses, err := courseRepo.FindByOwner(teacher.ID)
	if err != nil {
		log.Fatalf("查询课程失败: %v", err)
	}
	if len(courses) > 0 {
		log.Println("演示课程已存在，跳过")
		return
	}

	course := &model.Course{
		UserID:      teacher.ID,
		Educator:    teacher.Name,
		Title:       "Go 语言入门",
		Category:    "编程",
		Description: "面向初学者的 Go 语言课程，覆盖语法、并发和工程实践。",
		Price:       model.PriceFree,
		Sections: []model.Section{
			{Position: 0, Title: "环境与语法", Description: "安装工具链，认识基本语法", ContentURL: "/uploads/videos/demo-1.mp4", Kind: model.SectionVideo},
			{Position: 1, Title: "并发模型", Description: "goroutine 与 channel", ContentURL: "/uploads/videos/demo-2.mp4", Kind: model.SectionVideo},
			{Position: 2, Title: "工程实践", Description: "模块、测试与部署", ContentURL: "/uploads/videos/demo-3.mp4", Kind: model.SectionVideo},
		},
	}
	if err := courseRepo.Create(course); err != nil {
		log.Fatalf("创建演示课程失败: %v", err)
	}
	log.Printf("演示数据写入完成，课程ID=%d", course.ID)
}

func ensureUser(db *gorm.DB, email, name string, role model.UserRole) *model.User {
	userRepo := repository.NewUserRepository(db)
	if existing, err := userRepo.FindByEmail(email); err == nil {
		return existing
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("查询用户失败: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("生成密码哈希失败: %v", err)
	}
	user := &model.User{Name: name, Email: email, Password: string(hashed), Role: role}
	if err := userRepo.Create(user); err != nil {
		log.Fatalf("创建用户失败: %v", err)
	}
	log.Printf("创建用户 %s (%s)", name, email)
	return user
}
