package model

// PlatformAdmin 平台管理员，独立于普通用户表，进程启动时按用户名幂等写入
// swagger:model PlatformAdmin
type PlatformAdmin struct {
	BaseModel
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:100;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
}

func (PlatformAdmin) TableName() string {
	return "platform_admins"
}
