package model

import "time"

// Settings 平台配置单例：首次读取时懒创建，每个被门控的请求都重新读取
// swagger:model Settings
type Settings struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	MaintenanceMode    bool      `gorm:"default:false" json:"maintenanceMode"`
	AllowRegistrations bool      `gorm:"default:true" json:"allowRegistrations"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (Settings) TableName() string {
	return "settings"
}
