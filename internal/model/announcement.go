package model

// swagger:model Announcement
type Announcement struct {
	BaseModel
	Message   string `gorm:"type:text;not null" json:"message"`
	CreatedBy string `gorm:"size:100;not null" json:"createdBy"`
}

func (Announcement) TableName() string {
	return "announcements"
}
