package model

import "time"

// User 用户模型
type User struct {
	ID        int64      `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	Email     string     `gorm:"size:255;not null;uniqueIndex;comment:邮箱" json:"email"`
	Login     string     `gorm:"size:255;not null;comment:登录名" json:"login"`
	Name      string     `gorm:"size:255;comment:显示名称" json:"name"`
	Birthday  *time.Time `gorm:"type:date;comment:生日" json:"birthday"`
	CreatedAt time.Time  `gorm:"autoCreateTime;comment:注册时间" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
