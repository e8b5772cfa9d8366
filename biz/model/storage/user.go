package storage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt
}

type UserRecord struct {
	GormModel
	UserId           string `gorm:"size:64;not null;uniqueIndex"` // 用户唯一索引
	Username         string `gorm:"size:64;not null;uniqueIndex"` // 用户唯一登录名
	PasswordHash     string `gorm:"size:128;not null"`            // bcrypt, 含盐
	OrganizationName string `gorm:"size:128;not null"`            // 所属组织
}

func (UserRecord) TableName() string {
	return "users"
}

func (u *UserRecord) BeforeCreate(_ *gorm.DB) error {
	if u.UserId == "" {
		u.UserId = uuid.NewString()
	}
	return nil
}
