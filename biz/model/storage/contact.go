package storage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRecord rows are ordered by the auto-increment ID, which is the
// insertion order of the owner's list.
type ContactRecord struct {
	GormModel
	ContactId       string    `gorm:"size:64;not null;uniqueIndex"`
	UserId          string    `gorm:"size:64;not null;index"` // 所属用户
	Name            string    `gorm:"size:128;not null"`
	Phone           string    `gorm:"size:64;not null"`
	Email           string    `gorm:"size:256;not null"`
	Note            string    `gorm:"size:1024"`
	LastContactedOn time.Time `gorm:"not null"`
	MeansOfContact  string    `gorm:"size:16;not null"`
}

func (ContactRecord) TableName() string {
	return "contacts"
}

func (c *ContactRecord) BeforeCreate(_ *gorm.DB) error {
	if c.ContactId == "" {
		c.ContactId = uuid.NewString()
	}
	return nil
}
