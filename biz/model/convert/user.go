package convert

import (
	"contact_book/be/biz/model/domain"
	"contact_book/be/biz/model/storage"
)

func UserDomainToRecord(u *domain.User) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		GormModel: storage.GormModel{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		UserId:           u.UserID,
		Username:         u.Username,
		PasswordHash:     u.PasswordHash,
		OrganizationName: u.OrganizationName,
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UserID:           m.UserId,
		Username:         m.Username,
		PasswordHash:     m.PasswordHash,
		OrganizationName: m.OrganizationName,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func UserToIdentity(u *domain.User) *domain.Identity {
	if u == nil {
		return nil
	}
	return &domain.Identity{
		UserID:           u.UserID,
		Username:         u.Username,
		OrganizationName: u.OrganizationName,
		CreatedAt:        u.CreatedAt,
	}
}
