package repo

import (
	"context"
	"errors"
	"time"

	"contact_book/be/biz/model/convert"
	"contact_book/be/biz/model/domain"
	"contact_book/be/biz/model/storage"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByUserID(ctx context.Context, userID string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

type UserRepositoryGorm struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewUserRepositoryGorm(db *gorm.DB, timeout time.Duration) *UserRepositoryGorm {
	return &UserRepositoryGorm{db: db, timeout: timeout}
}

// Create relies on the unique index over username, so of two concurrent
// registrations for one name only the first insert succeeds.
func (r *UserRepositoryGorm) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	m := convert.UserDomainToRecord(u)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return convert.UserRecordToDomain(m), nil
}

func (r *UserRepositoryGorm) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *UserRepositoryGorm) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepositoryGorm) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
