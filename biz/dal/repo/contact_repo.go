package repo

import (
	"context"
	"errors"
	"time"

	"contact_book/be/biz/model/convert"
	"contact_book/be/biz/model/domain"
	"contact_book/be/biz/model/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContactRepository interface {
	Create(ctx context.Context, userID string, c *domain.Contact) (*domain.Contact, error)
	ListByUserID(ctx context.Context, userID string) ([]*domain.Contact, error)
	// Update returns (nil, nil) when the owner has no such contact.
	Update(ctx context.Context, userID, contactID string, mutate func(c *domain.Contact) error) (*domain.Contact, error)
	// Delete reports whether a contact was removed.
	Delete(ctx context.Context, userID, contactID string) (bool, error)
}

// ContactRepositoryGorm scopes every statement by (user_id, contact_id), so
// mutations on one owner's list never overwrite each other.
type ContactRepositoryGorm struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewContactRepositoryGorm(db *gorm.DB, timeout time.Duration) *ContactRepositoryGorm {
	return &ContactRepositoryGorm{db: db, timeout: timeout}
}

func (r *ContactRepositoryGorm) Create(ctx context.Context, userID string, c *domain.Contact) (*domain.Contact, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	m := convert.ContactDomainToRecord(userID, c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return convert.ContactRecordToDomain(m), nil
}

func (r *ContactRepositoryGorm) ListByUserID(ctx context.Context, userID string) ([]*domain.Contact, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var ms []*storage.ContactRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Contact, 0, len(ms))
	for _, m := range ms {
		out = append(out, convert.ContactRecordToDomain(m))
	}
	return out, nil
}

func (r *ContactRepositoryGorm) Update(ctx context.Context, userID, contactID string, mutate func(c *domain.Contact) error) (*domain.Contact, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var out *domain.Contact
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m storage.ContactRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND contact_id = ?", userID, contactID).
			First(&m).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		c := convert.ContactRecordToDomain(&m)
		if err := mutate(c); err != nil {
			return err
		}

		err = tx.Model(&storage.ContactRecord{}).
			Where("id = ?", m.ID).
			Updates(map[string]any{
				"name":              c.Name,
				"phone":             c.Phone,
				"email":             c.Email,
				"note":              c.Note,
				"last_contacted_on": c.LastContactedOn,
				"means_of_contact":  string(c.MeansOfContact),
			}).Error
		if err != nil {
			return err
		}

		var updated storage.ContactRecord
		if err := tx.Where("id = ?", m.ID).First(&updated).Error; err != nil {
			return err
		}
		out = convert.ContactRecordToDomain(&updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContactRepositoryGorm) Delete(ctx context.Context, userID, contactID string) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND contact_id = ?", userID, contactID).
		Delete(&storage.ContactRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
