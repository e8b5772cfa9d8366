package contact

import (
	"context"

	"contact_book/be/biz/dal/repo"
	"contact_book/be/biz/db/mysql"
	"contact_book/be/biz/model/domain"
	"contact_book/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/jonboulle/clockwork"
)

// Service manages one owner's contact list. Every call is scoped by the owner
// id, a contact belonging to someone else is reported as not found.
type Service struct {
	contacts repo.ContactRepository
	clock    clockwork.Clock
}

func New(contacts repo.ContactRepository, clock clockwork.Clock) *Service {
	return &Service{contacts: contacts, clock: clock}
}

func NewDefault() *Service {
	return New(repo.NewContactRepositoryGorm(mysql.GetDbConn(), mysql.QueryTimeout()), clockwork.NewRealClock())
}

func (s *Service) Create(ctx context.Context, ownerID string, c *domain.Contact) (*domain.Contact, errs.Error) {
	if c.LastContactedOn.IsZero() {
		c.LastContactedOn = s.clock.Now()
	}
	if err := c.Validate(); err != nil {
		return nil, errs.ParamError.SetErr(err)
	}

	created, err := s.contacts.Create(ctx, ownerID, c)
	if err != nil {
		hlog.CtxErrorf(ctx, "create contact err: %v", err)
		return nil, errs.ServerError
	}
	return created, nil
}

func (s *Service) List(ctx context.Context, ownerID string) ([]*domain.Contact, errs.Error) {
	list, err := s.contacts.ListByUserID(ctx, ownerID)
	if err != nil {
		hlog.CtxErrorf(ctx, "list contacts err: %v", err)
		return nil, errs.ServerError
	}
	return list, nil
}

// Update applies only the fields set in patch. The stored contact keeps its id
// and position.
func (s *Service) Update(ctx context.Context, ownerID, contactID string, patch *domain.ContactPatch) (*domain.Contact, errs.Error) {
	var invalid error
	updated, err := s.contacts.Update(ctx, ownerID, contactID, func(c *domain.Contact) error {
		if err := patch.Apply(c); err != nil {
			invalid = err
			return err
		}
		return nil
	})
	if invalid != nil {
		return nil, errs.ParamError.SetErr(invalid)
	}
	if err != nil {
		hlog.CtxErrorf(ctx, "update contact err: %v", err)
		return nil, errs.ServerError
	}
	if updated == nil {
		return nil, errs.ContactNotFound
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, contactID string) errs.Error {
	ok, err := s.contacts.Delete(ctx, ownerID, contactID)
	if err != nil {
		hlog.CtxErrorf(ctx, "delete contact err: %v", err)
		return errs.ServerError
	}
	if !ok {
		return errs.ContactNotFound
	}
	return nil
}
