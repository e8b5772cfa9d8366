package convert

import (
	"time"

	"contact_book/be/biz/model/domain"
	"contact_book/be/biz/model/dto"
	"contact_book/be/biz/model/storage"
)

func ContactDomainToRecord(userID string, c *domain.Contact) *storage.ContactRecord {
	if c == nil {
		return nil
	}
	return &storage.ContactRecord{
		GormModel: storage.GormModel{
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		},
		ContactId:       c.ContactID,
		UserId:          userID,
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           c.Email,
		Note:            c.Note,
		LastContactedOn: c.LastContactedOn,
		MeansOfContact:  string(c.MeansOfContact),
	}
}

func ContactRecordToDomain(m *storage.ContactRecord) *domain.Contact {
	if m == nil {
		return nil
	}
	return &domain.Contact{
		ContactID:       m.ContactId,
		Name:            m.Name,
		Phone:           m.Phone,
		Email:           m.Email,
		Note:            m.Note,
		LastContactedOn: m.LastContactedOn,
		MeansOfContact:  domain.MeansOfContact(m.MeansOfContact),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ContactReqToDomain(req *dto.CreateContactReq) *domain.Contact {
	c := &domain.Contact{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Note:           req.Note,
		MeansOfContact: domain.MeansOfContact(req.MeansOfContact),
	}
	if req.LastContactedOn != nil {
		c.LastContactedOn = *req.LastContactedOn
	}
	return c
}

func ContactPatchFromReq(req *dto.UpdateContactReq) *domain.ContactPatch {
	p := &domain.ContactPatch{
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Note:            req.Note,
		LastContactedOn: req.LastContactedOn,
	}
	if req.MeansOfContact != nil {
		m := domain.MeansOfContact(*req.MeansOfContact)
		p.MeansOfContact = &m
	}
	return p
}

func ContactDomainToResp(c *domain.Contact) dto.ContactResp {
	return dto.ContactResp{
		ID:              c.ContactID,
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           c.Email,
		Note:            c.Note,
		LastContactedOn: c.LastContactedOn.UTC().Format(time.RFC3339),
		MeansOfContact:  string(c.MeansOfContact),
	}
}

func ContactsDomainToResp(list []*domain.Contact) []dto.ContactResp {
	out := make([]dto.ContactResp, 0, len(list))
	for _, c := range list {
		out = append(out, ContactDomainToResp(c))
	}
	return out
}
