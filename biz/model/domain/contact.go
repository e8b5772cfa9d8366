package domain

import (
	"errors"
	"strings"
	"time"
)

type MeansOfContact string

const (
	MeansEmail    MeansOfContact = "email"
	MeansCall     MeansOfContact = "call"
	MeansInPerson MeansOfContact = "in-person"
)

func (m MeansOfContact) Valid() bool {
	switch m {
	case MeansEmail, MeansCall, MeansInPerson:
		return true
	}
	return false
}

type Contact struct {
	ContactID       string
	Name            string
	Phone           string
	Email           string
	Note            string
	LastContactedOn time.Time
	MeansOfContact  MeansOfContact
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

var (
	ErrNameRequired   = errors.New("name is required")
	ErrPhoneRequired  = errors.New("phone is required")
	ErrEmailRequired  = errors.New("email is required")
	ErrMeansOfContact = errors.New("meansOfContact must be one of email, call, in-person")
)

// Validate checks the fields every stored contact must carry.
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(c.Phone) == "" {
		return ErrPhoneRequired
	}
	if strings.TrimSpace(c.Email) == "" {
		return ErrEmailRequired
	}
	if !c.MeansOfContact.Valid() {
		return ErrMeansOfContact
	}
	return nil
}

// ContactPatch holds the submitted fields of an update; nil means untouched.
type ContactPatch struct {
	Name            *string
	Phone           *string
	Email           *string
	Note            *string
	LastContactedOn *time.Time
	MeansOfContact  *MeansOfContact
}

// Apply copies the submitted fields onto c and validates the result.
func (p *ContactPatch) Apply(c *Contact) error {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Note != nil {
		c.Note = *p.Note
	}
	if p.LastContactedOn != nil {
		c.LastContactedOn = *p.LastContactedOn
	}
	if p.MeansOfContact != nil {
		c.MeansOfContact = *p.MeansOfContact
	}
	return c.Validate()
}
