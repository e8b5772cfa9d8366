package dto

import "time"

type CreateContactReq struct {
	Name            string     `json:"name" validate:"required,max=128"`
	Phone           string     `json:"phone" validate:"required,max=64"`
	Email           string     `json:"email" validate:"required,max=256"`
	Note            string     `json:"note" validate:"max=1024"`
	LastContactedOn *time.Time `json:"lastContactedOn"`
	MeansOfContact  string     `json:"meansOfContact" validate:"required,oneof=email call in-person"`
}

// UpdateContactReq carries only the fields the caller wants changed.
type UpdateContactReq struct {
	Name            *string    `json:"name" validate:"omitempty,max=128"`
	Phone           *string    `json:"phone" validate:"omitempty,max=64"`
	Email           *string    `json:"email" validate:"omitempty,max=256"`
	Note            *string    `json:"note" validate:"omitempty,max=1024"`
	LastContactedOn *time.Time `json:"lastContactedOn"`
	MeansOfContact  *string    `json:"meansOfContact" validate:"omitempty,oneof=email call in-person"`
}

type ContactResp struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Note            string `json:"note,omitempty"`
	LastContactedOn string `json:"lastContactedOn"`
	MeansOfContact  string `json:"meansOfContact"`
}
