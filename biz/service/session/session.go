package session

import (
	"context"
	"errors"

	"contact_book/be/biz/dal/repo"
	"contact_book/be/biz/db/mysql"
	"contact_book/be/biz/middleware/jwt"
	"contact_book/be/biz/model/convert"
	"contact_book/be/biz/model/domain"
	"contact_book/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// TokenValidator is the part of jwt.Manager the validator depends on.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenStr string) (*jwt.Claims, error)
}

// Validator resolves an inbound token to the account that owns it. It never
// writes anything.
type Validator struct {
	tokens TokenValidator
	users  repo.UserRepository
}

func New(tokens TokenValidator, users repo.UserRepository) *Validator {
	return &Validator{tokens: tokens, users: users}
}

func NewDefault() *Validator {
	return New(jwt.NewDefault(), repo.NewUserRepositoryGorm(mysql.GetDbConn(), mysql.QueryTimeout()))
}

func (v *Validator) Authenticate(ctx context.Context, token string) (*domain.Identity, errs.Error) {
	if token == "" {
		return nil, errs.Unauthorized
	}

	claims, err := v.tokens.ValidateToken(ctx, token)
	if err != nil {
		if isTokenErr(err) {
			hlog.CtxInfof(ctx, "jwt invalid: %v", err)
			return nil, errs.Unauthorized
		}
		hlog.CtxErrorf(ctx, "validate token err: %v", err)
		return nil, errs.ServerError
	}

	u, err := v.users.FindByUserID(ctx, claims.UserID)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByUserID err: %v", err)
		return nil, errs.ServerError
	}
	if u == nil {
		hlog.CtxInfof(ctx, "token owner %s no longer exists", claims.UserID)
		return nil, errs.Unauthorized
	}

	identity := convert.UserToIdentity(u)
	identity.TokenID = claims.ID
	return identity, nil
}

func isTokenErr(err error) bool {
	return errors.Is(err, jwt.ErrJwtInvalid) ||
		errors.Is(err, jwt.ErrJwtExpired) ||
		errors.Is(err, jwt.ErrUnexpectedJwtMethod) ||
		errors.Is(err, jwt.ErrTokenRevoked)
}
