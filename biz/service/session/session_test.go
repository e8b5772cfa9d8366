package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"contact_book/be/biz/middleware/jwt"
	"contact_book/be/biz/model/domain"
	"contact_book/be/biz/model/errs"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

type fakeTokens struct {
	claims *jwt.Claims
	err    error
}

func (f *fakeTokens) ValidateToken(_ context.Context, _ string) (*jwt.Claims, error) {
	return f.claims, f.err
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *fakeUserRepo) FindByUserID(_ context.Context, _ string) (*domain.User, error) {
	return r.user, r.err
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return r.user, r.err
}

func validClaims() *jwt.Claims {
	return &jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        "tid",
			ExpiresAt: gojwt.NewNumericDate(time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)),
		},
		Payload: jwt.Payload{UserID: "u1"},
	}
}

func TestValidator_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		v := New(&fakeTokens{}, &fakeUserRepo{})
		_, bizErr := v.Authenticate(ctx, "")
		assert.True(t, errs.ErrorEqual(errs.Unauthorized, bizErr))
	})

	for _, tokenErr := range []error{
		jwt.ErrJwtInvalid,
		jwt.ErrJwtExpired,
		jwt.ErrUnexpectedJwtMethod,
		jwt.ErrTokenRevoked,
		fmt.Errorf("%w: bad segment", jwt.ErrJwtInvalid),
	} {
		t.Run(tokenErr.Error(), func(t *testing.T) {
			v := New(&fakeTokens{err: tokenErr}, &fakeUserRepo{user: &domain.User{UserID: "u1"}})
			_, bizErr := v.Authenticate(ctx, "tok")
			assert.True(t, errs.ErrorEqual(errs.Unauthorized, bizErr))
		})
	}

	t.Run("registry unreachable", func(t *testing.T) {
		v := New(&fakeTokens{err: errors.New("dial tcp: timeout")}, &fakeUserRepo{})
		_, bizErr := v.Authenticate(ctx, "tok")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("owner gone", func(t *testing.T) {
		v := New(&fakeTokens{claims: validClaims()}, &fakeUserRepo{})
		_, bizErr := v.Authenticate(ctx, "tok")
		assert.True(t, errs.ErrorEqual(errs.Unauthorized, bizErr))
	})

	t.Run("store error", func(t *testing.T) {
		v := New(&fakeTokens{claims: validClaims()}, &fakeUserRepo{err: errors.New("db error")})
		_, bizErr := v.Authenticate(ctx, "tok")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("success", func(t *testing.T) {
		u := &domain.User{UserID: "u1", Username: "alice", OrganizationName: "Acme"}
		v := New(&fakeTokens{claims: validClaims()}, &fakeUserRepo{user: u})
		identity, bizErr := v.Authenticate(ctx, "tok")
		assert.Nil(t, bizErr)
		if assert.NotNil(t, identity) {
			assert.Equal(t, "u1", identity.UserID)
			assert.Equal(t, "alice", identity.Username)
			assert.Equal(t, "Acme", identity.OrganizationName)
			assert.Equal(t, "tid", identity.TokenID)
		}
	})
}
