package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"contact_book/be/biz/middleware/jwt"
	"contact_book/be/biz/model/domain"
	"contact_book/be/biz/model/errs"
	"contact_book/be/biz/util/encode"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	findByUsernameUser *domain.User
	findByUsernameErr  error

	findByUserIDUser *domain.User
	findByUserIDErr  error

	createRetErr error
	createInput  *domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.createInput = u
	if r.createRetErr != nil {
		return nil, r.createRetErr
	}
	out := *u
	out.UserID = "u1"
	return &out, nil
}

func (r *fakeUserRepo) FindByUserID(_ context.Context, _ string) (*domain.User, error) {
	return r.findByUserIDUser, r.findByUserIDErr
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return r.findByUsernameUser, r.findByUsernameErr
}

type fakeTokenIssuer struct {
	genErr    error
	removeErr error
	payload   jwt.Payload
	removed   string
}

func (f *fakeTokenIssuer) GenerateToken(_ context.Context, payload jwt.Payload) (string, time.Time, error) {
	f.payload = payload
	if f.genErr != nil {
		return "", time.Time{}, f.genErr
	}
	return "signed", time.Unix(1700000000, 0), nil
}

func (f *fakeTokenIssuer) RemoveToken(_ context.Context, tokenID string) error {
	f.removed = tokenID
	return f.removeErr
}

func hashOf(t *testing.T, pw string) string {
	h, err := encode.HashPassword(pw, bcrypt.MinCost)
	assert.NoError(t, err)
	return h
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		svc := New(&fakeUserRepo{}, &fakeTokenIssuer{}, bcrypt.MinCost)
		for _, in := range [][3]string{{"", "p", "o"}, {"a", "", "o"}, {"a", "p", " "}} {
			_, bizErr := svc.Register(ctx, in[0], in[1], in[2])
			assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
		}
	})

	t.Run("find error", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByUsernameErr: errors.New("db error")}, &fakeTokenIssuer{}, bcrypt.MinCost)
		_, bizErr := svc.Register(ctx, "a", "p", "o")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("username duplicated", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByUsernameUser: &domain.User{UserID: "u0"}}, &fakeTokenIssuer{}, bcrypt.MinCost)
		_, bizErr := svc.Register(ctx, "a", "p", "o")
		assert.True(t, errs.ErrorEqual(errs.UsernameDuplicated, bizErr))
	})

	t.Run("lost insert race", func(t *testing.T) {
		svc := New(&fakeUserRepo{createRetErr: gorm.ErrDuplicatedKey}, &fakeTokenIssuer{}, bcrypt.MinCost)
		_, bizErr := svc.Register(ctx, "a", "p", "o")
		assert.True(t, errs.ErrorEqual(errs.UsernameDuplicated, bizErr))
	})

	t.Run("create error", func(t *testing.T) {
		svc := New(&fakeUserRepo{createRetErr: errors.New("insert error")}, &fakeTokenIssuer{}, bcrypt.MinCost)
		_, bizErr := svc.Register(ctx, "a", "p", "o")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("password too long", func(t *testing.T) {
		svc := New(&fakeUserRepo{}, &fakeTokenIssuer{}, bcrypt.MinCost)
		long := make([]byte, 73)
		for i := range long {
			long[i] = 'x'
		}
		_, bizErr := svc.Register(ctx, "a", string(long), "o")
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
	})

	t.Run("success stores bcrypt hash", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := New(repo, &fakeTokenIssuer{}, bcrypt.MinCost)

		u, bizErr := svc.Register(ctx, "alice", "pw", "Acme")
		assert.Nil(t, bizErr)
		assert.Equal(t, "u1", u.UserID)

		if assert.NotNil(t, repo.createInput) {
			assert.Equal(t, "alice", repo.createInput.Username)
			assert.Equal(t, "Acme", repo.createInput.OrganizationName)
			assert.NotEqual(t, "pw", repo.createInput.PasswordHash)
			ok, err := encode.ComparePassword(repo.createInput.PasswordHash, "pw")
			assert.NoError(t, err)
			assert.True(t, ok)
			cost, err := encode.HashCost(repo.createInput.PasswordHash)
			assert.NoError(t, err)
			assert.Equal(t, bcrypt.MinCost, cost)
		}
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("find error", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByUsernameErr: errors.New("db error")}, &fakeTokenIssuer{}, bcrypt.MinCost)
		_, bizErr := svc.Login(ctx, "a", "p")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("unknown user and wrong password look the same", func(t *testing.T) {
		svc := New(&fakeUserRepo{}, &fakeTokenIssuer{}, bcrypt.MinCost)
		_, unknown := svc.Login(ctx, "nobody", "p")

		u := &domain.User{UserID: "u1", PasswordHash: hashOf(t, "right")}
		svc = New(&fakeUserRepo{findByUsernameUser: u}, &fakeTokenIssuer{}, bcrypt.MinCost)
		_, wrong := svc.Login(ctx, "a", "wrong")

		assert.True(t, errs.ErrorEqual(errs.InvalidCredentials, unknown))
		assert.True(t, errs.ErrorEqual(errs.InvalidCredentials, wrong))
		assert.Equal(t, unknown.Msg(), wrong.Msg())
		assert.Equal(t, unknown.HTTPStatus(), wrong.HTTPStatus())
	})

	t.Run("token error", func(t *testing.T) {
		u := &domain.User{UserID: "u1", PasswordHash: hashOf(t, "p")}
		svc := New(&fakeUserRepo{findByUsernameUser: u}, &fakeTokenIssuer{genErr: errors.New("redis down")}, bcrypt.MinCost)
		_, bizErr := svc.Login(ctx, "a", "p")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("success", func(t *testing.T) {
		u := &domain.User{UserID: "u1", Username: "alice", PasswordHash: hashOf(t, "p")}
		tokens := &fakeTokenIssuer{}
		svc := New(&fakeUserRepo{findByUsernameUser: u}, tokens, bcrypt.MinCost)
		out, bizErr := svc.Login(ctx, "alice", "p")
		assert.Nil(t, bizErr)
		assert.Equal(t, "signed", out.Token)
		assert.Equal(t, int64(1700000000), out.ExpiresAt.Unix())
		assert.Equal(t, jwt.Payload{UserID: "u1", Username: "alice"}, tokens.payload)
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("no identity", func(t *testing.T) {
		svc := New(&fakeUserRepo{}, &fakeTokenIssuer{}, bcrypt.MinCost)
		assert.True(t, errs.ErrorEqual(errs.Unauthorized, svc.Logout(ctx, nil)))
	})

	t.Run("remove error", func(t *testing.T) {
		svc := New(&fakeUserRepo{}, &fakeTokenIssuer{removeErr: errors.New("redis down")}, bcrypt.MinCost)
		bizErr := svc.Logout(ctx, &domain.Identity{TokenID: "tid"})
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("success", func(t *testing.T) {
		tokens := &fakeTokenIssuer{}
		svc := New(&fakeUserRepo{}, tokens, bcrypt.MinCost)
		assert.Nil(t, svc.Logout(ctx, &domain.Identity{TokenID: "tid"}))
		assert.Equal(t, "tid", tokens.removed)
	})
}

func TestService_GetByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("find error", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByUserIDErr: errors.New("db error")}, &fakeTokenIssuer{}, bcrypt.MinCost)
		_, bizErr := svc.GetByUserID(ctx, "u1")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("user not exist", func(t *testing.T) {
		svc := New(&fakeUserRepo{}, &fakeTokenIssuer{}, bcrypt.MinCost)
		_, bizErr := svc.GetByUserID(ctx, "u1")
		assert.True(t, errs.ErrorEqual(errs.Unauthorized, bizErr))
	})

	t.Run("success", func(t *testing.T) {
		u := &domain.User{UserID: "u1"}
		svc := New(&fakeUserRepo{findByUserIDUser: u}, &fakeTokenIssuer{}, bcrypt.MinCost)
		out, bizErr := svc.GetByUserID(ctx, "u1")
		assert.Nil(t, bizErr)
		assert.Equal(t, u, out)
	})
}
