package user

import (
	"context"
	"strings"
	"sync"
	"time"

	"contact_book/be/biz/config"
	"contact_book/be/biz/dal/repo"
	"contact_book/be/biz/db/mysql"
	"contact_book/be/biz/middleware/jwt"
	"contact_book/be/biz/model/domain"
	"contact_book/be/biz/model/errs"
	"contact_book/be/biz/util/encode"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// TokenIssuer is the part of jwt.Manager the service depends on.
type TokenIssuer interface {
	GenerateToken(ctx context.Context, payload jwt.Payload) (string, time.Time, error)
	RemoveToken(ctx context.Context, tokenID string) error
}

type Service struct {
	users  repo.UserRepository
	tokens TokenIssuer
	cost   int
}

func New(users repo.UserRepository, tokens TokenIssuer, cost int) *Service {
	return &Service{users: users, tokens: tokens, cost: cost}
}

func NewDefault() *Service {
	return New(
		repo.NewUserRepositoryGorm(mysql.GetDbConn(), mysql.QueryTimeout()),
		jwt.NewDefault(),
		config.GetPasswordConf().BcryptCost,
	)
}

func (s *Service) Register(ctx context.Context, username, password, organizationName string) (*domain.User, errs.Error) {
	if strings.TrimSpace(username) == "" || password == "" || strings.TrimSpace(organizationName) == "" {
		return nil, errs.ParamError.SetMsg("username, password and organizationName are required")
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByUsername err: %v", err)
		return nil, errs.ServerError
	}
	if existing != nil {
		return nil, errs.UsernameDuplicated
	}

	hash, err := encode.HashPassword(password, s.cost)
	if err != nil {
		// bcrypt rejects passwords over 72 bytes
		hlog.CtxInfof(ctx, "HashPassword err: %v", err)
		return nil, errs.ParamError.SetErr(err)
	}

	u, err := s.users.Create(ctx, &domain.User{
		Username:         username,
		PasswordHash:     hash,
		OrganizationName: organizationName,
	})
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, errs.UsernameDuplicated
		}
		hlog.CtxErrorf(ctx, "create user err: %v", err)
		return nil, errs.ServerError
	}
	return u, nil
}

// Login answers an unknown user and a wrong password with the same error.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.SessionToken, errs.Error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByUsername err: %v", err)
		return nil, errs.ServerError
	}

	hash := dummyHash(s.cost)
	if u != nil {
		hash = u.PasswordHash
	}
	ok, err := encode.ComparePassword(hash, password)
	if err != nil {
		hlog.CtxErrorf(ctx, "ComparePassword err: %v", err)
		return nil, errs.ServerError
	}
	if u == nil || !ok {
		hlog.CtxInfof(ctx, "login failed for %q", username)
		return nil, errs.InvalidCredentials
	}

	token, expAt, err := s.tokens.GenerateToken(ctx, jwt.Payload{
		UserID:   u.UserID,
		Username: u.Username,
	})
	if err != nil {
		return nil, errs.ServerError
	}
	return &domain.SessionToken{Token: token, ExpiresAt: expAt}, nil
}

func (s *Service) Logout(ctx context.Context, identity *domain.Identity) errs.Error {
	if identity == nil {
		return errs.Unauthorized
	}
	if err := s.tokens.RemoveToken(ctx, identity.TokenID); err != nil {
		hlog.CtxErrorf(ctx, "RemoveToken err: %v", err)
		return errs.ServerError
	}
	return nil
}

func (s *Service) GetByUserID(ctx context.Context, userID string) (*domain.User, errs.Error) {
	u, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByUserID err: %v", err)
		return nil, errs.ServerError
	}
	if u == nil {
		return nil, errs.Unauthorized
	}
	return u, nil
}

// dummyHashes caches, per bcrypt cost, the hash compared against when the
// username is unknown so both failure paths cost one bcrypt comparison.
var dummyHashes sync.Map

func dummyHash(cost int) string {
	if h, ok := dummyHashes.Load(cost); ok {
		return h.(string)
	}
	h, err := encode.HashPassword("contact-book-dummy-password", cost)
	if err != nil {
		panic(err)
	}
	actual, _ := dummyHashes.LoadOrStore(cost, h)
	return actual.(string)
}
