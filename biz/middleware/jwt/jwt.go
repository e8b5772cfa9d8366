package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"contact_book/be/biz/config"
	rediscli "contact_book/be/biz/db/redis"
	"contact_book/be/biz/model/domain"
	"contact_book/be/biz/model/errs"
	"contact_book/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
)

var (
	ErrUnexpectedJwtMethod = errors.New("unexpected jwt method")
	ErrJwtInvalid          = errors.New("jwt is invalid")
	ErrJwtExpired          = errors.New("jwt is expired")
	ErrTokenRevoked        = errors.New("jwt is revoked")
)

const defaultAccessExpiration = time.Hour

// Authenticator resolves a raw token to the account that owns it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Identity, errs.Error)
}

func ValidateMW(authn Authenticator) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		jwtStr := extractJWT(c)
		if jwtStr == "" {
			hlog.CtxInfof(ctx, "authorization failed, token is empty")
			resp.AbortWithErr(c, errs.Unauthorized)
			return
		}

		identity, bizErr := authn.Authenticate(ctx, jwtStr)
		if bizErr != nil {
			resp.AbortWithErr(c, bizErr)
			return
		}

		c.Next(WithIdentity(ctx, identity))
	}
}

type Payload struct {
	UserID   string `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
}

type Claims struct {
	jwt.RegisteredClaims
	Payload
}

// Manager signs tokens and keeps the id of every live token in redis, so a
// token stops validating once it expires or is removed on logout.
type Manager struct {
	conf  config.JWTConf
	rdb   redis.Cmdable
	clock clockwork.Clock
}

func NewManager(conf config.JWTConf, rdb redis.Cmdable, clock clockwork.Clock) *Manager {
	return &Manager{conf: conf, rdb: rdb, clock: clock}
}

func NewDefault() *Manager {
	return NewManager(config.GetJWTConfig(), rediscli.GetRedisClient(), clockwork.NewRealClock())
}

// GenerateToken returns the signed token and the instant it stops being valid.
func (m *Manager) GenerateToken(ctx context.Context, payload Payload) (string, time.Time, error) {
	tokenID := uuid.New().String()
	exp := m.expiration()
	// jwt NumericDate only keeps whole seconds, iat and exp share one base
	issuedAt := m.clock.Now().Truncate(time.Second)
	expAt := issuedAt.Add(exp)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    m.conf.Issuer,
			Subject:   payload.UserID,
			ID:        tokenID,
		},
		Payload: payload,
	}
	jwtStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.conf.Secret))
	if err != nil {
		hlog.CtxErrorf(ctx, "generate access token err: %v", err)
		return "", time.Time{}, err
	}

	if err := m.rdb.Set(ctx, tokenExistKey(tokenID), true, exp).Err(); err != nil {
		hlog.CtxErrorf(ctx, "cache token id err: %v", err)
		return "", time.Time{}, err
	}

	return jwtStr, expAt, nil
}

// ValidateToken checks signature, method, issuer and expiry, then that the
// token id is still registered.
func (m *Manager) ValidateToken(ctx context.Context, tokenStr string) (*Claims, error) {
	claims, err := m.parse(tokenStr)
	if err != nil {
		return nil, err
	}

	exist, err := m.rdb.Exists(ctx, tokenExistKey(claims.ID)).Result()
	if err != nil {
		return nil, err
	}
	if exist == 0 {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

func (m *Manager) RemoveToken(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return nil
	}
	return m.rdb.Del(ctx, tokenExistKey(tokenID)).Err()
}

func (m *Manager) parse(tokenStr string) (*Claims, error) {
	var claims Claims
	opts := []jwt.ParserOption{
		jwt.WithTimeFunc(m.clock.Now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if m.conf.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.conf.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedJwtMethod
		}
		return []byte(m.conf.Secret), nil
	}, opts...)
	if err != nil {
		// WithValidMethods reports a foreign alg as a signature error
		if errors.Is(err, ErrUnexpectedJwtMethod) ||
			(errors.Is(err, jwt.ErrTokenSignatureInvalid) && strings.Contains(err.Error(), "signing method")) {
			return nil, ErrUnexpectedJwtMethod
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrJwtExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrJwtInvalid, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrJwtInvalid
	}

	return &claims, nil
}

func (m *Manager) expiration() time.Duration {
	if m.conf.AccessExpiration > 0 {
		return time.Duration(m.conf.AccessExpiration) * time.Second
	}
	return defaultAccessExpiration
}

type identityKey struct{}

func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity returns the owner set by ValidateMW, or nil.
func GetIdentity(ctx context.Context) *domain.Identity {
	identity, _ := ctx.Value(identityKey{}).(*domain.Identity)
	return identity
}

func tokenExistKey(tid string) string {
	return fmt.Sprintf("jwt_id_exist:%s", tid)
}

// extractJWT accepts both "Bearer <token>" and the bare token.
func extractJWT(c *app.RequestContext) string {
	auth := strings.TrimSpace(string(c.Request.Header.Peek("Authorization")))
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return auth
}
