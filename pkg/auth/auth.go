package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const CookieName = "auth_token"

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token is expired")
	ErrNoUser       = errors.New("no user in context")
)

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID is stored in the subject claim.
func (c *Claims) UserID() (int, error) {
	return strconv.Atoi(c.Subject)
}

type Issuer struct {
	key []byte
	ttl time.Duration
}

func NewIssuer(key string, ttl time.Duration) *Issuer {
	return &Issuer{key: []byte(key), ttl: ttl}
}

func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

func (i *Issuer) Issue(userID int, username string, now time.Time) (string, error) {
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.key)
}

func (i *Issuer) Parse(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return i.key, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

type ctxKey int

const userKey ctxKey = iota + 1

// SetAuthContext stores any authenticated principal in ctx.
func SetAuthContext[T any](ctx context.Context, user T) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func FromContext[T any](ctx context.Context) (T, error) {
	user, ok := ctx.Value(userKey).(T)
	if !ok {
		return user, ErrNoUser
	}
	return user, nil
}
