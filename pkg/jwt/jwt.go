package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenAccess = "access"
	issuer      = "nexus"
)

var ErrTokenType = errors.New("invalid token type")

// Claims 会员令牌，Subject 与 MemberID 保持一致
type Claims struct {
	MemberID uint64 `json:"member_id"`
	Type     string `json:"type"`
	// EmailVerified 身份服务已确认邮箱归属
	EmailVerified bool `json:"email_verified,omitempty"`
	jwt.RegisteredClaims
}

type Option func(*Claims)

func WithEmailVerified() Option {
	return func(c *Claims) { c.EmailVerified = true }
}

func GenerateToken(secret []byte, memberID uint64, tokenType string, expire time.Duration, opts ...Option) (string, error) {
	now := time.Now()
	claims := Claims{
		MemberID: memberID,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatUint(memberID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	for _, opt := range opts {
		opt(&claims)
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func ParseToken(secret []byte, expectedType string, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if claims.Type != expectedType {
		return nil, ErrTokenType
	}
	if claims.MemberID == 0 {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
