// Package token implements the signed session tokens that are the only
// session state in the system. A token carries the account id and surname,
// is signed with a process-wide secret, and expires a configured number of
// seconds after it was issued.
package token

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
)

// Session is the identity payload carried by a verified token.
type Session struct {
	UserID  uint
	Surname string
}

type sessionClaims struct {
	UserID  uint   `json:"user_id"`
	Surname string `json:"surname"`
	jwt.RegisteredClaims
}

// Codec mints and verifies session tokens with a fixed secret and a default
// maximum age. Construct one at startup and share it; it is immutable.
type Codec struct {
	secret []byte
	maxAge time.Duration
}

// NewCodec returns a codec signing with secret. maxAge is the default session
// lifetime applied by Verify.
func NewCodec(secret string, maxAge time.Duration) *Codec {
	return &Codec{secret: []byte(secret), maxAge: maxAge}
}

// Mint serializes and signs a session for the given account.
func (c *Codec) Mint(userID uint, surname string) (string, error) {
	claims := &sessionClaims{
		UserID:  userID,
		Surname: surname,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks raw against the codec's default max age.
func (c *Codec) Verify(raw string) (*Session, bool) {
	return c.VerifyWithMaxAge(raw, c.maxAge)
}

// VerifyWithMaxAge checks the signature first, then that the token was issued
// no more than maxAge ago. Malformed input, a bad signature and an expired
// token all yield the same (nil, false); callers cannot tell why a token was
// rejected.
func (c *Codec) VerifyWithMaxAge(raw string, maxAge time.Duration) (*Session, bool) {
	claims := &sessionClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, false
	}
	if claims.IssuedAt == nil {
		return nil, false
	}
	if time.Since(claims.IssuedAt.Time) > maxAge {
		return nil, false
	}
	return &Session{UserID: claims.UserID, Surname: claims.Surname}, true
}
