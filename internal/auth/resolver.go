// Package auth resolves the caller's identity from a bearer token.
//
// Tokens are HMAC-signed JWTs carrying an integer-valued "userId"
// claim. Resolution fails closed: a missing header, a bad signature, an
// expired token or a non-integer claim all yield "absent", never an
// error. Callers must treat absent as unauthorized.
package auth

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const userIDClaim = "userId"

// Resolver verifies bearer tokens and extracts the owning user id.
type Resolver struct {
	secret []byte
}

func NewResolver(secret []byte) *Resolver {
	return &Resolver{secret: secret}
}

// Mint issues a signed token for userID, valid for ttl. The claim is a
// numeric string, matching what the token issuer upstream produces.
func (r *Resolver) Mint(userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		userIDClaim: strconv.FormatInt(userID, 10),
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(r.secret)
}

// FromRequest extracts the user id from the Authorization header.
// The second return value reports whether an identity was resolved;
// handlers short-circuit to 401 when it is false.
func (r *Resolver) FromRequest(req *http.Request) (int64, bool) {
	h := req.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return 0, false
	}
	return r.Parse(strings.TrimPrefix(h, "Bearer "))
}

// Parse verifies a raw token string and returns the userId claim.
func (r *Resolver) Parse(tokenStr string) (int64, bool) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	// The claim may arrive as a numeric string or a JSON number,
	// depending on the issuer.
	switch v := claims[userIDClaim].(type) {
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}
