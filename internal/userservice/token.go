package userservice

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// AccessTokenTime is how long an issued access token stays valid.
const AccessTokenTime = 24 * time.Hour

// Identity is the authenticated caller as carried inside a verified
// access token.
type Identity struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenMaker signs and verifies access tokens with a server-side
// secret. Tokens are HS256 JWTs; the user id travels in the subject
// claim.
type TokenMaker struct {
	secret []byte
}

func NewTokenMaker(secret string) *TokenMaker {
	return &TokenMaker{secret: []byte(secret)}
}

type accessClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// New issues a signed token embedding the identity and a 24 hour
// expiry.
func (t *TokenMaker) New(id Identity) (string, error) {
	now := time.Now()

	claims := accessClaims{
		Username: id.Username,
		Email:    id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(id.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks the signature and expiry and returns the embedded
// identity. Any failure surfaces as ErrInvalidToken; callers must not
// learn why verification failed.
func (t *TokenMaker) Verify(token string) (*Identity, error) {
	var claims accessClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID:   userID,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}
