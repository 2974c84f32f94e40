package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie shared with the admin frontend.
const CookieName = "admin_session"

// ErrMalformedToken signals a token that cannot be parsed or whose signature
// does not verify. Callers must treat it as "not authenticated", never as a
// server fault.
var ErrMalformedToken = errors.New("session: malformed token")

// Claims is the decoded identity carried by a session token.
type Claims struct {
	UserID   string
	Email    string
	IssuedAt time.Time
}

// Codec mints and verifies signed session tokens. Tokens are HMAC-signed with
// a server-held secret, so a syntactically valid token forged without the
// secret fails verification. There is no server-side session table; expiry is
// enforced by the token itself and by the cookie max-age.
type Codec struct {
	secret []byte
	maxAge time.Duration
}

func NewCodec(secret string, maxAge time.Duration) *Codec {
	return &Codec{secret: []byte(secret), maxAge: maxAge}
}

// Encode turns an operator identity into a bearer token.
func (c *Codec) Encode(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(c.maxAge).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("session: sign token: %w", err)
	}
	return signed, nil
}

// Decode reverses Encode. Any parse, signature or shape problem comes back as
// ErrMalformedToken.
func (c *Codec) Decode(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrMalformedToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrMalformedToken
	}

	userID, ok := mapClaims["sub"].(string)
	if !ok || userID == "" {
		return Claims{}, ErrMalformedToken
	}
	email, ok := mapClaims["email"].(string)
	if !ok {
		return Claims{}, ErrMalformedToken
	}

	var issuedAt time.Time
	if iat, ok := mapClaims["iat"].(float64); ok {
		issuedAt = time.Unix(int64(iat), 0)
	}

	return Claims{UserID: userID, Email: email, IssuedAt: issuedAt}, nil
}
