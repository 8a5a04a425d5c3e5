package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/heartbridge/telemetry/config"
	"github.com/heartbridge/telemetry/errors"
)

var ErrInvalidToken = fmt.Errorf("invalid token: %w", errors.Unauthorized)

// Claims carried by a bearer token. The subject id and email are a capability
// hint only. Callers must re-resolve the subject against the user store to
// obtain the current role and state.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) SubjectId() string {
	return c.Subject
}

// Codec encodes and decodes bearer tokens. Tokens are signed with the active
// key and carry its key id in the header, so older keys can be kept around
// for verification after a rotation.
type Codec struct {
	activeKid  string
	keys       map[string][]byte
	expiration time.Duration
}

func NewCodec(cfg *config.Config) (*Codec, error) {
	activeKid, keys, err := cfg.SigningKeys()
	if err != nil {
		return nil, fmt.Errorf("unable to load token signing keys: %w", err)
	}

	return &Codec{
		activeKid:  activeKid,
		keys:       keys,
		expiration: cfg.TokenExpiration,
	}, nil
}

func (c *Codec) Encode(subjectId, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectId,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.expiration)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t.Header["kid"] = c.activeKid

	return t.SignedString(c.keys[c.activeKid])
}

func (c *Codec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, c.keyForToken, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (c *Codec) keyForToken(t *jwt.Token) (interface{}, error) {
	kid, ok := t.Header["kid"].(string)
	if !ok {
		return nil, fmt.Errorf("token key id is missing")
	}

	key, ok := c.keys[kid]
	if !ok {
		return nil, fmt.Errorf("unknown token key id %q", kid)
	}

	return key, nil
}
