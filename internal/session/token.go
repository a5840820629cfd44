package session

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Codec signs sessions into HS256 tokens and restores them.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec. Tokens expire after ttl.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Encode signs the session into a token.
func (c *Codec) Encode(s Session) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"authenticated": s.IsAuthenticated,
		"view_mode":     string(s.ViewMode),
		"iat":           now.Unix(),
		"exp":           now.Add(c.ttl).Unix(),
	}
	if s.User != nil {
		claims["email"] = s.User.Email
		claims["name"] = s.User.Name
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// Decode validates the token and rebuilds the session it carries.
func (c *Codec) Decode(tokenString string) (Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Session{}, fmt.Errorf("invalid session token")
	}

	s := New()
	if mode, _ := claims["view_mode"].(string); ViewMode(mode).Valid() {
		s.ViewMode = ViewMode(mode)
	}
	if authenticated, _ := claims["authenticated"].(bool); authenticated {
		email, _ := claims["email"].(string)
		name, _ := claims["name"].(string)
		s.User = &User{Email: email, Name: name}
		s.IsAuthenticated = true
	}
	return s, nil
}
