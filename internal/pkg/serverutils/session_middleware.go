package serverutils

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionLocalKey = "session_id"

type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

type SessionOptions struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// SessionMiddleware pins each browser to a session id carried in a signed
// cookie. A missing, expired or tampered cookie starts a new session.
// It identifies a browser, it does not authenticate anyone.
func SessionMiddleware(opts SessionOptions) fiber.Handler {
	secret := []byte(opts.Secret)

	return func(ctx *fiber.Ctx) error {
		if id, err := parseSession(ctx.Cookies(opts.CookieName), secret); err == nil {
			ctx.Locals(SessionLocalKey, id)
			return ctx.Next()
		}

		id := uuid.NewString()
		token, err := SignSession(id, secret, opts.TTL)
		if err != nil {
			return NewInternalError(err)
		}
		ctx.Cookie(&fiber.Cookie{
			Name:     opts.CookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(opts.TTL),
			HTTPOnly: true,
			Secure:   opts.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		ctx.Locals(SessionLocalKey, id)
		return ctx.Next()
	}
}

func SignSession(id string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		SessionID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parseSession(raw string, secret []byte) (string, error) {
	if raw == "" {
		return "", errors.New("no session cookie")
	}
	var claims SessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", errors.New("invalid session cookie")
	}
	if _, err := uuid.Parse(claims.SessionID); err != nil {
		return "", err
	}
	return claims.SessionID, nil
}

// SessionID returns the id set by SessionMiddleware.
func SessionID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(SessionLocalKey).(string)
	return id
}
