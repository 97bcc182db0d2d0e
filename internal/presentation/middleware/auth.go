package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"pixgate/internal/presentation"
)

// AuthMiddleware validates the Bearer token and stores the principal id in
// the echo context. Requests without a valid identity never reach a handler.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get(presentation.AuthKey)

			principal, err := principalFromHeader(authHeader, secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, map[string]string{
					"code":    "unauthenticated",
					"message": err.Error(),
				})
			}

			ctx.Set(presentation.KeyPrincipal, principal)

			return next(ctx)
		}
	}
}

func principalFromHeader(authHeader string, secret []byte) (string, error) {
	if authHeader == "" {
		return "", fmt.Errorf("missing Authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", fmt.Errorf("missing Bearer prefix")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("token has no subject")
	}

	return subject, nil
}
