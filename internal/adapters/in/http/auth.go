package http

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key under which the authenticated
// operator identity is stored for handlers.
const actorContextKey = "actor"

// operatorRole is the role claim required for every mutating endpoint.
const operatorRole = "operator"

// operatorClaims is the JWT payload issued to back-office operators.
type operatorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// OperatorAuth returns echo middleware that requires a valid HMAC-signed
// bearer token carrying the operator role. The token subject becomes the
// request's actor, available via Actor.
func OperatorAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return c.JSON(http.StatusUnauthorized, APIError{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims := new(operatorClaims)
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !parsed.Valid {
				return c.JSON(http.StatusUnauthorized, APIError{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			if claims.Role != operatorRole {
				return c.JSON(http.StatusForbidden, APIError{
					Code:    http.StatusForbidden,
					Message: "operator role required",
				})
			}

			c.Set(actorContextKey, "operator:"+claims.Subject)
			return next(c)
		}
	}
}

// Actor returns the authenticated operator identity set by OperatorAuth.
func Actor(c echo.Context) string {
	actor, _ := c.Get(actorContextKey).(string)
	return actor
}
