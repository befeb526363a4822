package middleware

import (
	"fmt"
	"strings"

	"github.com/ariebrainware/basis-data-rs/util"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	userIDContextKey = "user_id"
	emailContextKey  = "email"
)

// AuthRequired validates the Bearer JWT on write endpoints. The token must
// be signed with the configured JWTSECRET and carry user_id and email claims.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Missing or malformed Authorization header",
				Err: fmt.Errorf("bearer token required"),
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return util.GetJWTSecretByte(), nil
		})
		if err != nil || !token.Valid {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Invalid or expired token",
				Err: fmt.Errorf("token validation failed: %v", err),
			})
			c.Abort()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if id, ok := claims["user_id"].(float64); ok {
				c.Set(userIDContextKey, uint(id))
			}
			if email, ok := claims["email"].(string); ok {
				c.Set(emailContextKey, email)
			}
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user ID set by AuthRequired.
func GetUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDContextKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// GetUserEmail returns the authenticated email set by AuthRequired.
func GetUserEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(emailContextKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
