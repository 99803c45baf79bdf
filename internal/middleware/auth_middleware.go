package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"iakwe-hr/internal/session"
	"iakwe-hr/internal/shared/apperror"
	"iakwe-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecretMu sync.RWMutex
	jwtSecret   string
)

// SetJWTSecret overrides the JWT_SECRET environment variable.
func SetJWTSecret(secret string) {
	jwtSecretMu.Lock()
	defer jwtSecretMu.Unlock()
	jwtSecret = secret
}

func signingKey() []byte {
	jwtSecretMu.RLock()
	defer jwtSecretMu.RUnlock()
	if jwtSecret != "" {
		return []byte(jwtSecret)
	}
	return []byte(os.Getenv("JWT_SECRET"))
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return signingKey(), nil
		})

		if err != nil || !token.Valid {
			errObj := apperror.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = apperror.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		required := []struct {
			claim   string
			message string
		}{
			{session.KeyUserID, "User ID not found in token"},
			{session.KeyCompanyID, "Company ID not found in token"},
			{session.KeyEmployeeID, "Employee ID not found in token"},
		}
		for _, r := range required {
			v, ok := claims[r.claim].(string)
			if !ok || v == "" {
				response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", r.message, nil)
				c.Abort()
				return
			}
			c.Set(r.claim, v)
		}

		for _, optional := range []string{session.KeyRole, session.KeyFullName, session.KeyEmail} {
			v, _ := claims[optional].(string)
			c.Set(optional, v)
		}

		c.Next()
	}
}
