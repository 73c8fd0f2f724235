package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-gin-contacts/internal/core/auth"
	resp "go-gin-contacts/internal/transport/http/response"
)

const keyClaims = "claims"

// AuthJWT 后台运维令牌（Bearer）；requireRole 为空则不校验角色
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Error(resp.CodeForbidden, "forbidden"))
			return
		}
		c.Set(keyClaims, claims)
		c.Next()
	}
}

func CurrentOperator(c *gin.Context) *auth.OperatorClaims {
	if v, ok := c.Get(keyClaims); ok {
		if cl, ok := v.(*auth.OperatorClaims); ok {
			return cl
		}
	}
	return nil
}
