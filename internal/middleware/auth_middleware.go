package middleware

import (
	"ces/internal/session"
	"ces/pkg/jwt"
	"ces/pkg/response"
	"ces/pkg/transport"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthMiddleware 登录校验中间件
type AuthMiddleware struct {
	jwtManager *jwt.JWTManager
	revoker    session.Revoker
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtManager *jwt.JWTManager, revoker session.Revoker, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		revoker:    revoker,
		log:        log,
	}
}

// RequireLogin 校验Bearer令牌，并把原始令牌放入请求上下文转发给CES
func (m *AuthMiddleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, "认证头格式错误")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.jwtManager.VerifyToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Token无效或已过期")
			c.Abort()
			return
		}

		revoked, err := m.revoker.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			m.log.WithError(err).Error("令牌状态检查失败")
			response.ServerError(c, "令牌状态检查失败")
			c.Abort()
			return
		}
		if revoked {
			response.Unauthorized(c, "Token已注销")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("tenant_id", claims.TenantID)
		c.Set("username", claims.Username)
		c.Set("claims", claims)
		c.Request = c.Request.WithContext(transport.WithToken(c.Request.Context(), tokenString))

		c.Next()
	}
}
