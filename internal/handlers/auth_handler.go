package handlers

import (
	"time"

	"ces/internal/session"
	"ces/pkg/jwt"
	"ces/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	revoker session.Revoker
	log     *logrus.Logger
}

func NewAuthHandler(revoker session.Revoker, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{revoker: revoker, log: log}
}

// Me 当前登录用户
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Unauthorized(c, "未登录")
		return
	}

	data := gin.H{
		"user_id":   claims.UserID,
		"tenant_id": claims.TenantID,
		"username":  claims.Username,
	}
	if claims.ExpiresAt != nil {
		data["expires_at"] = claims.ExpiresAt.Time
	}
	response.Success(c, data)
}

// Logout 注销当前令牌，令牌在剩余有效期内不可再用
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Unauthorized(c, "未登录")
		return
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}

	if err := h.revoker.Revoke(c.Request.Context(), claims.ID, ttl); err != nil {
		h.log.WithError(err).WithField("username", claims.Username).Error("注销令牌失败")
		response.ServerError(c, "登出失败")
		return
	}

	h.log.WithFields(logrus.Fields{
		"user_id":  claims.UserID,
		"username": claims.Username,
	}).Info("用户登出")

	response.SuccessWithMessage(c, "登出成功", gin.H{
		"user_id":     claims.UserID,
		"username":    claims.Username,
		"logout_time": time.Now(),
	})
}

func currentClaims(c *gin.Context) (*jwt.Claims, bool) {
	value, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*jwt.Claims)
	return claims, ok && claims != nil
}
