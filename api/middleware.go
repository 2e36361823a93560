package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/maizecandy/seller-help/db/sqlc"
	"github.com/maizecandy/seller-help/token"
)

const (
	authorizationHeaderKey  = "authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"
	currentMerchantKey      = "current_merchant"
)

// AuthMiddleware creates a gin middleware for authorization
func authMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var accessToken string
		authorizationHeader := ctx.GetHeader(authorizationHeaderKey)

		if len(authorizationHeader) != 0 {
			fields := strings.Fields(authorizationHeader)
			if len(fields) >= 2 && strings.ToLower(fields[0]) == authorizationTypeBearer {
				accessToken = fields[1]
			}
		}

		if len(accessToken) == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("access token is not provided")))
			return
		}

		payload, err := tokenMaker.VerifyToken(accessToken, token.TokenTypeAccessToken)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// trustLevelMiddleware 检查当前商家的信任等级是否达到 minLevel。
// 查到的商家会放进 Context，处理器无需再查一次。
func (server *Server) trustLevelMiddleware(minLevel int16) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

		merchant, err := server.store.GetMerchant(ctx, payload.MerchantID)
		if err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("merchant not found")))
				return
			}
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}

		if merchant.TrustLevel < minLevel {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(errors.New("shop authentication required")))
			return
		}

		ctx.Set(currentMerchantKey, merchant)
		ctx.Next()
	}
}

// adminMiddleware 管理操作白名单：手机号必须在 ADMIN_PHONES 配置里
func (server *Server) adminMiddleware() gin.HandlerFunc {
	admins := make(map[string]bool, len(server.config.AdminPhones))
	for _, phone := range server.config.AdminPhones {
		admins[phone] = true
	}

	return func(ctx *gin.Context) {
		payload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

		merchant, err := server.store.GetMerchant(ctx, payload.MerchantID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}

		if !admins[merchant.Phone] {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(errors.New("admin access required")))
			return
		}

		ctx.Next()
	}
}

// TimeoutMiddleware 为所有请求设置统一超时时间
// 防止慢查询、外部API卡死导致goroutine泄漏
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// ⚠️ 注意：不要在 goroutine 里调用 c.Next()。
		// Gin 的 Context/ResponseWriter 不是并发安全的，并发写响应会导致
		// "Headers were already written" 之类的异常行为。
		// 这里仅通过 request context 注入超时，确保下游（DB/HTTP）可被取消。
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		// 已超时且还未写响应时兜底返回 504
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{"error": "request timeout"})
		}
	}
}
