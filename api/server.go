package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	db "github.com/maizecandy/seller-help/db/sqlc"
	"github.com/maizecandy/seller-help/normalize"
	"github.com/maizecandy/seller-help/risk"
	"github.com/maizecandy/seller-help/token"
	"github.com/maizecandy/seller-help/trust"
	"github.com/maizecandy/seller-help/util"
	"github.com/maizecandy/seller-help/worker"
	"github.com/rs/zerolog/log"
)

// MessageResponse 通用消息响应
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// Server serves HTTP requests for the risk intelligence service.
type Server struct {
	config          util.Config
	store           db.Store
	tokenMaker      token.Maker
	normalizer      *normalize.Normalizer
	aggregator      *risk.Aggregator
	trustMachine    *trust.Machine
	dataEncryptor   util.DataEncryptor
	taskDistributor worker.TaskDistributor
	router          *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
// extractor 和 verifier 可为 nil：前者回退到纯正则解析，后者使实名认证返回 503。
func NewServer(config util.Config, store db.Store, extractor normalize.Extractor, verifier trust.IdentityVerifier, taskDistributor worker.TaskDistributor) (*Server, error) {
	tokenMaker, err := token.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	// 举报描述落库加密（未配置密钥时明文存储）
	var dataEncryptor util.DataEncryptor
	if config.DataEncryptionKey != "" {
		dataEncryptor, err = util.NewAESEncryptor(config.DataEncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("cannot create data encryptor: %w", err)
		}
	} else {
		log.Warn().Msg("DATA_ENCRYPTION_KEY not configured, report descriptions will be stored in plaintext")
	}

	server := &Server{
		config:          config,
		store:           store,
		tokenMaker:      tokenMaker,
		normalizer:      normalize.NewNormalizer(extractor),
		aggregator:      risk.NewAggregator(store),
		trustMachine:    trust.NewMachine(store, verifier),
		dataEncryptor:   dataEncryptor,
		taskDistributor: taskDistributor,
	}

	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(CORSMiddleware(server.config.AllowedOrigins))
	router.Use(SecurityHeadersMiddleware())
	if server.config.Environment == "production" {
		router.Use(HSTSMiddleware(31536000))
	}

	router.Use(RequestTracingMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(PrometheusMiddleware())

	rateLimiter := NewRateLimiter(DefaultRateLimiterConfig())
	router.Use(rateLimiter.Middleware())

	// 全局超时：防止慢查询、外部API卡死导致goroutine泄漏
	router.Use(TimeoutMiddleware(30 * time.Second))

	router.GET("/metrics", MetricsHandler())
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	v1 := router.Group("/v1")

	// 认证路由（无需登录，但有更严格的速率限制）
	authGroup := v1.Group("/auth")
	authGroup.Use(rateLimiter.SensitiveAPIMiddleware(10))
	authGroup.POST("/register", server.registerMerchant)
	authGroup.POST("/login", server.loginMerchant)
	authGroup.POST("/refresh", server.renewAccessToken)

	// 登录后路由
	authed := v1.Group("/")
	authed.Use(authMiddleware(server.tokenMaker))
	authed.GET("/merchants/me", server.getCurrentMerchant)

	// 店铺产权认证与实名认证（Visitor 即可发起）
	authed.POST("/merchant/plugin-auth", server.pluginAuth)
	authed.POST("/merchant/realname-auth", server.realnameAuth)

	// 文本解析（不落库，登录即可试用）
	authed.POST("/parse/text", server.parseText)

	// 查询与举报要求 Verified 及以上
	verified := authed.Group("/")
	verified.Use(server.trustLevelMiddleware(trust.LevelVerified))
	verified.POST("/risk/search", server.searchRisk)
	verified.GET("/risk/records/:id/evidence", server.listRiskEvidence)
	verified.POST("/report/submit", server.submitReport)

	// 管理操作：手机号白名单
	admin := authed.Group("/admin")
	admin.Use(server.adminMiddleware())
	admin.GET("/merchants", server.listMerchantsForReview)
	admin.POST("/merchants/review", server.reviewMerchant)

	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// GetRouter returns the gin router for creating http.Server
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

// healthCheck 健康检查 - 基础存活检查
// GET /health
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "seller-help-api",
	})
}

// readinessCheck 就绪检查 - 检查依赖服务
// GET /ready
func (server *Server) readinessCheck(ctx *gin.Context) {
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "storage connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"service": "seller-help-api",
		"storage": "connected",
	})
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// errorResponse creates an error response.
// For 4xx client errors: returns the actual error message
// For 5xx server errors: use internalError() instead to avoid leaking details
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
func internalError(ctx *gin.Context, err error) gin.H {
	_ = ctx.Error(err)

	evt := log.Error().
		Err(err).
		Str("request_id", GetRequestID(ctx)).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method)

	if pgErr, ok := err.(*pgconn.PgError); ok {
		evt = evt.
			Str("sqlstate", pgErr.Code).
			Str("pg_message", pgErr.Message).
			Str("pg_detail", pgErr.Detail)
	}

	evt.Msg("internal server error")

	return gin.H{"error": "internal server error"}
}
