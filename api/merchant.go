package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/maizecandy/seller-help/db/sqlc"
	"github.com/maizecandy/seller-help/token"
	"github.com/maizecandy/seller-help/util"
	"github.com/maizecandy/seller-help/val"
)

type registerMerchantRequest struct {
	Phone       string `json:"phone" binding:"required"`
	Password    string `json:"password" binding:"required"`
	ShopName    string `json:"shop_name" binding:"required"`
	ContactName string `json:"contact_name" binding:"max=32"`
}

type merchantResponse struct {
	ID             int64     `json:"id"`
	Phone          string    `json:"phone"`
	ShopName       string    `json:"shop_name"`
	ContactName    string    `json:"contact_name"`
	TrustLevel     int16     `json:"trust_level"`
	Status         string    `json:"status"`
	RealnameStatus string    `json:"realname_status,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func newMerchantResponse(merchant db.Merchant) merchantResponse {
	return merchantResponse{
		ID:             merchant.ID,
		Phone:          util.MaskPhone(merchant.Phone),
		ShopName:       merchant.ShopName,
		ContactName:    merchant.ContactName,
		TrustLevel:     merchant.TrustLevel,
		Status:         merchant.Status,
		RealnameStatus: merchant.RealnameStatus.String,
		CreatedAt:      merchant.CreatedAt,
	}
}

// registerMerchant 商家注册
// POST /v1/auth/register
func (server *Server) registerMerchant(ctx *gin.Context) {
	var req registerMerchantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := val.ValidatePhone(req.Phone); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := val.ValidatePassword(req.Password); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := val.ValidateShopName(req.ShopName); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	merchant, err := server.store.CreateMerchant(ctx, db.CreateMerchantParams{
		Phone:          req.Phone,
		HashedPassword: hashedPassword,
		ShopName:       req.ShopName,
		ContactName:    req.ContactName,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("phone already registered")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newMerchantResponse(merchant))
}

type loginMerchantRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginMerchantResponse struct {
	SessionID             string           `json:"session_id"`
	AccessToken           string           `json:"access_token"`
	AccessTokenExpiresAt  time.Time        `json:"access_token_expires_at"`
	RefreshToken          string           `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time        `json:"refresh_token_expires_at"`
	Merchant              merchantResponse `json:"merchant"`
}

// loginMerchant 商家登录
// POST /v1/auth/login
func (server *Server) loginMerchant(ctx *gin.Context) {
	var req loginMerchantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	merchant, err := server.store.GetMerchantByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, errorResponse(errors.New("incorrect phone or password")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if err := util.CheckPassword(req.Password, merchant.HashedPassword); err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errors.New("incorrect phone or password")))
		return
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(
		merchant.ID,
		server.config.AccessTokenDuration,
		token.TokenTypeAccessToken,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	refreshToken, refreshPayload, err := server.tokenMaker.CreateToken(
		merchant.ID,
		server.config.RefreshTokenDuration,
		token.TokenTypeRefreshToken,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	session, err := server.store.CreateSession(ctx, db.CreateSessionParams{
		ID:                    refreshPayload.ID,
		MerchantID:            merchant.ID,
		RefreshToken:          refreshToken,
		UserAgent:             ctx.Request.UserAgent(),
		ClientIp:              ctx.ClientIP(),
		IsRevoked:             false,
		RefreshTokenExpiresAt: refreshPayload.ExpiredAt,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, loginMerchantResponse{
		SessionID:             session.ID.String(),
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessPayload.ExpiredAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshPayload.ExpiredAt,
		Merchant:              newMerchantResponse(merchant),
	})
}

// getCurrentMerchant 查询当前商家信息
// GET /v1/merchants/me
func (server *Server) getCurrentMerchant(ctx *gin.Context) {
	payload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	merchant, err := server.store.GetMerchant(ctx, payload.MerchantID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newMerchantResponse(merchant))
}
