package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/maizecandy/seller-help/db/sqlc"
	"github.com/maizecandy/seller-help/token"
	"github.com/maizecandy/seller-help/trust"
)

type pluginAuthRequest struct {
	Platform     string  `json:"platform" binding:"required"`
	ShopID       string  `json:"shop_id"`
	ShopName     string  `json:"shop_name"`
	MainCategory string  `json:"main_category"`
	OpenDays     int32   `json:"open_days" binding:"min=0"`
	DSR          float64 `json:"dsr" binding:"min=0"`
	TotalReviews int32   `json:"total_reviews" binding:"min=0"`
}

type authDecisionResponse struct {
	Passed   bool   `json:"passed"`
	Reason   string `json:"reason"`
	NewLevel int16  `json:"new_level"`
}

// pluginAuth 店铺产权认证。
// 浏览器插件在商家后台页面采集店铺信号，通过门槛自动升级到 Verified。
// POST /v1/merchant/plugin-auth
func (server *Server) pluginAuth(ctx *gin.Context) {
	var req pluginAuthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	payload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	decision, err := server.trustMachine.PluginAuth(ctx, payload.MerchantID, trust.ShopSignals{
		Platform:     req.Platform,
		ShopID:       req.ShopID,
		ShopName:     req.ShopName,
		MainCategory: req.MainCategory,
		OpenDays:     req.OpenDays,
		DSR:          req.DSR,
		TotalReviews: req.TotalReviews,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	RecordTrustTransition("plugin", decision.Passed)

	ctx.JSON(http.StatusOK, authDecisionResponse{
		Passed:   decision.Passed,
		Reason:   decision.Reason,
		NewLevel: decision.NewLevel,
	})
}

type realnameAuthRequest struct {
	CompanyName   string `json:"company_name" binding:"required,max=128"`
	CreditCode    string `json:"credit_code" binding:"required,len=18"`
	LegalPerson   string `json:"legal_person" binding:"required,max=32"`
	AlipayAccount string `json:"alipay_account" binding:"required,max=128"`
	HolderName    string `json:"holder_name" binding:"required,max=64"`
}

// realnameAuth 实名认证。
// 营业执照与收款账户核验一致后升级到 Authenticated。
// POST /v1/merchant/realname-auth
func (server *Server) realnameAuth(ctx *gin.Context) {
	var req realnameAuthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	payload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	decision, err := server.trustMachine.RealnameAuth(ctx, payload.MerchantID,
		trust.BizLicense{
			CompanyName: req.CompanyName,
			CreditCode:  req.CreditCode,
			LegalPerson: req.LegalPerson,
		},
		trust.PaymentAccount{
			Account:    req.AlipayAccount,
			HolderName: req.HolderName,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, trust.ErrNotVerified):
			ctx.JSON(http.StatusForbidden, errorResponse(err))
		case errors.Is(err, trust.ErrUpstreamUnavailable):
			ctx.JSON(http.StatusServiceUnavailable, errorResponse(err))
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	RecordTrustTransition("realname", decision.Passed)

	ctx.JSON(http.StatusOK, authDecisionResponse{
		Passed:   decision.Passed,
		Reason:   decision.Reason,
		NewLevel: decision.NewLevel,
	})
}
