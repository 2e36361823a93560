package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/maizecandy/seller-help/db/sqlc"
	"github.com/maizecandy/seller-help/trust"
)

type listMerchantsRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=50"`
}

type listMerchantsResponse struct {
	Total     int64              `json:"total"`
	Merchants []merchantResponse `json:"merchants"`
}

// listMerchantsForReview 分页列出商家供人工复核
// GET /v1/admin/merchants
func (server *Server) listMerchantsForReview(ctx *gin.Context) {
	var req listMerchantsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	total, err := server.store.CountMerchants(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	merchants, err := server.store.ListMerchants(ctx, db.ListMerchantsParams{
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := listMerchantsResponse{
		Total:     total,
		Merchants: make([]merchantResponse, 0, len(merchants)),
	}
	for _, merchant := range merchants {
		rsp.Merchants = append(rsp.Merchants, newMerchantResponse(merchant))
	}

	ctx.JSON(http.StatusOK, rsp)
}

type reviewMerchantRequest struct {
	MerchantID int64  `json:"merchant_id" binding:"required,min=1"`
	Action     string `json:"action" binding:"required,oneof=approve reject upgrade downgrade"`
}

// reviewMerchant 管理员人工复核：批准、驳回或调整信任等级
// POST /v1/admin/merchants/review
func (server *Server) reviewMerchant(ctx *gin.Context) {
	var req reviewMerchantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	merchant, err := server.trustMachine.AdminReview(ctx, req.MerchantID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, trust.ErrInvalidAdminAction):
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	RecordTrustTransition("admin", true)

	ctx.JSON(http.StatusOK, newMerchantResponse(merchant))
}
