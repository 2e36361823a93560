package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maizecandy/seller-help/normalize"
)

type parseTextRequest struct {
	Text string `json:"text" binding:"required,max=4000"`
}

type parseTextResponse struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	PhoneExt      string `json:"phone_ext"`
	Province      string `json:"province"`
	City          string `json:"city"`
	District      string `json:"district"`
	Address       string `json:"address"`
	LogisticsCode string `json:"logistics_code"`
	Platform      string `json:"platform"`
	Source        string `json:"source"`
}

// parseText 解析买家文本，返回脱敏后的归一化字段，不落库
// POST /v1/parse/text
func (server *Server) parseText(ctx *gin.Context) {
	var req parseTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	record := server.normalizer.Normalize(ctx.Request.Context(), req.Text)
	RecordTextParse(string(record.Source))

	ctx.JSON(http.StatusOK, newParseTextResponse(record))
}

func newParseTextResponse(record normalize.NormalizedRecord) parseTextResponse {
	return parseTextResponse{
		Name:          record.Name,
		Phone:         record.Phone,
		PhoneExt:      record.PhoneExt,
		Province:      record.Province,
		City:          record.City,
		District:      record.District,
		Address:       record.Address,
		LogisticsCode: record.LogisticsCode,
		Platform:      record.Platform,
		Source:        string(record.Source),
	}
}
