package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maizecandy/seller-help/fingerprint"
	"github.com/maizecandy/seller-help/normalize"
	"github.com/maizecandy/seller-help/risk"
	"github.com/maizecandy/seller-help/token"
	"github.com/maizecandy/seller-help/util"
)

type submitReportRequest struct {
	// 二选一：原始文本（走归一化解析）或结构化字段
	Text   string               `json:"text"`
	Fields *normalize.RawFields `json:"fields"`

	RiskType     string   `json:"risk_type" binding:"required"`
	EvidenceKind string   `json:"evidence_kind" binding:"required"`
	Description  string   `json:"description" binding:"max=2000"`
	EvidenceRefs []string `json:"evidence_refs" binding:"max=9"`
}

type submitReportResponse struct {
	ReportID      int64  `json:"report_id"`
	RecordCreated bool   `json:"record_created"`
	ReportCount   int32  `json:"report_count"`
	RiskScore     int32  `json:"risk_score"`
	RiskLevel     string `json:"risk_level"`
}

// submitReport 提交举报。
// 买家信息先归一化再按指纹聚合，举报即证据，逐条落库后重算风险分。
// POST /v1/report/submit
func (server *Server) submitReport(ctx *gin.Context) {
	var req submitReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var record normalize.NormalizedRecord
	switch {
	case req.Fields != nil:
		record = server.normalizer.NormalizeFields(*req.Fields)
	case req.Text != "":
		record = server.normalizer.Normalize(ctx.Request.Context(), req.Text)
	default:
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("either text or fields is required")))
		return
	}

	// 没有任何可定位买家的字段就无法聚合
	if record.Phone == "" && record.Province == "" && record.City == "" {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("no identifiable buyer field found")))
		return
	}

	description := req.Description
	if description != "" && server.dataEncryptor != nil {
		encrypted, err := util.EncryptSensitiveField(server.dataEncryptor, description)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		description = encrypted
	}

	payload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	fp := fingerprint.Resolve(record)

	result, err := server.aggregator.AddEvidence(ctx, fp, risk.AddEvidenceParams{
		Record:       record,
		MerchantID:   payload.MerchantID,
		RiskType:     req.RiskType,
		EvidenceKind: req.EvidenceKind,
		Description:  description,
		EvidenceRefs: req.EvidenceRefs,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	RecordReportSubmitted(result.Evidence.RiskType)
	RecordTextParse(string(record.Source))

	ctx.JSON(http.StatusOK, submitReportResponse{
		ReportID:      result.Evidence.ID,
		RecordCreated: result.RecordCreated,
		ReportCount:   result.RiskRecord.ReportCount,
		RiskScore:     result.RiskRecord.RiskScore,
		RiskLevel:     result.RiskRecord.RiskLevel,
	})
}
