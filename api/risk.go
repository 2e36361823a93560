package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/maizecandy/seller-help/db/sqlc"
	"github.com/maizecandy/seller-help/risk"
	"github.com/maizecandy/seller-help/util"
	"github.com/maizecandy/seller-help/val"
)

type searchRiskRequest struct {
	Phone    string `json:"phone"`
	PhoneExt string `json:"phone_ext"`
	Province string `json:"province"`
	City     string `json:"city"`
}

type riskRecordResponse struct {
	ID          int64     `json:"id"`
	BuyerName   string    `json:"buyer_name"`
	Phone       string    `json:"phone"`
	PhoneExt    string    `json:"phone_ext"`
	Province    string    `json:"province"`
	City        string    `json:"city"`
	District    string    `json:"district"`
	Platform    string    `json:"platform"`
	ReportCount int32     `json:"report_count"`
	RiskScore   int32     `json:"risk_score"`
	RiskLevel   string    `json:"risk_level"`
	FirstSeenAt time.Time `json:"first_seen_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

func newRiskRecordResponse(record db.RiskRecord) riskRecordResponse {
	return riskRecordResponse{
		ID:          record.ID,
		BuyerName:   record.BuyerName.String,
		Phone:       record.Phone.String,
		PhoneExt:    record.PhoneExt.String,
		Province:    record.Province.String,
		City:        record.City.String,
		District:    record.District.String,
		Platform:    record.Platform.String,
		ReportCount: record.ReportCount,
		RiskScore:   record.RiskScore,
		RiskLevel:   record.RiskLevel,
		FirstSeenAt: record.FirstSeenAt,
		LastSeenAt:  record.LastSeenAt,
	}
}

type searchRiskResponse struct {
	Total   int                  `json:"total"`
	Records []riskRecordResponse `json:"records"`
}

// searchRisk 按买家信息搜索风险记录，无匹配返回空集
// POST /v1/risk/search
func (server *Server) searchRisk(ctx *gin.Context) {
	var req searchRiskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.Phone != "" {
		if err := val.ValidateSearchPhone(req.Phone); err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
	}
	if req.PhoneExt != "" {
		if err := val.ValidatePhoneExt(req.PhoneExt); err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
	}

	records, err := server.aggregator.Search(ctx, risk.SearchCriteria{
		Phone:    req.Phone,
		PhoneExt: req.PhoneExt,
		Province: req.Province,
		City:     req.City,
	})
	if err != nil {
		if errors.Is(err, risk.ErrEmptyCriteria) {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	RecordRiskSearch(len(records) > 0)

	rsp := searchRiskResponse{
		Total:   len(records),
		Records: make([]riskRecordResponse, 0, len(records)),
	}
	for _, record := range records {
		rsp.Records = append(rsp.Records, newRiskRecordResponse(record))
	}

	ctx.JSON(http.StatusOK, rsp)
}

// 证据详情不暴露举报方身份
type evidenceResponse struct {
	ID           int64     `json:"id"`
	RiskType     string    `json:"risk_type"`
	EvidenceKind string    `json:"evidence_kind"`
	Description  string    `json:"description"`
	EvidenceRefs []string  `json:"evidence_refs"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"created_at"`
}

type listRiskEvidenceResponse struct {
	Total    int                `json:"total"`
	Evidence []evidenceResponse `json:"evidence"`
}

// listRiskEvidence 查看一条风险记录背后的证据，描述解密后返回。
// 未知记录返回空集而不是 404。
// GET /v1/risk/records/:id/evidence
func (server *Server) listRiskEvidence(ctx *gin.Context) {
	recordID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || recordID < 1 {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("invalid risk record id")))
		return
	}

	evidence, err := server.store.ListEvidenceByRiskRecord(ctx, recordID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rsp := listRiskEvidenceResponse{
		Total:    len(evidence),
		Evidence: make([]evidenceResponse, 0, len(evidence)),
	}
	for _, ev := range evidence {
		description, err := util.DecryptSensitiveField(server.dataEncryptor, ev.Description.String)
		if err != nil {
			// 密钥启用前落库的描述是明文，按原文返回
			description = ev.Description.String
		}
		rsp.Evidence = append(rsp.Evidence, evidenceResponse{
			ID:           ev.ID,
			RiskType:     ev.RiskType,
			EvidenceKind: ev.EvidenceKind,
			Description:  description,
			EvidenceRefs: ev.EvidenceRefs,
			Source:       ev.Source,
			CreatedAt:    ev.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, rsp)
}
