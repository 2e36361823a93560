package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockdb "github.com/maizecandy/seller-help/db/mock"
	db "github.com/maizecandy/seller-help/db/sqlc"
	"github.com/maizecandy/seller-help/util"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSearchRiskAPI(t *testing.T) {
	merchant := verifiedMerchant(t)

	matched := db.RiskRecord{
		ID:          7,
		Fingerprint: "abc",
		BuyerName:   pgtype.Text{String: "张*", Valid: true},
		Phone:       pgtype.Text{String: "138****1234", Valid: true},
		Province:    pgtype.Text{String: "广东省", Valid: true},
		City:        pgtype.Text{String: "深圳市", Valid: true},
		ReportCount: 3,
		RiskScore:   40,
		RiskLevel:   "medium",
	}

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{
				"phone": "138****1234",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SearchRiskRecords(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ any, arg db.SearchRiskRecordsParams) ([]db.RiskRecord, error) {
						require.Equal(t, "138****1234", arg.Phone)
						return []db.RiskRecord{matched}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp searchRiskResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, 1, rsp.Total)
				require.Equal(t, "138****1234", rsp.Records[0].Phone)
				require.Equal(t, int32(40), rsp.Records[0].RiskScore)
				require.Equal(t, "medium", rsp.Records[0].RiskLevel)
			},
		},
		{
			name: "FullPhoneMaskedBeforeQuery",
			body: gin.H{
				"phone": "13812341234",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SearchRiskRecords(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ any, arg db.SearchRiskRecordsParams) ([]db.RiskRecord, error) {
						require.Equal(t, "138****1234", arg.Phone)
						return []db.RiskRecord{matched}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp searchRiskResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, 1, rsp.Total)
			},
		},
		{
			name: "NoMatchReturnsEmpty",
			body: gin.H{
				"province": "云南省",
				"city":     "昆明市",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SearchRiskRecords(gomock.Any(), gomock.Any()).
					Times(1).
					Return([]db.RiskRecord{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp searchRiskResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, 0, rsp.Total)
				require.Empty(t, rsp.Records)
			},
		},
		{
			name: "EmptyCriteria",
			body: gin.H{},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SearchRiskRecords(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InvalidPhone",
			body: gin.H{
				"phone": "110",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SearchRiskRecords(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			store.EXPECT().
				GetMerchant(gomock.Any(), gomock.Eq(merchant.ID)).
				Times(1).
				Return(merchant, nil)
			tc.buildStubs(store)
			server := newTestServer(t, store)

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/risk/search", bytes.NewReader(data))
			require.NoError(t, err)
			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, merchant.ID, time.Minute)

			recorder := httptest.NewRecorder()
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestListRiskEvidenceAPI(t *testing.T) {
	merchant := verifiedMerchant(t)

	encryptor, err := util.NewAESEncryptor("12345678901234567890123456789012")
	require.NoError(t, err)
	encrypted, err := encryptor.Encrypt("签收后调包退回空盒")
	require.NoError(t, err)

	stored := []db.Evidence{
		{
			ID:           1,
			RiskRecordID: 7,
			MerchantID:   99,
			RiskType:     "return_scam",
			EvidenceKind: "image",
			Description:  pgtype.Text{String: encrypted, Valid: true},
			EvidenceRefs: []string{"oss://evidence/1.jpg"},
			Source:       "pattern",
		},
		{
			ID:           2,
			RiskRecordID: 7,
			MerchantID:   99,
			RiskType:     "blackmail",
			EvidenceKind: "video",
			// 密钥启用前落库的明文描述
			Description: pgtype.Text{String: "威胁给差评要赔偿", Valid: true},
			Source:      "manual",
		},
	}

	testCases := []struct {
		name          string
		recordID      string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:     "OKDecryptsDescription",
			recordID: "7",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListEvidenceByRiskRecord(gomock.Any(), gomock.Eq(int64(7))).
					Times(1).
					Return(stored, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp listRiskEvidenceResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, 2, rsp.Total)
				require.Equal(t, "签收后调包退回空盒", rsp.Evidence[0].Description)
				// 明文描述解不开时按原文返回
				require.Equal(t, "威胁给差评要赔偿", rsp.Evidence[1].Description)
			},
		},
		{
			name:     "UnknownRecordReturnsEmpty",
			recordID: "404",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListEvidenceByRiskRecord(gomock.Any(), gomock.Eq(int64(404))).
					Times(1).
					Return([]db.Evidence{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp listRiskEvidenceResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, 0, rsp.Total)
			},
		},
		{
			name:     "InvalidID",
			recordID: "abc",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListEvidenceByRiskRecord(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			store.EXPECT().
				GetMerchant(gomock.Any(), gomock.Eq(merchant.ID)).
				Times(1).
				Return(merchant, nil)
			tc.buildStubs(store)
			server := newTestServer(t, store)
			server.dataEncryptor = encryptor

			request, err := http.NewRequest(http.MethodGet, "/v1/risk/records/"+tc.recordID+"/evidence", nil)
			require.NoError(t, err)
			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, merchant.ID, time.Minute)

			recorder := httptest.NewRecorder()
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
