package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockdb "github.com/maizecandy/seller-help/db/mock"
	db "github.com/maizecandy/seller-help/db/sqlc"
	"github.com/maizecandy/seller-help/trust"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func adminMerchant(t *testing.T) db.Merchant {
	admin, _ := randomMerchant(t)
	admin.Phone = testAdminPhone
	return admin
}

func TestListMerchantsForReviewAPI(t *testing.T) {
	admin := adminMerchant(t)
	pending, _ := randomMerchant(t)

	testCases := []struct {
		name          string
		caller        db.Merchant
		query         string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:   "OK",
			caller: admin,
			query:  "page_id=1&page_size=10",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CountMerchants(gomock.Any()).
					Times(1).
					Return(int64(1), nil)
				store.EXPECT().
					ListMerchants(gomock.Any(), gomock.Eq(db.ListMerchantsParams{Limit: 10, Offset: 0})).
					Times(1).
					Return([]db.Merchant{pending}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp listMerchantsResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, int64(1), rsp.Total)
				require.Len(t, rsp.Merchants, 1)
				require.Equal(t, pending.ID, rsp.Merchants[0].ID)
			},
		},
		{
			name:   "NotAdmin",
			caller: pending,
			query:  "page_id=1&page_size=10",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CountMerchants(gomock.Any()).Times(0)
				store.EXPECT().ListMerchants(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:   "InvalidPageSize",
			caller: admin,
			query:  "page_id=1&page_size=500",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CountMerchants(gomock.Any()).Times(0)
				store.EXPECT().ListMerchants(gomock.Any(), gomock.Any()).Times(0)
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
				GetMerchant(gomock.Any(), gomock.Eq(tc.caller.ID)).
				Times(1).
				Return(tc.caller, nil)
			tc.buildStubs(store)
			server := newTestServer(t, store)

			url := fmt.Sprintf("/v1/admin/merchants?%s", tc.query)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)
			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, tc.caller.ID, time.Minute)

			recorder := httptest.NewRecorder()
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestReviewMerchantAPI(t *testing.T) {
	admin := adminMerchant(t)
	target, _ := randomMerchant(t)

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Approve",
			body: gin.H{
				"merchant_id": target.ID,
				"action":      "approve",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					UpdateMerchantTrustTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ any, arg db.UpdateMerchantTrustTxParams) (db.Merchant, error) {
						require.Equal(t, target.ID, arg.MerchantID)
						update, err := arg.Decide(target)
						require.NoError(t, err)
						require.Equal(t, "approved", update.Status.String)
						require.Equal(t, trust.LevelVerified, update.TrustLevel.Int16)

						approved := target
						approved.TrustLevel = trust.LevelVerified
						approved.Status = "approved"
						return approved, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp merchantResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, trust.LevelVerified, rsp.TrustLevel)
				require.Equal(t, "approved", rsp.Status)
			},
		},
		{
			name: "UnknownAction",
			body: gin.H{
				"merchant_id": target.ID,
				"action":      "obliterate",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					UpdateMerchantTrustTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "TargetNotFound",
			body: gin.H{
				"merchant_id": target.ID,
				"action":      "reject",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					UpdateMerchantTrustTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Merchant{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
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
				GetMerchant(gomock.Any(), gomock.Eq(admin.ID)).
				Times(1).
				Return(admin, nil)
			tc.buildStubs(store)
			server := newTestServer(t, store)

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/admin/merchants/review", bytes.NewReader(data))
			require.NoError(t, err)
			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, admin.ID, time.Minute)

			recorder := httptest.NewRecorder()
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
