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
	"github.com/maizecandy/seller-help/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRenewAccessTokenAPI(t *testing.T) {
	merchant, _ := randomMerchant(t)

	testCases := []struct {
		name          string
		buildSession  func(t *testing.T, server *Server, refreshToken string, payload *token.Payload) db.Session
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildSession: func(t *testing.T, server *Server, refreshToken string, payload *token.Payload) db.Session {
				return db.Session{
					ID:                    payload.ID,
					MerchantID:            merchant.ID,
					RefreshToken:          refreshToken,
					IsRevoked:             false,
					RefreshTokenExpiresAt: payload.ExpiredAt,
				}
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp renewAccessTokenResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.NotEmpty(t, rsp.AccessToken)
			},
		},
		{
			name: "RevokedSession",
			buildSession: func(t *testing.T, server *Server, refreshToken string, payload *token.Payload) db.Session {
				return db.Session{
					ID:                    payload.ID,
					MerchantID:            merchant.ID,
					RefreshToken:          refreshToken,
					IsRevoked:             true,
					RefreshTokenExpiresAt: payload.ExpiredAt,
				}
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "SessionMerchantMismatch",
			buildSession: func(t *testing.T, server *Server, refreshToken string, payload *token.Payload) db.Session {
				return db.Session{
					ID:                    payload.ID,
					MerchantID:            merchant.ID + 1,
					RefreshToken:          refreshToken,
					IsRevoked:             false,
					RefreshTokenExpiresAt: payload.ExpiredAt,
				}
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "ExpiredSession",
			buildSession: func(t *testing.T, server *Server, refreshToken string, payload *token.Payload) db.Session {
				return db.Session{
					ID:                    payload.ID,
					MerchantID:            merchant.ID,
					RefreshToken:          refreshToken,
					IsRevoked:             false,
					RefreshTokenExpiresAt: time.Now().Add(-time.Minute),
				}
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			server := newTestServer(t, store)

			refreshToken, refreshPayload, err := server.tokenMaker.CreateToken(
				merchant.ID, time.Minute, token.TokenTypeRefreshToken)
			require.NoError(t, err)

			session := tc.buildSession(t, server, refreshToken, refreshPayload)
			store.EXPECT().
				GetSessionByRefreshToken(gomock.Any(), gomock.Eq(refreshToken)).
				Times(1).
				Return(session, nil)

			data, err := json.Marshal(gin.H{"refresh_token": refreshToken})
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/auth/refresh", bytes.NewReader(data))
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestRenewAccessTokenInvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		GetSessionByRefreshToken(gomock.Any(), gomock.Any()).
		Times(0)
	server := newTestServer(t, store)

	data, err := json.Marshal(gin.H{"refresh_token": "not-a-valid-token"})
	require.NoError(t, err)

	request, err := http.NewRequest(http.MethodPost, "/v1/auth/refresh", bytes.NewReader(data))
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}
