package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockdb "github.com/maizecandy/seller-help/db/mock"
	"github.com/maizecandy/seller-help/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	merchantID := int64(1)

	testCases := []struct {
		name          string
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, merchantID, time.Minute)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "NoAuthorization",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "UnsupportedAuthorization",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, "unsupported", merchantID, time.Minute)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "InvalidAuthorizationFormat",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, "", merchantID, time.Minute)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "ExpiredToken",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, merchantID, -time.Minute)
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

			authPath := "/auth"
			server.router.GET(
				authPath,
				authMiddleware(server.tokenMaker),
				func(ctx *gin.Context) {
					ctx.JSON(http.StatusOK, gin.H{})
				},
			)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, authPath, nil)
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestRateLimiterSensitiveAPI(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimiterConfig())
	defer rl.Stop()

	router := gin.New()
	router.POST("/limited", rl.SensitiveAPIMiddleware(3), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{})
	})

	// 突发额度内放行，超出后限流
	var lastCode int
	for i := 0; i < 5; i++ {
		recorder := httptest.NewRecorder()
		request, err := http.NewRequest(http.MethodPost, "/limited", nil)
		require.NoError(t, err)
		request.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(recorder, request)
		lastCode = recorder.Code
	}
	require.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestTimeoutMiddleware(t *testing.T) {
	router := gin.New()
	router.GET("/slow", TimeoutMiddleware(50*time.Millisecond), func(ctx *gin.Context) {
		select {
		case <-ctx.Request.Context().Done():
		case <-time.After(time.Second):
		}
	})

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/slow", nil)
	require.NoError(t, err)

	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusGatewayTimeout, recorder.Code)
}

func TestHealthEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().Ping(gomock.Any()).Times(1).Return(nil)
	server := newTestServer(t, store)

	for _, path := range []string{"/health", "/ready"} {
		recorder := httptest.NewRecorder()
		request, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusOK, recorder.Code, fmt.Sprintf("path %s", path))
	}
}

func TestReadinessFailsWhenStoreDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().Ping(gomock.Any()).Times(1).Return(fmt.Errorf("connection refused"))
	server := newTestServer(t, store)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/ready", nil)
	require.NoError(t, err)
	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
