package api

import (
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/maizecandy/seller-help/db/sqlc"
	"github.com/maizecandy/seller-help/token"
	"github.com/maizecandy/seller-help/trust"
	"github.com/maizecandy/seller-help/util"
	"github.com/stretchr/testify/require"
)

// 测试用管理员手机号
const testAdminPhone = "13900000000"

func newTestServer(t *testing.T, store db.Store) *Server {
	config := util.Config{
		TokenSymmetricKey:   util.RandomString(32),
		AccessTokenDuration: time.Minute,
		AdminPhones:         []string{testAdminPhone},
	}

	server, err := NewServer(config, store, nil, nil, nil)
	require.NoError(t, err)

	return server
}

func addAuthorization(
	t *testing.T,
	request *http.Request,
	tokenMaker token.Maker,
	authorizationType string,
	merchantID int64,
	duration time.Duration,
) {
	accessToken, payload, err := tokenMaker.CreateToken(merchantID, duration, token.TokenTypeAccessToken)
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	authorizationHeader := fmt.Sprintf("%s %s", authorizationType, accessToken)
	request.Header.Set(authorizationHeaderKey, authorizationHeader)
}

func randomMerchant(t *testing.T) (merchant db.Merchant, password string) {
	password = util.RandomString(8)
	hashedPassword, err := util.HashPassword(password)
	require.NoError(t, err)

	merchant = db.Merchant{
		ID:             util.RandomInt(1, 1000),
		Phone:          util.RandomPhone(),
		HashedPassword: hashedPassword,
		ShopName:       util.RandomShopName(),
		ContactName:    "王老板",
		TrustLevel:     trust.LevelVisitor,
		Status:         "approved",
		CreatedAt:      time.Now(),
	}
	return
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}
