package alipay

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testPrivateKeyPEM(t *testing.T) string {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}

func gatewayServer(t *testing.T, response string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "alipay.user.certify.open.verify", r.Form.Get("method"))
		require.Equal(t, "RSA2", r.Form.Get("sign_type"))
		require.NotEmpty(t, r.Form.Get("sign"))
		require.NotEmpty(t, r.Form.Get("biz_content"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
}

func TestVerifyAccountNameMatch(t *testing.T) {
	server := gatewayServer(t, `{"alipay_user_certify_open_verify_response":{"code":"10000","msg":"Success","verify_success":"T"}}`)
	defer server.Close()

	client, err := NewClient(server.URL, "2021000000000000", testPrivateKeyPEM(t), time.Second)
	require.NoError(t, err)

	verified, err := client.VerifyAccountName(context.Background(), "chen@example.com", "陈大文")
	require.NoError(t, err)
	require.True(t, verified)
}

func TestVerifyAccountNameMismatch(t *testing.T) {
	server := gatewayServer(t, `{"alipay_user_certify_open_verify_response":{"code":"10000","msg":"Success","verify_success":"F"}}`)
	defer server.Close()

	client, err := NewClient(server.URL, "2021000000000000", testPrivateKeyPEM(t), time.Second)
	require.NoError(t, err)

	verified, err := client.VerifyAccountName(context.Background(), "chen@example.com", "王小二")
	require.NoError(t, err)
	require.False(t, verified)
}

func TestVerifyAccountNameAPIError(t *testing.T) {
	server := gatewayServer(t, `{"alipay_user_certify_open_verify_response":{"code":"40002","msg":"Invalid Arguments","sub_code":"isv.invalid-app-id","sub_msg":"无效的AppID"}}`)
	defer server.Close()

	client, err := NewClient(server.URL, "bad-app", testPrivateKeyPEM(t), time.Second)
	require.NoError(t, err)

	_, err = client.VerifyAccountName(context.Background(), "chen@example.com", "陈大文")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "40002", apiErr.Code)
}

func TestNewClientBadKey(t *testing.T) {
	_, err := NewClient(GatewaySandbox, "2021000000000000", "not a pem", time.Second)
	require.Error(t, err)
}
