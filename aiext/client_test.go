package aiext

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func completionServer(t *testing.T, content string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		resp := `{"choices":[{"message":{"role":"assistant","content":` + content + `}}]}`
		_, _ = w.Write([]byte(resp))
	}))
}

func TestParseText(t *testing.T) {
	server := completionServer(t, `"提取结果如下：{\"name\":\"张*\",\"phone\":\"138****1234\",\"phoneExt\":null,\"province\":\"广东省\",\"city\":\"深圳市\",\"district\":\"南山区\",\"address\":\"科技园路1号\",\"logisticsCode\":null,\"platform\":\"拼多多\"}"`)
	defer server.Close()

	client := NewClient(server.URL, "test-key", "glm-4-flash", 0)
	fields, err := client.ParseText(context.Background(), "张三的订单")
	require.NoError(t, err)
	require.Equal(t, "张*", fields.Name)
	require.Equal(t, "138****1234", fields.Phone)
	require.Empty(t, fields.PhoneExt)
	require.Equal(t, "广东省", fields.Province)
	require.Equal(t, "科技园路1号", fields.Address)
	require.Equal(t, "拼多多", fields.Platform)
}

func TestParseTextNoJSONInReply(t *testing.T) {
	server := completionServer(t, `"抱歉，我无法提取任何信息。"`)
	defer server.Close()

	client := NewClient(server.URL, "test-key", "glm-4-flash", 0)
	_, err := client.ParseText(context.Background(), "hello")
	require.Error(t, err)
}

func TestParseTextAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"invalid_api_key","message":"Incorrect API key"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", "glm-4-flash", 0)
	_, err := client.ParseText(context.Background(), "text")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "invalid_api_key", apiErr.Code)
}

func TestParseTextRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "glm-4-flash", time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.ParseText(ctx, "text")
	require.Error(t, err)
}
