package alipay

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// 支付宝开放平台网关
const (
	GatewaySandbox    = "https://openapi-sandbox.dl.alipaydev.com/gateway.do"
	GatewayProduction = "https://openapi.alipay.com/gateway.do"

	methodCertifyVerify = "alipay.user.certify.open.verify"
)

// APIError 支付宝网关返回的业务错误
type APIError struct {
	Code    string
	Msg     string
	SubCode string
	SubMsg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("alipay api error: code=%s, msg=%s, sub_code=%s, sub_msg=%s", e.Code, e.Msg, e.SubCode, e.SubMsg)
}

// Client 支付宝实名核验客户端
type Client struct {
	gateway    string
	appID      string
	privateKey *rsa.PrivateKey
	httpClient *http.Client
}

// NewClient 创建客户端，privateKeyPEM 为 PKCS#8 应用私钥
func NewClient(gateway, appID, privateKeyPEM string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	key, err := loadPrivateKey(privateKeyPEM)
	if err != nil {
		return nil, err
	}
	return &Client{
		gateway:    gateway,
		appID:      appID,
		privateKey: key,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func loadPrivateKey(pemData string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, errors.New("failed to decode private key pem")
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not rsa")
	}
	return rsaKey, nil
}

type certifyVerifyResponse struct {
	Response struct {
		Code          string `json:"code"`
		Msg           string `json:"msg"`
		SubCode       string `json:"sub_code"`
		SubMsg        string `json:"sub_msg"`
		VerifySuccess string `json:"verify_success"`
	} `json:"alipay_user_certify_open_verify_response"`
}

// VerifyAccountName 核验支付宝账号与实名姓名是否一致。
// 网关或网络错误原样返回，由上层决定重试；只有明确的 T/F 结果才算核验完成。
func (c *Client) VerifyAccountName(ctx context.Context, account, name string) (bool, error) {
	identityParam, err := json.Marshal(map[string]string{"logon_id": account})
	if err != nil {
		return false, err
	}
	bizContent, err := json.Marshal(map[string]string{
		"scene":          "verify_identity",
		"identity_type":  "ALIPAY_LOGON_ID",
		"identity_param": string(identityParam),
		"cert_name":      name,
		"cert_type":      "ID_CARD",
	})
	if err != nil {
		return false, err
	}

	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("method", methodCertifyVerify)
	params.Set("format", "JSON")
	params.Set("charset", "utf-8")
	params.Set("sign_type", "RSA2")
	params.Set("timestamp", time.Now().Format("2006-01-02 15:04:05"))
	params.Set("version", "1.0")
	params.Set("biz_content", string(bizContent))

	sign, err := c.signWithRSA(buildSignString(params))
	if err != nil {
		return false, fmt.Errorf("sign request: %w", err)
	}
	params.Set("sign", sign)

	req, err := http.NewRequestWithContext(ctx, "POST", c.gateway, strings.NewReader(params.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	var result certifyVerifyResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return false, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	r := result.Response
	if r.Code != "10000" {
		return false, &APIError{Code: r.Code, Msg: r.Msg, SubCode: r.SubCode, SubMsg: r.SubMsg}
	}
	return r.VerifySuccess == "T", nil
}

// buildSignString 按参数名字典序拼接待签名串，sign 本身不参与
func buildSignString(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "sign" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params.Get(k))
	}
	return strings.Join(pairs, "&")
}

// signWithRSA 使用 RSA-SHA256 签名
func (c *Client) signWithRSA(message string) (string, error) {
	hash := sha256.Sum256([]byte(message))
	signature, err := rsa.SignPKCS1v15(rand.Reader, c.privateKey, crypto.SHA256, hash[:])
	if err != nil {
		return "", fmt.Errorf("sign: %w", err)
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}
