package aiext

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/maizecandy/seller-help/normalize"
)

// 默认抽取超时，调用方 ctx 更紧时以 ctx 为准
const defaultTimeout = 8 * time.Second

// extractPrompt 结构化抽取提示词，要求模型直接输出脱敏后的JSON
const extractPrompt = `你是一个电商订单信息提取专家。请从以下文本中提取结构化信息，以JSON格式返回：
{
  "name": "脱敏后的姓名(如: 张*)",
  "phone": "脱敏后的手机号(如: 138****1234)",
  "phoneExt": "分机号(如果有)",
  "province": "省份",
  "city": "城市",
  "district": "区县",
  "address": "详细地址",
  "logisticsCode": "物流单号(如果有)",
  "platform": "推断的平台(淘宝/拼多多/抖音/京东)"
}
如果某字段无法提取，请返回null。

文本内容：
%s`

// 回复里嵌在说明文字中的JSON块
var jsonBlockRe = regexp.MustCompile(`\{[\s\S]*\}`)

// Client OpenAI兼容的chat completions客户端，对接智谱/豆包等网关
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient 创建抽取客户端
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// APIError 模型网关返回的业务错误
type APIError struct {
	Status int
	Code   string
	Msg    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ai api error: status=%d, code=%s, msg=%s", e.Status, e.Code, e.Msg)
}

// ParseText 调用模型抽取订单文本。任何失败返回错误，由调用方回退到本地规则。
func (c *Client) ParseText(ctx context.Context, text string) (*normalize.RawFields, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(extractPrompt, text)},
		},
		Temperature: 0.1,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if result.Error != nil {
		return nil, &APIError{Status: resp.StatusCode, Code: result.Error.Code, Msg: result.Error.Message}
	}
	if resp.StatusCode != http.StatusOK || len(result.Choices) == 0 {
		return nil, &APIError{Status: resp.StatusCode, Msg: "empty completion"}
	}

	return parseFields(result.Choices[0].Message.Content)
}

// parseFields 从模型回复中挖出JSON块并解析
func parseFields(content string) (*normalize.RawFields, error) {
	block := jsonBlockRe.FindString(content)
	if block == "" {
		return nil, fmt.Errorf("no json object in completion")
	}

	// 模型对缺失字段返回null，先解析成指针再拍平
	var raw struct {
		Name          *string `json:"name"`
		Phone         *string `json:"phone"`
		PhoneExt      *string `json:"phoneExt"`
		Province      *string `json:"province"`
		City          *string `json:"city"`
		District      *string `json:"district"`
		Address       *string `json:"address"`
		LogisticsCode *string `json:"logisticsCode"`
		Platform      *string `json:"platform"`
	}
	if err := json.Unmarshal([]byte(block), &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
	}

	return &normalize.RawFields{
		Name:          deref(raw.Name),
		Phone:         deref(raw.Phone),
		PhoneExt:      deref(raw.PhoneExt),
		Province:      deref(raw.Province),
		City:          deref(raw.City),
		District:      deref(raw.District),
		Address:       deref(raw.Address),
		LogisticsCode: deref(raw.LogisticsCode),
		Platform:      deref(raw.Platform),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ normalize.Extractor = (*Client)(nil)
