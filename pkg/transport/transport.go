// Package transport 是访问CES后端的HTTP传输层。
//
// 调用方提供声明式的请求描述（路径、方法、请求体），传输层负责序列化、
// 附加认证头并把响应体解码到调用方给出的结构中。传输层不重试、不缓存，
// 也不解释响应中的业务码。
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

const (
	HeaderRequestID = "X-Request-ID"
	defaultTimeout  = 30 * time.Second
	maxErrorBody    = 512
)

// Request 请求描述。Data 为 nil 时不发送请求体
type Request struct {
	URL    string
	Method string
	Data   interface{}
}

// Transport 执行一次请求并把响应体解码到 out
type Transport interface {
	Do(ctx context.Context, req Request, out interface{}) error
}

// HTTPError 非2xx响应
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// AsHTTPError 从错误链中取出 *HTTPError
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// IsStatus 错误是否为指定状态码的 HTTPError
func IsStatus(err error, status int) bool {
	httpErr, ok := AsHTTPError(err)
	return ok && httpErr.StatusCode == status
}

// Options HTTPTransport 配置
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	Token     string // 上下文中没有令牌时使用
	UserAgent string
	Client    *http.Client
	Logger    *logrus.Logger
}

// HTTPTransport 基于 net/http 的 Transport 实现
type HTTPTransport struct {
	baseURL   string
	token     string
	userAgent string
	client    *http.Client
	logger    *logrus.Logger
}

// NewHTTPTransport 创建HTTP传输层
func NewHTTPTransport(opts Options) *HTTPTransport {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "CES-Console/1.0"
	}

	return &HTTPTransport{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		token:     opts.Token,
		userAgent: userAgent,
		client:    client,
		logger:    log,
	}
}

// Do 发送请求
func (t *HTTPTransport) Do(ctx context.Context, req Request, out interface{}) error {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}
	url := t.baseURL + req.URL

	var body io.Reader
	if req.Data != nil {
		payload, err := json.Marshal(req.Data)
		if err != nil {
			return fmt.Errorf("序列化请求失败: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("创建HTTP请求失败: %w", err)
	}

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", t.userAgent)
	if token := t.tokenFor(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := RequestIDFrom(ctx)
	if requestID != "" {
		httpReq.Header.Set(HeaderRequestID, requestID)
	}

	entry := t.logger.WithFields(logrus.Fields{
		"method":     method,
		"url":        url,
		"request_id": requestID,
	})

	start := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		entry.WithError(err).Warn("CES请求失败")
		return fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}

	entry = entry.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"elapsed": time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		entry.Warn("CES返回非2xx状态")
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Method:     method,
			URL:        url,
			Body:       truncate(string(respBody), maxErrorBody),
		}
	}
	entry.Debug("CES请求完成")

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("解析响应失败: %w", err)
	}
	return nil
}

func (t *HTTPTransport) tokenFor(ctx context.Context) string {
	if token := TokenFrom(ctx); token != "" {
		return token
	}
	return t.token
}

// truncate 截断到不超过 n 字节，不拆开多字节字符
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
